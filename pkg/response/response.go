package response

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-news/pkg/logger"
)

// ErrorPage 错误页模板
const ErrorPage = "error.html"

const pageDataKey = "gin-news/page-data"

// PageData 页面公共数据，如导航和登录状态
type PageData func(c *gin.Context) gin.H

// WithPageData 让错误页与普通页面共用导航数据
func WithPageData(fn PageData) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(pageDataKey, fn)
		c.Next()
	}
}

// Error 渲染错误页并终止后续处理
func Error(c *gin.Context, status int, message string) {
	data := gin.H{}
	if v, ok := c.Get(pageDataKey); ok {
		if fn, ok := v.(PageData); ok {
			for k, val := range fn(c) {
				data[k] = val
			}
		}
	}
	data["Status"] = status
	data["Message"] = message
	c.HTML(status, ErrorPage, data)
	c.Abort()
}

// NotFound 404
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "The page you are looking for does not exist.")
}

// InternalError 记录并上报错误，对用户只展示通用信息
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	Error(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
