package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-news/internal/auth"
	"github.com/d60-Lab/gin-news/internal/session"
	"github.com/d60-Lab/gin-news/pkg/logger"
)

const (
	LoginPath = "/login"
	NewsPath  = "/news"

	MsgLoginRequired = "Unauthorized, Please login"
	MsgAdminEdit     = "Only Admin Is Authorized To Edit"
	MsgAdminDelete   = "Only Admin is authorized to delete"
)

// RequireLogin 未登录时提示并跳转登录页
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Default(c)
		if s.LoggedIn() {
			c.Next()
			return
		}
		reject(c, s, MsgLoginRequired, LoginPath)
	}
}

// RequireAdmin 当前用户不在管理员集合中时提示并跳转新闻列表，需放在 RequireLogin 之后
func RequireAdmin(admins auth.AdminSet, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Default(c)
		if admins.IsAdmin(s.Username()) {
			c.Next()
			return
		}
		reject(c, s, message, NewsPath)
	}
}

func reject(c *gin.Context, s *session.Session, message, location string) {
	s.AddFlash("danger", message)
	if err := s.Save(); err != nil {
		logger.Warn("save session failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
