package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-news/internal/auth"
	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/service"
	"github.com/d60-Lab/gin-news/internal/session"
	"github.com/d60-Lab/gin-news/pkg/logger"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// Handler 页面处理器
type Handler struct {
	postService service.PostService
	authService service.AuthService
	admins      auth.AdminSet
}

// NewHandler 创建页面处理器
func NewHandler(postService service.PostService, authService service.AuthService, admins auth.AdminSet) *Handler {
	return &Handler{postService: postService, authService: authService, admins: admins}
}

// PageData 导航栏所需的登录状态与分类
func (h *Handler) PageData(c *gin.Context) gin.H {
	s := session.Default(c)
	return gin.H{
		"LoggedIn":   s.LoggedIn(),
		"Username":   s.Username(),
		"IsAdmin":    s.LoggedIn() && h.admins.IsAdmin(s.Username()),
		"Categories": model.Categories,
	}
}

// render 取出提示、写回会话后渲染页面
func (h *Handler) render(c *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	for k, v := range h.PageData(c) {
		data[k] = v
	}
	s := session.Default(c)
	data["Flashes"] = s.Flashes()
	saveSession(s)
	c.HTML(http.StatusOK, page, data)
}

func (h *Handler) redirect(c *gin.Context, location string) {
	saveSession(session.Default(c))
	c.Redirect(http.StatusFound, location)
}

func (h *Handler) flash(c *gin.Context, category, message string) {
	session.Default(c).AddFlash(category, message)
}

func saveSession(s *session.Session) {
	if err := s.Save(); err != nil {
		logger.Warn("save session failed", zap.Error(err))
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
