package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-news/pkg/logger"
)

const contextKey = "gin-news/session"

// Flash 一次性提示，下次渲染页面时取出
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Data 会话内容
type Data struct {
	ID       string  `json:"-"`
	LoggedIn bool    `json:"logged_in,omitempty"`
	Username string  `json:"username,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`

	// renew 登录状态变化，服务端存储需换新 ID
	renew bool
}

// Empty 没有任何需要保存的内容
func (d *Data) Empty() bool {
	return !d.LoggedIn && d.Username == "" && len(d.Flashes) == 0
}

// Store 会话存储；Load 对无效或缺失的会话返回空 Data
type Store interface {
	Load(r *http.Request) (*Data, error)
	Save(w http.ResponseWriter, r *http.Request, d *Data) error
}

// Session 单次请求内的会话句柄
type Session struct {
	store Store
	data  *Data
	c     *gin.Context
}

// Middleware 为每个请求加载会话
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := store.Load(c.Request)
		if err != nil {
			logger.Warn("load session failed", zap.Error(err))
			data = &Data{}
		}
		c.Set(contextKey, &Session{store: store, data: data, c: c})
		c.Next()
	}
}

// Default 取当前请求的会话，必须先挂载 Middleware
func Default(c *gin.Context) *Session {
	return c.MustGet(contextKey).(*Session)
}

func (s *Session) LoggedIn() bool   { return s.data.LoggedIn }
func (s *Session) Username() string { return s.data.Username }

// Login 标记为已登录，保存时换新会话 ID
func (s *Session) Login(username string) {
	s.data.LoggedIn = true
	s.data.Username = username
	s.data.renew = true
}

// Clear 清空会话内容，包括未读提示
func (s *Session) Clear() {
	s.data.LoggedIn = false
	s.data.Username = ""
	s.data.Flashes = nil
	s.data.renew = true
}

func (s *Session) AddFlash(category, message string) {
	s.data.Flashes = append(s.data.Flashes, Flash{Category: category, Message: message})
}

// Flashes 取出并清空提示
func (s *Session) Flashes() []Flash {
	f := s.data.Flashes
	s.data.Flashes = nil
	return f
}

// Save 写回存储，需在写响应体之前调用
func (s *Session) Save() error {
	return s.store.Save(s.c.Writer, s.c.Request, s.data)
}
