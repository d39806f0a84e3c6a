package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/d60-Lab/gin-news/internal/form"
	"github.com/d60-Lab/gin-news/internal/service"
	"github.com/d60-Lab/gin-news/internal/session"
	"github.com/d60-Lab/gin-news/pkg/response"
)

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var f form.RegisterForm
	if c.Request.Method != http.MethodPost {
		h.renderRegister(c, f, nil)
		return
	}
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		h.renderRegister(c, f, form.Errors{"": {"Invalid form submission"}})
		return
	}
	if errs := form.Validate(f); errs != nil {
		h.renderRegister(c, f, errs)
		return
	}
	if _, err := h.authService.Register(c.Request.Context(), f.Username, f.Email, f.Password); err != nil {
		response.InternalError(c, err)
		return
	}
	h.flash(c, flashSuccess, "You are now registered and can login")
	h.redirect(c, "/login")
}

func (h *Handler) renderRegister(c *gin.Context, f form.RegisterForm, errs form.Errors) {
	f.Password, f.Confirm = "", ""
	h.render(c, "register.html", gin.H{"Title": "Register", "Form": f, "Errors": errs})
}

// Login 登录；用户名不存在与密码错误分别提示
func (h *Handler) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.renderLogin(c, "", "")
		return
	}
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(c.Request.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrInvalidUsername):
		h.renderLogin(c, username, "Invalid username")
		return
	case errors.Is(err, service.ErrWrongPassword):
		h.renderLogin(c, username, "Wrong password")
		return
	case err != nil:
		response.InternalError(c, err)
		return
	}

	session.Default(c).Login(user.Username)
	h.flash(c, flashSuccess, "You are now logged in")
	h.redirect(c, "/news")
}

func (h *Handler) renderLogin(c *gin.Context, username, message string) {
	h.render(c, "login.html", gin.H{"Title": "Login", "LoginUsername": username, "Error": message})
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	session.Default(c).Clear()
	h.flash(c, flashSuccess, "You are now logged out")
	h.redirect(c, "/login")
}
