package handler

import "github.com/gin-gonic/gin"

// Home 首页
func (h *Handler) Home(c *gin.Context) {
	h.render(c, "home.html", gin.H{"Title": "Home"})
}

// About 关于页
func (h *Handler) About(c *gin.Context) {
	h.render(c, "about.html", gin.H{"Title": "About"})
}
