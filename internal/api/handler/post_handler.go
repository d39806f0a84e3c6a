package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/d60-Lab/gin-news/internal/form"
	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/service"
	"github.com/d60-Lab/gin-news/pkg/response"
)

// ListNews 全部新闻
func (h *Handler) ListNews(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.render(c, "news.html", gin.H{"Title": "News", "Posts": posts})
}

// FilterNews 按分类筛选
func (h *Handler) FilterNews(c *gin.Context) {
	category := model.Category(c.Param("category"))
	posts, err := h.postService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.render(c, "news.html", gin.H{"Title": category.String(), "Category": category, "Posts": posts})
}

// SingleNews 新闻详情
func (h *Handler) SingleNews(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	h.render(c, "single.html", gin.H{"Title": post.Title, "Post": post})
}

// AddNews 新建新闻
func (h *Handler) AddNews(c *gin.Context) {
	var f form.PostForm
	if c.Request.Method != http.MethodPost {
		h.renderPostForm(c, "addnews.html", nil, f, nil)
		return
	}
	if errs := bindPostForm(c, &f); errs != nil {
		h.renderPostForm(c, "addnews.html", nil, f, errs)
		return
	}

	post := &model.Post{}
	f.Apply(post)
	if err := h.postService.Create(c.Request.Context(), post); err != nil {
		response.InternalError(c, err)
		return
	}
	h.flash(c, flashSuccess, "Your article has been added")
	h.redirect(c, "/news")
}

// EditNews 编辑新闻，GET 预填原内容，POST 覆盖除 ID 与创建时间外的字段
func (h *Handler) EditNews(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	if c.Request.Method != http.MethodPost {
		h.renderPostForm(c, "edit.html", post, form.FromPost(post), nil)
		return
	}

	var f form.PostForm
	if errs := bindPostForm(c, &f); errs != nil {
		h.renderPostForm(c, "edit.html", post, f, errs)
		return
	}
	f.Apply(post)
	if err := h.postService.Update(c.Request.Context(), post); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	h.flash(c, flashSuccess, "The Edited News Article Has Been Updated")
	h.redirect(c, "/news")
}

// DeleteNews 删除新闻
func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	h.flash(c, flashSuccess, "Article Deleted Successfully")
	h.redirect(c, "/news")
}

func (h *Handler) loadPost(c *gin.Context) (*model.Post, bool) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c)
		return nil, false
	}
	post, err := h.postService.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrPostNotFound) {
		response.NotFound(c)
		return nil, false
	}
	if err != nil {
		response.InternalError(c, err)
		return nil, false
	}
	return post, true
}

func bindPostForm(c *gin.Context, f *form.PostForm) form.Errors {
	if err := c.ShouldBindWith(f, binding.Form); err != nil {
		return form.Errors{"": {"Invalid form submission"}}
	}
	return form.Validate(f)
}

func (h *Handler) renderPostForm(c *gin.Context, page string, post *model.Post, f form.PostForm, errs form.Errors) {
	h.render(c, page, gin.H{"Title": "News", "Post": post, "Form": f, "Errors": errs})
}
