package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/gin-news/config"
	"github.com/d60-Lab/gin-news/internal/api/handler"
	"github.com/d60-Lab/gin-news/internal/api/middleware"
	"github.com/d60-Lab/gin-news/internal/auth"
	"github.com/d60-Lab/gin-news/internal/session"
	"github.com/d60-Lab/gin-news/pkg/logger"
	"github.com/d60-Lab/gin-news/pkg/response"
	"github.com/d60-Lab/gin-news/web"
)

// NewRouter 组装中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler, store session.Store, admins auth.AdminSet) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(logger.GinLogger(), logger.GinRecovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.StaticFS("/static", http.FS(web.Static()))

	r.Use(session.Middleware(store), response.WithPageData(h.PageData))
	r.NoRoute(response.NotFound)

	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/news", h.ListNews)
	r.GET("/filter/:category", h.FilterNews)
	r.GET("/single/:id", h.SingleNews)
	r.GET("/register", h.Register)
	r.POST("/register", h.Register)
	r.GET("/login", h.Login)
	r.POST("/login", h.Login)

	authed := r.Group("/", middleware.RequireLogin())
	{
		authed.GET("/logout", h.Logout)
		authed.GET("/addnews", h.AddNews)
		authed.POST("/addnews", h.AddNews)

		canEdit := middleware.RequireAdmin(admins, middleware.MsgAdminEdit)
		authed.GET("/edit/:id", canEdit, h.EditNews)
		authed.POST("/edit/:id", canEdit, h.EditNews)
		authed.GET("/delete/:id",
			middleware.RequireAdmin(admins, middleware.MsgAdminDelete), h.DeleteNews)
	}

	return r, nil
}
