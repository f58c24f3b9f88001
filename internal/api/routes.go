package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vfxfolio/internal/api/middleware"
	"vfxfolio/internal/assistant"
	"vfxfolio/internal/auth"
	"vfxfolio/internal/config"
	"vfxfolio/internal/content"
	"vfxfolio/internal/mailer"
	"vfxfolio/internal/notify"
	"vfxfolio/internal/storage"
)

// Deps 汇集注册路由所需的全部协作对象。
// DB 与 Auth 可以为 nil（对应未配置降级），Store 永远非 nil
// （未配置时注入 content.StubStore）。Uploader 为 nil 表示无图床。
type Deps struct {
	DB        *gorm.DB
	Store     content.Store
	Redis     *redis.Client
	Auth      *auth.AuthService
	Logger    *slog.Logger
	Mailer    mailer.Mailer
	Uploader  storage.Uploader
	Notifier  *notify.Notifier
	Responder *assistant.Responder
	Config    *config.Config
}

// RegisterRoutes 注册全部 API 路由。
func RegisterRoutes(router *gin.Engine, deps Deps) {
	cfg := deps.Config

	contentHandler := NewContentHandler(deps.Store, deps.Notifier)
	servicesHandler := NewServicesHandler(deps.Store, deps.Notifier)
	skillsHandler := NewSkillsHandler(deps.Store, deps.Notifier)
	projectsHandler := NewProjectsHandler(deps.Store, deps.Notifier)
	contactHandler := NewContactHandler(deps.Mailer, deps.Redis, deps.Logger, cfg.Contact.RateLimitPerHour)
	assistantHandler := NewAssistantHandler(deps.Responder)
	notificationHandler := NewNotificationHandler(deps.Notifier)

	// 联系表单保持站点历史路径，不带 /v1 前缀。
	router.POST("/api/contact", contactHandler.Submit)

	v1 := router.Group("/v1")

	contentGroup := v1.Group("/content")
	{
		contentGroup.GET("/hero", contentHandler.GetHero)
		contentGroup.GET("/about", contentHandler.GetAbout)
		contentGroup.GET("/contact-info", contentHandler.GetContactInfo)
	}

	v1.GET("/services", servicesHandler.List)
	v1.GET("/skills", skillsHandler.List)
	v1.GET("/projects", projectsHandler.List)
	v1.GET("/projects/:id", projectsHandler.Get)

	assistantGroup := v1.Group("/assistant")
	{
		assistantGroup.GET("/greeting", assistantHandler.Greeting)
		assistantGroup.POST("/message", assistantHandler.Message)
	}

	if deps.Auth == nil || deps.DB == nil {
		// 没有数据库或密钥对就没有会话可言：认证与编辑接口整体 503，
		// 公开读取仍可用（fail closed 的降级形态）。
		v1.Group("/auth").Any("/*any", authUnavailable)
		deps.Logger.Warn("auth or database not configured, editor surface disabled")
		return
	}

	authHandler := NewAuthHandler(
		deps.DB,
		deps.Auth,
		deps.Store,
		deps.Redis,
		deps.Logger,
		cfg.Auth.LoginRateLimitPerHour,
		cfg.Auth.LoginLockThreshold,
		cfg.Auth.LoginLockTTL,
		cfg.Auth.CookieDomain,
	)
	wsHandler := NewWsHandler(deps.Redis, deps.Auth, deps.Store, deps.Logger)
	assetHandler := NewAssetHandler(deps.Uploader, deps.Logger, cfg.Upload.ClamdAddr, cfg.Upload.MaxBytes)

	authMiddleware := middleware.AuthMiddleware(deps.Auth)
	passwordGate := middleware.RequirePasswordChangeCompletedMiddleware()
	editorMiddleware := middleware.RequireEditorMiddleware(deps.Store)

	v1.GET("/ws", wsHandler.HandleConnection)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/session", authMiddleware, authHandler.Session)
		authGroup.POST("/change-password", authMiddleware, authHandler.ChangePassword)
	}

	// 初始密码未改的账号先过改密这一关，才谈得上角色。
	editor := v1.Group("")
	editor.Use(authMiddleware, passwordGate, editorMiddleware)
	{
		editor.PUT("/content/hero", contentHandler.SaveHero)
		editor.PUT("/content/about", contentHandler.SaveAbout)
		editor.PUT("/content/contact-info", contentHandler.SaveContactInfo)

		editor.POST("/services", servicesHandler.Create)
		editor.PUT("/services/:id", servicesHandler.Update)
		editor.DELETE("/services/:id", servicesHandler.Delete)

		editor.POST("/skills", skillsHandler.Create)
		editor.PUT("/skills/:slug", skillsHandler.Update)
		editor.DELETE("/skills/:slug", skillsHandler.Delete)

		editor.POST("/projects", projectsHandler.Create)
		editor.PUT("/projects/:id", projectsHandler.Update)
		editor.DELETE("/projects/:id", projectsHandler.Delete)

		editor.POST("/assets/upload", assetHandler.UploadAsset)

		editor.GET("/notifications", notificationHandler.List)
		editor.DELETE("/notifications/:id", notificationHandler.Dismiss)
	}
}

func authUnavailable(c *gin.Context) {
	Unavailable(c, "authentication is not configured")
}
