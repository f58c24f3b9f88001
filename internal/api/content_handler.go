package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/api/middleware"
	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
	"vfxfolio/internal/notify"
)

// toastPusher 是各区块保存后推送状态通知的最小接口。
type toastPusher interface {
	Push(ctx context.Context, kind, message string)
}

// ContentHandler 负责单例内容区块（首屏、关于、联系方式）的读写。
type ContentHandler struct {
	store  content.Store
	toasts toastPusher
}

// NewContentHandler 构造 ContentHandler。
func NewContentHandler(store content.Store, toasts toastPusher) *ContentHandler {
	return &ContentHandler{store: store, toasts: toasts}
}

// GetHero 返回首屏内容；缺行或查询失败时静默回落到默认值，
// 匿名访客永远看不到后端错误。
func (h *ContentHandler) GetHero(c *gin.Context) {
	row, err := h.store.Hero(c.Request.Context())
	if err != nil {
		logContentFallback(c, "hero", err)
		fallback := content.DefaultHero()
		row = &fallback
	}
	c.JSON(http.StatusOK, row)
}

type heroRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

// SaveHero 按固定 id=1 落库并返回落库行。
func (h *ContentHandler) SaveHero(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveHero(c.Request.Context(), database.HeroContent{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.failSave(c, "hero", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Hero section updated successfully!")
	c.JSON(http.StatusOK, saved)
}

// GetAbout 返回关于页内容，失败回落默认。
func (h *ContentHandler) GetAbout(c *gin.Context) {
	row, err := h.store.About(c.Request.Context())
	if err != nil {
		logContentFallback(c, "about", err)
		fallback := content.DefaultAbout()
		row = &fallback
	}
	c.JSON(http.StatusOK, row)
}

type aboutRequest struct {
	Bio1            string `json:"bio1" binding:"required"`
	Bio2            string `json:"bio2"`
	Location        string `json:"location"`
	Experience      string `json:"experience"`
	Specialty       string `json:"specialty"`
	ProfileImageURL string `json:"profile_image_url"`
}

// SaveAbout 按固定 id=1 落库并返回落库行。
func (h *ContentHandler) SaveAbout(c *gin.Context) {
	var req aboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveAbout(c.Request.Context(), database.AboutContent{
		Bio1:            req.Bio1,
		Bio2:            req.Bio2,
		Location:        req.Location,
		Experience:      req.Experience,
		Specialty:       req.Specialty,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		h.failSave(c, "about", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Profile updated successfully!")
	c.JSON(http.StatusOK, saved)
}

// GetContactInfo 返回联系方式，失败回落默认。
func (h *ContentHandler) GetContactInfo(c *gin.Context) {
	row, err := h.store.ContactInfo(c.Request.Context())
	if err != nil {
		logContentFallback(c, "contact_info", err)
		fallback := content.DefaultContactInfo()
		row = &fallback
	}
	c.JSON(http.StatusOK, row)
}

type contactInfoRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// SaveContactInfo 按固定 id=1 落库并返回落库行。
func (h *ContentHandler) SaveContactInfo(c *gin.Context) {
	var req contactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveContactInfo(c.Request.Context(), database.ContactInfo{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.failSave(c, "contact_info", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Contact info updated successfully!")
	c.JSON(http.StatusOK, saved)
}

func (h *ContentHandler) failSave(c *gin.Context, section string, err error) {
	saveError(c, h.toasts, section, err)
}

// saveError 统一处理写入失败：通知编辑者（错误原样透出），
// 未配置存储时用 503 与其他错误区分开。
func saveError(c *gin.Context, toasts toastPusher, section string, err error) {
	toasts.Push(c.Request.Context(), notify.KindError, err.Error())
	middleware.LoggerFromContext(c).Error("save content failed",
		slog.String("section", section),
		slog.Any("error", err),
	)
	if errors.Is(err, content.ErrNotConfigured) {
		Unavailable(c, "content store is not configured")
		return
	}
	Internal(c, err.Error())
}

func logContentFallback(c *gin.Context, section string, err error) {
	if errors.Is(err, content.ErrNotFound) {
		return
	}
	middleware.LoggerFromContext(c).Info("serving default content",
		slog.String("section", section),
		slog.Any("error", err),
	)
}
