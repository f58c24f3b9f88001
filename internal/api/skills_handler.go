package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
	"vfxfolio/internal/notify"
)

// SkillsHandler 负责技能卡片的读写。技能主键是 slug，
// 以便前端用它拼详情路由。
type SkillsHandler struct {
	store  content.Store
	toasts toastPusher
}

// NewSkillsHandler 构造 SkillsHandler。
func NewSkillsHandler(store content.Store, toasts toastPusher) *SkillsHandler {
	return &SkillsHandler{store: store, toasts: toasts}
}

// List 按 slug 升序返回技能；查询失败或空表回落默认列表。
func (h *SkillsHandler) List(c *gin.Context) {
	rows, err := h.store.Skills(c.Request.Context())
	if err != nil || len(rows) == 0 {
		if err != nil {
			logContentFallback(c, "skills", err)
		}
		rows = content.DefaultSkills()
	}
	c.JSON(http.StatusOK, rows)
}

type skillRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
	Theme       string `json:"theme"`
	ImageURL    string `json:"image_url"`
}

// Create 新增技能。未提供 slug 时从标题派生一个。
func (h *SkillsHandler) Create(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	slug := strings.TrimSpace(req.ID)
	if slug == "" {
		slug = slugify(req.Title)
	}
	if slug == "" {
		BadRequest(c, "cannot derive a slug from the title")
		return
	}
	if req.Icon == "" {
		req.Icon = "✨"
	}
	if req.Theme == "" {
		req.Theme = "cyan"
	}

	saved, err := h.store.SaveSkill(c.Request.Context(), database.Skill{
		ID:          slug,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Theme:       req.Theme,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		saveError(c, h.toasts, "skills", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Skill added successfully!")
	c.JSON(http.StatusCreated, saved)
}

// Update 按 slug 覆盖技能并返回落库行。
func (h *SkillsHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveSkill(c.Request.Context(), database.Skill{
		ID:          slug,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Theme:       req.Theme,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		saveError(c, h.toasts, "skills", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Skill updated successfully!")
	c.JSON(http.StatusOK, saved)
}

// Delete 按 slug 删除一条技能。
func (h *SkillsHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.store.DeleteSkill(c.Request.Context(), slug); err != nil {
		deleteError(c, h.toasts, "skills", err)
		return
	}

	c.Status(http.StatusNoContent)
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify 把标题压成路由安全的 slug（小写、连字符分隔）。
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 64 {
		slug = slug[:64]
	}
	return slug
}
