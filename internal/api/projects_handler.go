package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
	"vfxfolio/internal/notify"
)

// ProjectsHandler 负责作品集条目的读写。
type ProjectsHandler struct {
	store  content.Store
	toasts toastPusher
}

// NewProjectsHandler 构造 ProjectsHandler。
func NewProjectsHandler(store content.Store, toasts toastPusher) *ProjectsHandler {
	return &ProjectsHandler{store: store, toasts: toasts}
}

// List 按 order_index 升序返回全部作品。作品没有内置默认值，
// 查询失败时回落空列表而不是报错。
func (h *ProjectsHandler) List(c *gin.Context) {
	rows, err := h.store.Projects(c.Request.Context())
	if err != nil {
		logContentFallback(c, "projects", err)
		rows = content.DefaultProjects()
	}
	if rows == nil {
		rows = []database.Project{}
	}
	c.JSON(http.StatusOK, rows)
}

// Get 返回单条作品详情。
func (h *ProjectsHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	row, err := h.store.Project(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			NotFound(c, "project not found")
			return
		}
		if errors.Is(err, content.ErrNotConfigured) {
			Unavailable(c, "content backend is not configured")
			return
		}
		Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, row)
}

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	OrderIndex  int      `json:"order_index"`
}

// Create 新增作品，返回带数据库主键的落库行。
func (h *ProjectsHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveProject(c.Request.Context(), req.toModel(0))
	if err != nil {
		saveError(c, h.toasts, "projects", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Project added successfully!")
	c.JSON(http.StatusCreated, saved)
}

// Update 按 ID 覆盖作品并返回落库行。
func (h *ProjectsHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveProject(c.Request.Context(), req.toModel(id))
	if err != nil {
		saveError(c, h.toasts, "projects", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Project updated successfully!")
	c.JSON(http.StatusOK, saved)
}

// Delete 按 ID 删除一条作品。
func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteProject(c.Request.Context(), id); err != nil {
		deleteError(c, h.toasts, "projects", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (r projectRequest) toModel(id uint) database.Project {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return database.Project{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Tags:        datatypes.NewJSONSlice(tags),
		OrderIndex:  r.OrderIndex,
	}
}
