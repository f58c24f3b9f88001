package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
	"vfxfolio/internal/notify"
)

// ServicesHandler 负责服务列表的读写。
type ServicesHandler struct {
	store  content.Store
	toasts toastPusher
}

// NewServicesHandler 构造 ServicesHandler。
func NewServicesHandler(store content.Store, toasts toastPusher) *ServicesHandler {
	return &ServicesHandler{store: store, toasts: toasts}
}

// List 按后端顺序（id 升序）返回服务；查询失败回落默认列表。
func (h *ServicesHandler) List(c *gin.Context) {
	rows, err := h.store.Services(c.Request.Context())
	if err != nil || len(rows) == 0 {
		if err != nil {
			logContentFallback(c, "services", err)
		}
		rows = content.DefaultServices()
	}
	c.JSON(http.StatusOK, rows)
}

type serviceRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"desc"`
}

// Create 新增一条服务，id 由数据库分配。
func (h *ServicesHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveService(c.Request.Context(), database.Service{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		saveError(c, h.toasts, "services", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Service added successfully!")
	c.JSON(http.StatusCreated, saved)
}

// Update 覆盖指定服务并返回落库行。
func (h *ServicesHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	saved, err := h.store.SaveService(c.Request.Context(), database.Service{
		ID:          id,
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		saveError(c, h.toasts, "services", err)
		return
	}

	h.toasts.Push(c.Request.Context(), notify.KindSuccess, "Service updated successfully!")
	c.JSON(http.StatusOK, saved)
}

// Delete 删除指定服务。删除只影响这一条记录，立即且不可撤销。
func (h *ServicesHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		deleteError(c, h.toasts, "services", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

func deleteError(c *gin.Context, toasts toastPusher, section string, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		NotFound(c, section+" entry not found")
	case errors.Is(err, content.ErrNotConfigured):
		Unavailable(c, "content store is not configured")
	default:
		toasts.Push(c.Request.Context(), notify.KindError, err.Error())
		Internal(c, err.Error())
	}
}
