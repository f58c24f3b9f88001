package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vfxfolio/internal/storage"
)

// AssetHandler 处理编辑器的图片上传，上传前可选做病毒扫描。
type AssetHandler struct {
	Uploader  storage.Uploader
	Logger    *slog.Logger
	ClamdAddr string
	MaxBytes  int64
}

// NewAssetHandler 返回 AssetHandler 实例。uploader 为 nil 表示未配置图床。
func NewAssetHandler(uploader storage.Uploader, logger *slog.Logger, clamdAddr string, maxBytes int64) *AssetHandler {
	return &AssetHandler{
		Uploader:  uploader,
		Logger:    logger,
		ClamdAddr: clamdAddr,
		MaxBytes:  maxBytes,
	}
}

// UploadAsset 接收 multipart 图片并返回可公开访问的 URL。
func (h *AssetHandler) UploadAsset(c *gin.Context) {
	if h.Uploader == nil {
		Unavailable(c, "image storage is not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		BadRequest(c, "file too large")
		return
	}

	if h.ClamdAddr != "" {
		clamdClient := clamd.NewClamd(h.ClamdAddr)

		fileReader, err := file.Open()
		if err != nil {
			Internal(c, "failed to open file")
			return
		}

		abortChan := make(chan bool)
		scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
		fileReader.Close()
		if err != nil {
			h.Logger.Error("scan file", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		defer close(abortChan)

		for result := range scanChan {
			if result.Status != clamd.RES_OK {
				BadRequest(c, "malicious file detected")
				return
			}
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".png"
	}
	objectKey := fmt.Sprintf("portfolio-assets/%s%s", uuid.NewString(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Uploader.Upload(c.Request.Context(), objectKey, fileReader, file.Size, contentType)
	if err != nil {
		h.Logger.Error("upload file", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"secure_url": url})
}
