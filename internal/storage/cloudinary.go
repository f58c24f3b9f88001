package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"vfxfolio/internal/config"
)

// CloudinaryUploader 将图片以 multipart 形式转发到图床的
// 未签名上传接口，并返回其 secure_url。
type CloudinaryUploader struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

// NewCloudinaryUploader 根据配置构造上传客户端。
func NewCloudinaryUploader(cfg config.ImageConfig) *CloudinaryUploader {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return &CloudinaryUploader{
		uploadURL:    fmt.Sprintf("%s/v1_1/%s/image/upload", base, cfg.CloudName),
		uploadPreset: cfg.UploadPreset,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Uploader = (*CloudinaryUploader)(nil)

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload 转发文件并解析返回的 secure_url。
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, reader io.Reader, _ int64, _ string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return "", fmt.Errorf("copy upload body: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("write upload preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send upload request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}

	var parsed cloudinaryResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode upload response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image host status %d: %s", resp.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("image host returned no secure_url")
	}
	return parsed.SecureURL, nil
}
