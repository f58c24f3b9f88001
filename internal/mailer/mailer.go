// Package mailer 将联系表单提交转发给第三方邮件 API（Web3Forms 形态）。
// 不做重试、不做排队：对低流量联系表单而言，丢一条就是丢一条。
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Submission 是经过校验的一条联系表单提交。
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Mailer 发送一条联系消息。
type Mailer interface {
	Send(ctx context.Context, sub Submission) error
}

// Client 通过 HTTP 调用第三方邮件 API。
type Client struct {
	endpoint   string
	accessKey  string
	to         string
	subject    string
	httpClient *http.Client
}

// NewClient 构造邮件转发客户端。
func NewClient(endpoint, accessKey, to, subject string) *Client {
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		accessKey:  accessKey,
		to:         to,
		subject:    subject,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type relayPayload struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	To        string `json:"to"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send 转发一条提交。上游返回 success=false 或非 2xx 都视为失败。
func (c *Client) Send(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(relayPayload{
		AccessKey: c.accessKey,
		Subject:   c.subject,
		FromName:  sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		To:        c.to,
	})
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send relay request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
	if err != nil {
		return fmt.Errorf("read relay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed relayResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode relay response: %w", err)
	}
	if !parsed.Success {
		return fmt.Errorf("relay rejected message: %s", parsed.Message)
	}
	return nil
}

// Noop 在未配置邮件 API 时顶替 Client：只记录提交内容并视为成功，
// 与站点早期“仅打印日志”的联系接口行为一致。
type Noop struct {
	Logger *slog.Logger
}

// Send 记录提交内容并返回成功。
func (n *Noop) Send(_ context.Context, sub Submission) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("contact form submission (mail relay not configured)",
		slog.String("name", sub.Name),
		slog.String("email", sub.Email),
		slog.Int("message_len", len(sub.Message)),
	)
	return nil
}
