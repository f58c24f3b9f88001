// Package notify 维护面向编辑者的短暂状态通知（toast）。
// 条目写入 Redis 并带 TTL（到期即自动消失），同时发布到 Pub/Sub
// 频道，由 WebSocket 处理器实时推给已连接的编辑端。
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 通知类别。
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Channel 是通知的 Redis Pub/Sub 频道名。
const Channel = "admin_notify"

const keyPrefix = "toast:"

// Notification 是一条可消除的状态通知。
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier 基于 Redis 实现通知的存取与广播。
type Notifier struct {
	redis  redis.UniversalClient
	logger *slog.Logger
	ttl    time.Duration
}

// New 构造 Notifier。ttl 是每条通知的自动消失时间。
func New(redisClient redis.UniversalClient, logger *slog.Logger, ttl time.Duration) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		redis:  redisClient,
		logger: logger,
		ttl:    ttl,
	}
}

// Push 追加一条通知并广播。通知是尽力而为的旁路：
// 失败只记日志，绝不让触发它的保存流程失败。
func (n *Notifier) Push(ctx context.Context, kind, message string) {
	entry := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		n.logger.Error("encode notification failed", slog.Any("error", err))
		return
	}

	if err := n.redis.Set(ctx, keyPrefix+entry.ID, payload, n.ttl).Err(); err != nil {
		n.logger.Error("store notification failed", slog.Any("error", err))
	}
	if err := n.redis.Publish(ctx, Channel, payload).Err(); err != nil {
		n.logger.Error("publish notification failed", slog.Any("error", err))
	}
}

// Active 列出尚未过期、尚未被消除的通知。
func (n *Notifier) Active(ctx context.Context) ([]Notification, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := n.redis.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan notifications: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	entries := make([]Notification, 0, len(keys))
	for _, key := range keys {
		raw, err := n.redis.Get(ctx, key).Bytes()
		if err != nil {
			// 条目可能恰好在扫描与读取之间过期，跳过即可。
			continue
		}
		var entry Notification
		if err := json.Unmarshal(raw, &entry); err != nil {
			n.logger.Warn("drop malformed notification", slog.String("key", key))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Dismiss 按 id 消除一条通知。不存在（已过期/已消除）时返回 false。
// 消除只影响目标条目，其余条目各自的 TTL 不受影响。
func (n *Notifier) Dismiss(ctx context.Context, id string) (bool, error) {
	removed, err := n.redis.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("dismiss notification: %w", err)
	}
	return removed > 0, nil
}
