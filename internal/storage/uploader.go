package storage

import (
	"context"
	"io"
)

// Uploader 把一张图片送往托管位置并返回可直接引用的 URL。
// 实现有两种：Cloudinary 形态的图床转发与自托管 MinIO 回退，
// 由启动时的配置决定选哪一个。
type Uploader interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}
