// Package content 提供站点内容的存取门面：真实实现基于 GORM，
// 当数据库未配置时退化为惰性 stub，读取走默认内容、写入统一拒绝。
package content

import (
	"context"
	"errors"

	"vfxfolio/internal/database"
)

var (
	// ErrNotFound 表示目标行不存在。
	ErrNotFound = errors.New("content: not found")
	// ErrNotConfigured 表示内容存储未配置（降级模式）。
	ErrNotConfigured = errors.New("content: store not configured")
)

// Store 是各内容区块的行级存取契约。
// 所有 Save* 都是按主键的 upsert，并且返回落库后的行；
// 调用方必须以返回值为准刷新展示状态，而不是沿用提交的缓冲。
type Store interface {
	Hero(ctx context.Context) (*database.HeroContent, error)
	SaveHero(ctx context.Context, row database.HeroContent) (*database.HeroContent, error)

	About(ctx context.Context) (*database.AboutContent, error)
	SaveAbout(ctx context.Context, row database.AboutContent) (*database.AboutContent, error)

	ContactInfo(ctx context.Context) (*database.ContactInfo, error)
	SaveContactInfo(ctx context.Context, row database.ContactInfo) (*database.ContactInfo, error)

	Services(ctx context.Context) ([]database.Service, error)
	SaveService(ctx context.Context, row database.Service) (*database.Service, error)
	DeleteService(ctx context.Context, id uint) error

	Skills(ctx context.Context) ([]database.Skill, error)
	SaveSkill(ctx context.Context, row database.Skill) (*database.Skill, error)
	DeleteSkill(ctx context.Context, slug string) error

	Projects(ctx context.Context) ([]database.Project, error)
	Project(ctx context.Context, id uint) (*database.Project, error)
	SaveProject(ctx context.Context, row database.Project) (*database.Project, error)
	DeleteProject(ctx context.Context, id uint) error

	// IsEditor 返回用户的角色分配中是否包含 admin。
	// 任何查询错误都应被调用方视为“否”（fail closed）。
	IsEditor(ctx context.Context, userID uint) (bool, error)
}
