package content

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vfxfolio/internal/database"
)

// GormStore 是基于 PostgreSQL/GORM 的真实内容存储。
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 构造 GormStore。
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

// 单例行固定使用 id=1，重复保存只会原地覆盖，不会产生第二行。
const singletonID = 1

func upsertByID[T any](ctx context.Context, db *gorm.DB, row *T, id any) (*T, error) {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert: %w", err)
	}

	// 以落库行为准返回，带上服务端赋值的字段（时间戳、默认值）。
	var saved T
	if err := db.WithContext(ctx).First(&saved, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload after upsert: %w", err)
	}
	return &saved, nil
}

func (s *GormStore) Hero(ctx context.Context) (*database.HeroContent, error) {
	var row database.HeroContent
	if err := s.db.WithContext(ctx).First(&row, singletonID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &row, nil
}

func (s *GormStore) SaveHero(ctx context.Context, row database.HeroContent) (*database.HeroContent, error) {
	row.ID = singletonID
	return upsertByID(ctx, s.db, &row, singletonID)
}

func (s *GormStore) About(ctx context.Context) (*database.AboutContent, error) {
	var row database.AboutContent
	if err := s.db.WithContext(ctx).First(&row, singletonID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &row, nil
}

func (s *GormStore) SaveAbout(ctx context.Context, row database.AboutContent) (*database.AboutContent, error) {
	row.ID = singletonID
	return upsertByID(ctx, s.db, &row, singletonID)
}

func (s *GormStore) ContactInfo(ctx context.Context) (*database.ContactInfo, error) {
	var row database.ContactInfo
	if err := s.db.WithContext(ctx).First(&row, singletonID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &row, nil
}

func (s *GormStore) SaveContactInfo(ctx context.Context, row database.ContactInfo) (*database.ContactInfo, error) {
	row.ID = singletonID
	return upsertByID(ctx, s.db, &row, singletonID)
}

func (s *GormStore) Services(ctx context.Context) ([]database.Service, error) {
	var rows []database.Service
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapGormError(err)
	}
	return rows, nil
}

func (s *GormStore) SaveService(ctx context.Context, row database.Service) (*database.Service, error) {
	if row.ID == 0 {
		// 新增走纯 insert，让数据库分配 id。
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("insert service: %w", err)
		}
	}
	return upsertByID(ctx, s.db, &row, row.ID)
}

func (s *GormStore) DeleteService(ctx context.Context, id uint) error {
	return deleteByID[database.Service](ctx, s.db, id)
}

func (s *GormStore) Skills(ctx context.Context) ([]database.Skill, error) {
	var rows []database.Skill
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapGormError(err)
	}
	return rows, nil
}

func (s *GormStore) SaveSkill(ctx context.Context, row database.Skill) (*database.Skill, error) {
	if row.ID == "" {
		return nil, errors.New("skill slug is required")
	}
	return upsertByID(ctx, s.db, &row, row.ID)
}

func (s *GormStore) DeleteSkill(ctx context.Context, slug string) error {
	return deleteByID[database.Skill](ctx, s.db, slug)
}

func (s *GormStore) Projects(ctx context.Context) ([]database.Project, error) {
	var rows []database.Project
	if err := s.db.WithContext(ctx).Order("order_index ASC").Find(&rows).Error; err != nil {
		return nil, mapGormError(err)
	}
	return rows, nil
}

func (s *GormStore) Project(ctx context.Context, id uint) (*database.Project, error) {
	var row database.Project
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &row, nil
}

func (s *GormStore) SaveProject(ctx context.Context, row database.Project) (*database.Project, error) {
	if row.ID == 0 {
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("insert project: %w", err)
		}
	}
	return upsertByID(ctx, s.db, &row, row.ID)
}

func (s *GormStore) DeleteProject(ctx context.Context, id uint) error {
	return deleteByID[database.Project](ctx, s.db, id)
}

// IsEditor 通过 user_roles 关联判断用户是否持有 admin 角色。
func (s *GormStore) IsEditor(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&database.UserRole{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, database.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("query role assignments: %w", err)
	}
	return count > 0, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id any) error {
	var model T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return fmt.Errorf("delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func mapGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
