package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vfxfolio/internal/config"
)

// InitDatabase 使用配置初始化 PostgreSQL 连接，并返回 GORM 数据库实例。
func InitDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate 建表并补齐内置角色。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Role{},
		&UserRole{},
		&HeroContent{},
		&AboutContent{},
		&ContactInfo{},
		&Service{},
		&Skill{},
		&Project{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return SeedRoles(db)
}

// SeedRoles 确保内置角色行存在（admin 为可编辑角色）。
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{RoleAdmin, RoleUser} {
		role := Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
