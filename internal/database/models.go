package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 内置角色名。持有 admin 角色的会话才允许进入编辑接口。
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 表示可登录的账号信息。
type User struct {
	gorm.Model
	Email              string `gorm:"uniqueIndex;size:255"`
	PasswordHash       string `gorm:"size:255"`
	MustChangePassword bool   `gorm:"default:false"`
	Roles              []Role `gorm:"many2many:user_roles"`
}

// Role 表示一个可分配的角色。
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64"`
}

// UserRole 是用户与角色的关联表（复合主键）。
type UserRole struct {
	UserID uint `gorm:"primaryKey"`
	RoleID uint `gorm:"primaryKey"`
}

// TableName 与前端原有表名保持一致。
func (UserRole) TableName() string { return "user_roles" }

// HeroContent 是首屏横幅的单例行（固定 id=1）。
type HeroContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	ImageURL  string    `gorm:"size:512" json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HeroContent) TableName() string { return "hero_content" }

// AboutContent 是关于页的单例行（固定 id=1）。
type AboutContent struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Bio1            string    `gorm:"type:text" json:"bio1"`
	Bio2            string    `gorm:"type:text" json:"bio2"`
	Location        string    `gorm:"size:255" json:"location"`
	Experience      string    `gorm:"size:255" json:"experience"`
	Specialty       string    `gorm:"size:255" json:"specialty"`
	ProfileImageURL string    `gorm:"size:512" json:"profile_image_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (AboutContent) TableName() string { return "about_content" }

// ContactInfo 是联系方式的单例行（固定 id=1）。
type ContactInfo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactInfo) TableName() string { return "contact_info" }

// Service 表示对外提供的一项服务，按 id 升序展示。
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Icon        string    `gorm:"size:16" json:"icon"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Skill 表示一项技能卡片。主键是调用方可指定的 slug，
// 以便前端用 /skills/:id 做路由。
type Skill struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"desc"`
	Icon        string    `gorm:"size:16" json:"icon"`
	Theme       string    `gorm:"size:32" json:"theme"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project 表示一条作品记录，按 order_index 升序展示。
type Project struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	ImageURL    string                      `gorm:"size:512" json:"image_url"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	OrderIndex  int                         `gorm:"index" json:"order_index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
