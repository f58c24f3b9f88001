package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Mail      MailConfig      `mapstructure:"mail"`
	Image     ImageConfig     `mapstructure:"image"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Contact   ContactConfig   `mapstructure:"contact"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains connection options for PostgreSQL.
// An empty Host switches the service into stub-store mode: public pages render
// hardcoded defaults and every write is refused with 503.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Configured 返回数据库配置是否存在（缺失时整体降级为只读默认内容）。
func (d DatabaseConfig) Configured() bool {
	return d.Host != ""
}

// RedisConfig 包含 Redis 连接配置。
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr 返回 host:port 形式的 Redis 地址。
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig 包含 JWT 密钥位置与令牌策略。
type AuthConfig struct {
	PrivateKeyFile        string        `mapstructure:"private_key_file"`
	PublicKeyFile         string        `mapstructure:"public_key_file"`
	AccessTokenTTL        time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL       time.Duration `mapstructure:"refresh_token_ttl"`
	CookieDomain          string        `mapstructure:"cookie_domain"`
	LoginRateLimitPerHour int           `mapstructure:"login_rate_limit_per_hour"`
	LoginLockThreshold    int           `mapstructure:"login_lock_threshold"`
	LoginLockTTL          time.Duration `mapstructure:"login_lock_ttl"`
}

// Configured 返回是否具备签发令牌所需的密钥对。
func (a AuthConfig) Configured() bool {
	return a.PrivateKeyFile != "" && a.PublicKeyFile != ""
}

// MailConfig 描述联系表单转发的第三方邮件 API。
// AccessKey 为空时仅记录日志并返回成功（与站点早期行为一致）。
type MailConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	To        string `mapstructure:"to"`
	Subject   string `mapstructure:"subject"`
}

// ImageConfig 描述图床（Cloudinary 形态）的未签名上传配置。
type ImageConfig struct {
	CloudName    string `mapstructure:"cloud_name"`
	UploadPreset string `mapstructure:"upload_preset"`
	BaseURL      string `mapstructure:"base_url"`
}

// Configured 返回图床是否可用。
func (i ImageConfig) Configured() bool {
	return i.CloudName != "" && i.UploadPreset != ""
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage,
// used as the self-hosted fallback when no image host is configured.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// Configured 返回 MinIO 回退存储是否可用。
func (m MinIOConfig) Configured() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

// UploadConfig 约束上传接口。ClamdAddr 为空时跳过病毒扫描。
type UploadConfig struct {
	MaxBytes  int64  `mapstructure:"max_bytes"`
	ClamdAddr string `mapstructure:"clamd_addr"`
}

// AssistantConfig 控制脚本化助手的模拟思考延迟。
type AssistantConfig struct {
	ReplyDelay time.Duration `mapstructure:"reply_delay"`
}

// NotifyConfig 控制通知条目的自动消失时间。
type NotifyConfig struct {
	ToastTTL time.Duration `mapstructure:"toast_ttl"`
}

// ContactConfig 约束联系表单的提交频率。
type ContactConfig struct {
	RateLimitPerHour int `mapstructure:"rate_limit_per_hour"`
}

// DSN builds a lib/pq compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "vfxfolio")
	v.SetDefault("database.user", "vfxfolio")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("auth.access_token_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_token_ttl", 30*24*time.Hour)
	v.SetDefault("auth.login_rate_limit_per_hour", 10)
	v.SetDefault("auth.login_lock_threshold", 5)
	v.SetDefault("auth.login_lock_ttl", 15*time.Minute)
	v.SetDefault("mail.endpoint", "https://api.web3forms.com/submit")
	v.SetDefault("mail.subject", "New portfolio contact form submission")
	v.SetDefault("image.base_url", "https://api.cloudinary.com")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "portfolio-assets")
	v.SetDefault("upload.max_bytes", 5*1024*1024)
	v.SetDefault("assistant.reply_delay", time.Second)
	v.SetDefault("notify.toast_ttl", 10*time.Second)
	v.SetDefault("contact.rate_limit_per_hour", 20)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                       "API_PORT",
		"database.host":                  "DATABASE_HOST",
		"database.port":                  "DATABASE_PORT",
		"database.name":                  "POSTGRES_DB",
		"database.user":                  "POSTGRES_USER",
		"database.password":              "POSTGRES_PASSWORD",
		"database.sslmode":               "DATABASE_SSLMODE",
		"redis.host":                     "REDIS_HOST",
		"redis.port":                     "REDIS_PORT",
		"auth.private_key_file":          "JWT_PRIVATE_KEY_FILE",
		"auth.public_key_file":           "JWT_PUBLIC_KEY_FILE",
		"auth.access_token_ttl":          "JWT_ACCESS_TOKEN_TTL",
		"auth.refresh_token_ttl":         "JWT_REFRESH_TOKEN_TTL",
		"auth.cookie_domain":             "AUTH_COOKIE_DOMAIN",
		"auth.login_rate_limit_per_hour": "LOGIN_RATE_LIMIT_PER_HOUR",
		"auth.login_lock_threshold":      "LOGIN_LOCK_THRESHOLD",
		"auth.login_lock_ttl":            "LOGIN_LOCK_TTL",
		"mail.endpoint":                  "MAIL_ENDPOINT",
		"mail.access_key":                "MAIL_ACCESS_KEY",
		"mail.to":                        "MAIL_TO",
		"mail.subject":                   "MAIL_SUBJECT",
		"image.cloud_name":               "IMAGE_CLOUD_NAME",
		"image.upload_preset":            "IMAGE_UPLOAD_PRESET",
		"image.base_url":                 "IMAGE_BASE_URL",
		"minio.endpoint":                 "MINIO_ENDPOINT",
		"minio.access_key_id":            "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key":        "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":                  "MINIO_USE_SSL",
		"minio.bucket":                   "MINIO_BUCKET",
		"upload.max_bytes":               "UPLOAD_MAX_BYTES",
		"upload.clamd_addr":              "CLAMD_ADDR",
		"assistant.reply_delay":          "ASSISTANT_REPLY_DELAY",
		"notify.toast_ttl":               "NOTIFY_TOAST_TTL",
		"contact.rate_limit_per_hour":    "CONTACT_RATE_LIMIT_PER_HOUR",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Database.Configured() {
		if cfg.Database.Port <= 0 {
			return errors.New("database port must be positive")
		}
		if cfg.Database.Name == "" {
			return errors.New("database name is required")
		}
		if cfg.Database.User == "" {
			return errors.New("database user is required")
		}
		if cfg.Database.Password == "" {
			return errors.New("database password is required")
		}
		if cfg.Database.SSLMode == "" {
			return errors.New("database sslmode is required")
		}
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.Auth.Configured() {
		if cfg.Auth.AccessTokenTTL <= 0 {
			return errors.New("access token ttl must be positive")
		}
		if cfg.Auth.RefreshTokenTTL <= 0 {
			return errors.New("refresh token ttl must be positive")
		}
	}
	if cfg.Mail.AccessKey != "" && cfg.Mail.To == "" {
		return errors.New("mail recipient is required when mail access key is set")
	}
	if cfg.MinIO.Configured() {
		if cfg.MinIO.AccessKeyID == "" {
			return errors.New("minio access key id is required")
		}
		if cfg.MinIO.SecretAccessKey == "" {
			return errors.New("minio secret access key is required")
		}
	}
	if cfg.Upload.MaxBytes <= 0 {
		return errors.New("upload max bytes must be positive")
	}
	if cfg.Notify.ToastTTL <= 0 {
		return errors.New("toast ttl must be positive")
	}
	return nil
}
