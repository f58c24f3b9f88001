package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vfxfolio/internal/api"
	"vfxfolio/internal/assistant"
	"vfxfolio/internal/auth"
	"vfxfolio/internal/config"
	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
	"vfxfolio/internal/mailer"
	"vfxfolio/internal/notify"
	"vfxfolio/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limits and notifications degraded", "addr", cfg.Redis.Addr(), "error", err)
	}
	cancel()

	store, db := buildStore(cfg, logger)
	authService := buildAuthService(cfg, logger)
	uploader := buildUploader(cfg, logger)
	contactMailer := buildMailer(cfg, logger)
	notifier := notify.New(redisClient, logger, cfg.Notify.ToastTTL)
	responder := assistant.NewResponder(cfg.Assistant.ReplyDelay)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, api.Deps{
		DB:        db,
		Store:     store,
		Redis:     redisClient,
		Auth:      authService,
		Logger:    logger,
		Mailer:    contactMailer,
		Uploader:  uploader,
		Notifier:  notifier,
		Responder: responder,
		Config:    cfg,
	})

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", "address", address)

	if err := router.Run(address); err != nil {
		logger.Error("api server exited", "error", err)
		os.Exit(1)
	}
}

// buildStore 在数据库可用时返回 GormStore，否则返回 StubStore。
// 缺库只关掉写路径：公开读取仍然能拿到默认内容。
func buildStore(cfg *config.Config, logger *slog.Logger) (content.Store, *gorm.DB) {
	if !cfg.Database.Configured() {
		logger.Warn("database not configured, serving default content read-only")
		return content.NewStubStore(), nil
	}

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logger.Error("init database failed, serving default content read-only", "error", err)
		return content.NewStubStore(), nil
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return content.NewGormStore(db), db
}

func buildAuthService(cfg *config.Config, logger *slog.Logger) *auth.AuthService {
	if !cfg.Auth.Configured() {
		logger.Warn("jwt key pair not configured, editor surface disabled")
		return nil
	}

	privateKey, err := os.ReadFile(cfg.Auth.PrivateKeyFile)
	if err != nil {
		logger.Error("read jwt private key", "path", cfg.Auth.PrivateKeyFile, "error", err)
		os.Exit(1)
	}
	publicKey, err := os.ReadFile(cfg.Auth.PublicKeyFile)
	if err != nil {
		logger.Error("read jwt public key", "path", cfg.Auth.PublicKeyFile, "error", err)
		os.Exit(1)
	}

	authService, err := auth.NewAuthService(privateKey, publicKey, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		logger.Error("init auth service", "error", err)
		os.Exit(1)
	}
	return authService
}

// buildUploader 优先使用图床的未签名上传，其次是自建的 MinIO，
// 都没有时返回 nil，上传接口回 503。
func buildUploader(cfg *config.Config, logger *slog.Logger) storage.Uploader {
	if cfg.Image.Configured() {
		logger.Info("asset uploads via image host", "cloud", cfg.Image.CloudName)
		return storage.NewCloudinaryUploader(cfg.Image)
	}
	if cfg.MinIO.Configured() {
		uploader, err := storage.NewMinIOUploader(cfg.MinIO)
		if err != nil {
			logger.Error("init minio uploader, uploads disabled", "error", err)
			return nil
		}
		logger.Info("asset uploads via minio", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.Bucket)
		return uploader
	}
	logger.Warn("no asset storage configured, uploads disabled")
	return nil
}

func buildMailer(cfg *config.Config, logger *slog.Logger) mailer.Mailer {
	if cfg.Mail.AccessKey == "" {
		logger.Warn("mail relay not configured, contact submissions will only be logged")
		return &mailer.Noop{Logger: logger}
	}
	return mailer.NewClient(cfg.Mail.Endpoint, cfg.Mail.AccessKey, cfg.Mail.To, cfg.Mail.Subject)
}
