package api

import (
	"context"
	"time"

	"paperhelp/internal/app/config"
	"paperhelp/internal/app/handler"
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/redis"
	"paperhelp/internal/app/repository"
	"paperhelp/internal/app/storage"
	"paperhelp/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// newStore выбирает хранилище: PostgreSQL, если задан DSN, иначе демо-данные в памяти.
func newStore(cfg *config.Config) (repository.Store, error) {
	if cfg.DSN == "" {
		logrus.Warn("DB_HOST is not set, using in-memory demo store")
		return repository.NewMemory(repository.Seed(time.Now())), nil
	}

	repo, err := repository.New(cfg.DSN)
	if err != nil {
		return nil, err
	}
	logrus.Info("connected to postgres")
	return repo, nil
}

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Redis и MinIO необязательны: без них сервис работает в упрощённом режиме
	var cache *redis.Client
	if cfg.Redis.Enabled() {
		cache, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			logrus.Errorf("redis недоступен, кэш справочника выключен: %v", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	var files *storage.MinIOClient
	if cfg.MinIO.Enabled() {
		files, err = storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			logrus.Errorf("minio недоступен, файлы не сохраняются: %v", err)
			files = nil
		}
	}

	basePrice, err := cfg.BasePrice()
	if err != nil {
		logrus.Fatal(err)
	}

	// Отзыв токенов при выходе работает только с Redis
	var blacklist middleware.TokenBlacklist
	if cache != nil {
		blacklist = cache
	}
	auth := middleware.NewAuthMiddleware(blacklist, cfg.JWT, cfg.AdminEmail)

	h := handler.NewHandler(store, cache, files, auth, basePrice)

	application := pkg.NewApp(cfg, gin.Default(), h)
	application.RunApp()

	logrus.Info("Server down")
}
