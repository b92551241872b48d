package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"paperhelp/internal/app/dsn"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	AdminEmail  string
	Log         LogConfig
	Pricing     PricingConfig

	// Заполняются из окружения
	DSN   string      `mapstructure:"-"`
	Redis RedisConfig `mapstructure:"-"`
	MinIO MinIOConfig `mapstructure:"-"`
	JWT   JWTConfig   `mapstructure:"-"`
}

type LogConfig struct {
	Level string
	JSON  bool
}

type PricingConfig struct {
	BasePricePerPage string
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
	CatalogTTL  time.Duration
}

// Enabled: без REDIS_HOST кэш справочника выключен.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"

	envJWTSecret = "JWT_SECRET"

	DefaultAdminEmail = "admin@user.com"

	// Секрет для локального запуска, в окружении задаётся JWT_SECRET
	defaultJWTSecret = "paperhelp-dev-secret"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("AdminEmail", DefaultAdminEmail)
	v.SetDefault("Log.Level", "info")
	v.SetDefault("Pricing.BasePricePerPage", "12.00")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if _, err = cfg.BasePrice(); err != nil {
		return nil, err
	}

	cfg.DSN = dsn.FromEnv()

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	if cfg.Redis.Host != "" {
		cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second
	cfg.Redis.CatalogTTL = 10 * time.Minute

	// инициализация MinIO конфигурации из env
	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = os.Getenv(envMinIOBucket)
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "paperhelp"
	}
	cfg.MinIO.UseSSL, _ = strconv.ParseBool(os.Getenv(envMinIOUseSSL))

	// инициализация JWT конфигурации
	cfg.JWT = JWTConfig{
		Token:         os.Getenv(envJWTSecret),
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Token == "" {
		cfg.JWT.Token = defaultJWTSecret
	}

	if err = configureLogger(cfg.Log); err != nil {
		return nil, err
	}

	if cfg.JWT.Token == defaultJWTSecret {
		log.Warn("JWT_SECRET is not set, using development secret")
	}

	log.Info("config parsed")

	return cfg, nil
}

// BasePrice возвращает базовую цену страницы.
func (c *Config) BasePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(c.Pricing.BasePricePerPage)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid base price per page %q: %w", c.Pricing.BasePricePerPage, err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("base price per page must not be negative: %s", price)
	}
	return price, nil
}

func configureLogger(c LogConfig) error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	if c.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
