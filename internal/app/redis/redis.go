package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"paperhelp/internal/app/config"
	"paperhelp/internal/app/pricing"

	"github.com/go-redis/redis/v8"
)

const (
	catalogKey       = "paperhelp:catalog"
	jwtBlacklistPref = "paperhelp:jwt:blacklist:"
)

// Client кэширует справочник цен и хранит отозванные токены. Нулевой *Client
// допустим: кэш выключен, чтение всегда промахивается, запись ничего не делает.
type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{}

	client.cfg = cfg

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetCatalog возвращает справочник из кэша. ok=false при промахе.
func (c *Client) GetCatalog(ctx context.Context) (pricing.Catalog, bool, error) {
	if c == nil {
		return pricing.Catalog{}, false, nil
	}

	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return pricing.Catalog{}, false, nil
	}
	if err != nil {
		return pricing.Catalog{}, false, fmt.Errorf("get catalog from redis: %w", err)
	}

	var catalog pricing.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return pricing.Catalog{}, false, fmt.Errorf("decode cached catalog: %w", err)
	}
	return catalog, true, nil
}

func (c *Client) SetCatalog(ctx context.Context, catalog pricing.Catalog) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl()).Err()
}

// InvalidateCatalog сбрасывает кэш после изменения услуг администратором.
func (c *Client) InvalidateCatalog(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, catalogKey).Err()
}

func (c *Client) ttl() time.Duration {
	if c.cfg.CatalogTTL > 0 {
		return c.cfg.CatalogTTL
	}
	return 10 * time.Minute
}

func getJWTKey(token string) string {
	return jwtBlacklistPref + token
}

// WriteJWTToBlacklist отзывает токен на ttl
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// CheckJWTInBlacklist сообщает, отозван ли токен
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) (bool, error) {
	if c == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, getJWTKey(jwtStr)).Result()
	if err != nil {
		return false, fmt.Errorf("check jwt blacklist: %w", err)
	}
	return n > 0, nil
}
