package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dashboardKeyPrefix = "dashboard:"

// RedisDashboardCache compartilha dashboards entre instâncias da API
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDashboardCache(ctx context.Context, cfg config.Redis, ttl time.Duration) (*RedisDashboardCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("URL do redis inválida: %w", err)
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opts.DB = cfg.DB
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("falha ao conectar no redis: %w", err)
	}

	return &RedisDashboardCache{client: client, ttl: ttl}, nil
}

func (c *RedisDashboardCache) Get(ctx context.Context, key string) (*domain.Dashboard, error) {
	redisKey := dashboardKeyPrefix + key

	data, err := c.client.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("falha no get do redis: %w", err)
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		// Remove o valor corrompido para não falhar de novo
		c.client.Del(ctx, redisKey)
		return nil, fmt.Errorf("falha ao deserializar dashboard: %w", err)
	}

	return &dashboard, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, key string, dashboard *domain.Dashboard) error {
	data, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("falha ao serializar dashboard: %w", err)
	}

	return c.client.Set(ctx, dashboardKeyPrefix+key, data, c.ttl).Err()
}

// InvalidateAll remove todos os dashboards, usado depois de uma sincronização
func (c *RedisDashboardCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, dashboardKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("falha ao listar chaves do redis: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	logrus.WithField("keys", len(keys)).Debug("cache: invalidando dashboards")
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}
