package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/dto"
)

const reportKeyPrefix = "financialClosure:"

// ReportCache stores computed financial closures. Misses and backend errors
// look the same to callers: the closure is recomputed.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.FinancialClosureDTO, bool)
	Set(ctx context.Context, key string, v *dto.FinancialClosureDTO)
}

// ReportKey changes whenever the dataset version, the year or the current
// month changes.
func ReportKey(version uint64, year int, now time.Time) string {
	return fmt.Sprintf("v%d:y%d:%04d-%02d", version, year, now.Year(), int(now.Month()))
}

// ===============================
// Redis
// ===============================

type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl, log: log}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.FinancialClosureDTO, bool) {
	data, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var v dto.FinancialClosureDTO
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.Warn("report cache entry corrupted", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

func (c *RedisReportCache) Set(ctx context.Context, key string, v *dto.FinancialClosureDTO) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("report cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, reportKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// ===============================
// Nop
// ===============================

type NopReportCache struct{}

func (NopReportCache) Get(context.Context, string) (*dto.FinancialClosureDTO, bool) {
	return nil, false
}

func (NopReportCache) Set(context.Context, string, *dto.FinancialClosureDTO) {}

var (
	_ ReportCache = (*RedisReportCache)(nil)
	_ ReportCache = NopReportCache{}
)
