package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vendorhub/vendor-approval-api/internal/config"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

const employeeKeyPrefix = "vendor-approval:employee:"

// RedisClient wraps the Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedis creates a new Redis client
func NewRedis(cfg config.RedisConfig) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	return &RedisClient{Client: rdb}
}

// Ping tests the Redis connection
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// EmployeeCache keeps employee lookups close to the service. Misses and Redis
// failures are reported as a miss so callers fall back to the database.
type EmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEmployeeCache creates an employee cache with the given entry TTL
func NewEmployeeCache(client *redis.Client, ttl time.Duration) *EmployeeCache {
	return &EmployeeCache{client: client, ttl: ttl}
}

// Get returns a cached employee. The error is non-nil only for Redis or decode failures.
func (c *EmployeeCache) Get(ctx context.Context, employeeID string) (*models.Employee, bool, error) {
	raw, err := c.client.Get(ctx, employeeKeyPrefix+employeeID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read employee cache: %w", err)
	}

	var employee models.Employee
	if err := json.Unmarshal(raw, &employee); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached employee: %w", err)
	}
	return &employee, true, nil
}

// Set stores an employee for the configured TTL
func (c *EmployeeCache) Set(ctx context.Context, employee *models.Employee) error {
	raw, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("failed to encode employee: %w", err)
	}
	if err := c.client.Set(ctx, employeeKeyPrefix+employee.ID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write employee cache: %w", err)
	}
	return nil
}

// Invalidate drops a cached employee
func (c *EmployeeCache) Invalidate(ctx context.Context, employeeID string) error {
	return c.client.Del(ctx, employeeKeyPrefix+employeeID).Err()
}
