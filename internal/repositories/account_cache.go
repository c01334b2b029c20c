package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/models"
)

// AccountCacheRepository provides cached account profiles using Redis
type AccountCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewAccountCacheRepository creates a new repository instance with the given TTL
func NewAccountCacheRepository(client *redis.Client, expiration time.Duration) *AccountCacheRepository {
	return &AccountCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(accountID uuid.UUID) string {
	return fmt.Sprintf("account:profile:%s", accountID)
}

// GetProfile fetches a cached profile. Returns nil on a cache miss.
func (r *AccountCacheRepository) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountProfile, error) {
	key := profileKey(accountID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var profile models.AccountProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return &profile, nil
}

// SetProfile caches a profile in Redis with expiration
func (r *AccountCacheRepository) SetProfile(ctx context.Context, profile *models.AccountProfile) error {
	key := profileKey(profile.AccountID)

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// DeleteProfile drops a cached profile after a mutation
func (r *AccountCacheRepository) DeleteProfile(ctx context.Context, accountID uuid.UUID) error {
	key := profileKey(accountID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
