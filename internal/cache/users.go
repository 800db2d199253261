// Package cache fronts the user store with Redis. Only the two hot lookups
// are cached: user-by-email and email-existence. Failures are swallowed so a
// Redis outage degrades to database reads.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

const (
	userKeyPrefix        = "users::"
	emailExistsKeyPrefix = "email_exists::"
)

type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

// GetUser returns the cached user and whether the lookup was a hit.
func (c *UserCache) GetUser(ctx context.Context, email string) (*domain.User, bool) {
	payload, err := c.rdb.Get(ctx, userKeyPrefix+email).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("user cache read failed")
		}
		return nil, false
	}
	var u domain.User
	if err := json.Unmarshal(payload, &u); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("corrupt user cache entry")
		return nil, false
	}
	return &u, true
}

func (c *UserCache) SetUser(ctx context.Context, u *domain.User) {
	payload, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, userKeyPrefix+u.Email, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("user cache write failed")
	}
}

func (c *UserCache) GetEmailExists(ctx context.Context, email string) (exists, hit bool) {
	v, err := c.rdb.Get(ctx, emailExistsKeyPrefix+email).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("email-exists cache read failed")
		}
		return false, false
	}
	return v == "1", true
}

func (c *UserCache) SetEmailExists(ctx context.Context, email string, exists bool) {
	v := "0"
	if exists {
		v = "1"
	}
	if err := c.rdb.Set(ctx, emailExistsKeyPrefix+email, v, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("email-exists cache write failed")
	}
}

// Evict drops both cache entries for an email. Called on every write that
// can change the user row or the existence answer.
func (c *UserCache) Evict(ctx context.Context, email string) {
	if err := c.rdb.Del(ctx, userKeyPrefix+email, emailExistsKeyPrefix+email).Err(); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("user cache evict failed")
	}
}
