package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const profileInvalidationChannel = "titanlift::profile-invalidations"

// ProfileCache is a per instance, in memory cache of assembled profiles.
// Invalidations are published over redis so every instance drops its copy.
type ProfileCache struct {
	cache         *freecache.Cache
	expireSeconds int
	redisClient   *redis.Client
}

func NewProfileCache(redisClient *redis.Client, sizeMB int, ttl time.Duration) *ProfileCache {
	megabyte := 1024 * 1024
	return &ProfileCache{
		cache:         freecache.NewCache(sizeMB * megabyte),
		expireSeconds: int(ttl.Seconds()),
		redisClient:   redisClient,
	}
}

func profileCacheKey(userID uuid.UUID) []byte {
	return []byte("profile::" + userID.String())
}

// Get returns nil when the profile is not cached or has expired.
func (c *ProfileCache) Get(userID uuid.UUID) *Profile {
	cached, err := c.cache.Get(profileCacheKey(userID))
	if err != nil {
		return nil
	}

	p := &Profile{}
	if err := json.Unmarshal(cached, p); err != nil {
		return nil
	}
	return p
}

func (c *ProfileCache) Set(p *Profile) error {
	profileJson, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := c.cache.Set(profileCacheKey(p.UserID), profileJson, c.expireSeconds); err != nil {
		return fmt.Errorf("cache profile: %w", err)
	}
	return nil
}

func (c *ProfileCache) Delete(userID uuid.UUID) {
	c.cache.Del(profileCacheKey(userID))
}

// Invalidate drops the local entry and tells the other instances to drop theirs.
// A lost message leaves a stale copy for at most the cache ttl.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.Delete(userID)
	if err := c.redisClient.Publish(ctx, profileInvalidationChannel, userID.String()).Err(); err != nil {
		return fmt.Errorf("publish profile invalidation: %w", err)
	}
	return nil
}

// HandleInvalidation applies a message received on the invalidation channel.
func (c *ProfileCache) HandleInvalidation(payload string) error {
	userID, err := uuid.Parse(payload)
	if err != nil {
		return fmt.Errorf("invalid profile invalidation [%s]: %w", payload, err)
	}
	c.Delete(userID)
	return nil
}

// ListenForInvalidations blocks until ctx is done.
func (c *ProfileCache) ListenForInvalidations(ctx context.Context) {
	sub := c.redisClient.Subscribe(ctx, profileInvalidationChannel)
	defer func() {
		if err := sub.Close(); err != nil {
			log.Errorf("close profile invalidations subscription: %s", err)
		}
	}()

	log.Debugf("listening for profile invalidations on [%s]", profileInvalidationChannel)
	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := c.HandleInvalidation(msg.Payload); err != nil {
				log.Warnf("profile cache: %s", err)
			}
		}
	}
}
