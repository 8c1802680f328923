package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campusBack/internal/models"
)

// RecommendationCache memoizes scored result sets in Redis. Entries are
// keyed by the target user plus a content hash of the favorite-edge set,
// so any favorite change produces a fresh key. The TTL stays short
// because decayed ratings drift with the clock even when no data
// changes.
type RecommendationCache struct {
	RDB *redis.Client
	TTL time.Duration
}

const defaultRecommendationTTL = 5 * time.Minute

func recommendationKey(userID int, favorites []models.ServiceFavorite) string {
	h := sha256.New()
	for _, fav := range favorites {
		fmt.Fprintf(h, "%d:%d;", fav.UserID, fav.ServiceID)
	}
	return fmt.Sprintf("recommend:user:%d:%x", userID, h.Sum(nil))
}

func (c *RecommendationCache) Get(ctx context.Context, userID int, favorites []models.ServiceFavorite) ([]models.ScoredService, bool) {
	if c == nil || c.RDB == nil {
		return nil, false
	}

	data, err := c.RDB.Get(ctx, recommendationKey(userID, favorites)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}

	var scored []models.ScoredService
	if err := json.Unmarshal(data, &scored); err != nil {
		return nil, false
	}
	return scored, true
}

func (c *RecommendationCache) Set(ctx context.Context, userID int, favorites []models.ServiceFavorite, scored []models.ScoredService) error {
	if c == nil || c.RDB == nil {
		return nil
	}

	data, err := json.Marshal(scored)
	if err != nil {
		return err
	}

	ttl := c.TTL
	if ttl <= 0 {
		ttl = defaultRecommendationTTL
	}
	return c.RDB.Set(ctx, recommendationKey(userID, favorites), data, ttl).Err()
}
