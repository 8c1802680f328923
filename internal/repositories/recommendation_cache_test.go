package repositories

import (
	"testing"

	"campusBack/internal/models"
)

func TestRecommendationKeyStable(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 1, ServiceID: 10},
		{UserID: 2, ServiceID: 11},
	}

	if recommendationKey(1, favorites) != recommendationKey(1, favorites) {
		t.Errorf("same input must produce the same key")
	}
}

func TestRecommendationKeyChangesWithContent(t *testing.T) {
	base := []models.ServiceFavorite{{UserID: 1, ServiceID: 10}}
	extended := []models.ServiceFavorite{{UserID: 1, ServiceID: 10}, {UserID: 2, ServiceID: 10}}

	if recommendationKey(1, base) == recommendationKey(1, extended) {
		t.Errorf("a changed favorite set must produce a fresh key")
	}
	if recommendationKey(1, base) == recommendationKey(2, base) {
		t.Errorf("keys must be scoped per user")
	}
}

func TestRecommendationCacheNilClient(t *testing.T) {
	var c *RecommendationCache

	if _, ok := c.Get(nil, 1, nil); ok {
		t.Errorf("nil cache must miss")
	}
	if err := c.Set(nil, 1, nil, nil); err != nil {
		t.Errorf("nil cache Set must be a no-op, got %v", err)
	}
}
