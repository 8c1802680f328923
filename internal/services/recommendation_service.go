package services

import (
	"context"
	"log"
	"time"

	"campusBack/internal/models"
	"campusBack/internal/recommend"
	"campusBack/internal/repositories"
)

// RecommendationService runs the scoring pipeline for one user: fetch
// the catalog with its relations, decay the review history, rebuild the
// co-favorite similarity matrix, then score and rank. Every request
// recomputes from the latest data; the Redis cache only short-circuits
// repeats while the favorite-edge set is unchanged.
type RecommendationService struct {
	ServiceRepo  *repositories.ServiceRepository
	ReviewsRepo  *repositories.ReviewRepository
	FavoriteRepo *repositories.ServiceFavoriteRepository
	Cache        *repositories.RecommendationCache
	Weights      recommend.Weights
}

func (s *RecommendationService) GetRecommendedServices(ctx context.Context, userID int) ([]models.ScoredService, error) {
	favorites, err := s.FavoriteRepo.GetAllFavorites(ctx)
	if err != nil {
		return nil, err
	}

	if scored, ok := s.Cache.Get(ctx, userID, favorites); ok {
		return scored, nil
	}

	allServices, err := s.ServiceRepo.GetAllServicesWithRelations(ctx)
	if err != nil {
		return nil, err
	}
	allReviews, err := s.ReviewsRepo.GetAllReviews(ctx)
	if err != nil {
		return nil, err
	}

	if skipped := countMalformedFavorites(favorites); skipped > 0 {
		log.Printf("Skipping %d malformed favorite edges in recommendation pass for user %d", skipped, userID)
	}

	decayed := recommend.ApplyTimeDecay(allReviews, time.Now(), s.Weights.DecayWindowDays)
	matrix := recommend.BuildCoFavoriteMatrix(favorites)

	scored, err := recommend.Score(allServices, userID, decayed, matrix, s.Weights)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, userID, favorites, scored); err != nil {
		log.Printf("Failed to cache recommendations for user %d: %v", userID, err)
	}
	return scored, nil
}

func countMalformedFavorites(favorites []models.ServiceFavorite) int {
	skipped := 0
	for _, fav := range favorites {
		if fav.UserID == 0 || fav.ServiceID == 0 {
			skipped++
		}
	}
	return skipped
}
