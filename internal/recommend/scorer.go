package recommend

import (
	"encoding/base64"
	"fmt"
	"sort"

	"campusBack/internal/models"
)

const ratingScale = 5

// NoRatingsYet is the average-rating marker for a service without reviews.
const NoRatingsYet = "No ratings yet"

// Score produces the ranked, decorated recommendation list for one user.
// It combines three signals per service: the user's own decayed ratings,
// an explicit favorite bonus, and the item-item similarity of the
// co-favorite matrix. Services with no signal at all score exactly
// w.Default and still rank.
//
// A similarity matrix whose dimensions disagree with its service index
// is a pipeline wiring bug and fails fast.
func Score(allServices []models.Service, userID int, decayed map[int][]DecayedRating, m CoFavoriteMatrix, w Weights) ([]models.ScoredService, error) {
	if len(m.CosineSim) != len(m.Services) {
		return nil, fmt.Errorf("recommend: similarity matrix dimension %d does not match service index size %d", len(m.CosineSim), len(m.Services))
	}

	scored := make([]models.ScoredService, 0, len(allServices))
	for _, service := range allServices {
		score := w.Default

		if entries, ok := decayed[service.ID]; ok {
			var sum float64
			var count int
			for _, entry := range entries {
				if entry.UserID != userID {
					continue
				}
				sum += w.MaxRating * entry.DecayedRating / ratingScale
				count++
			}
			if count > 0 {
				score += sum / float64(count)
			}
		}

		for _, fav := range service.FavoritedBy {
			if fav.UserID == userID {
				score += w.Favorite
				break
			}
		}

		if idx := m.ServiceIndex(service.ID); idx >= 0 {
			for _, other := range allServices {
				if other.ID == service.ID {
					continue
				}
				otherIdx := m.ServiceIndex(other.ID)
				if otherIdx < 0 {
					continue
				}
				if sim := m.CosineSim[idx][otherIdx]; sim > 0 {
					score += sim * w.Similarity
				}
			}
		}

		scored = append(scored, decorate(service, score))
	}

	// Stable sort: equal scores keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}

func decorate(service models.Service, score float64) models.ScoredService {
	result := models.ScoredService{
		Service:       service,
		Score:         score,
		AverageRating: NoRatingsYet,
	}

	if len(service.Image) > 0 {
		encoded := base64.StdEncoding.EncodeToString(service.Image)
		result.ImageBase64 = &encoded
		result.Image = nil
	}

	if len(service.Reviews) > 0 {
		var sum float64
		for _, review := range service.Reviews {
			sum += review.Rating
		}
		result.AverageRating = fmt.Sprintf("%.2f", sum/float64(len(service.Reviews)))
	}

	return result
}
