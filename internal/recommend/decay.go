package recommend

import (
	"time"

	"campusBack/internal/models"
)

const hoursPerDay = 24

// DecayedRating is a review rating discounted by its age. Entries are
// produced fresh on every scoring pass and never persisted.
type DecayedRating struct {
	Rating        float64
	DecayedRating float64
	CreatedAt     time.Time
	UserID        int
}

// ApplyTimeDecay converts raw ratings into time-weighted values and
// groups them by service id. The decay is linear: a review loses all of
// its weight once it is windowDays old. Future-dated reviews (clock
// skew) count as age zero rather than gaining weight.
//
// The caller supplies now; the function never reads the wall clock.
func ApplyTimeDecay(reviews []models.Reviews, now time.Time, windowDays float64) map[int][]DecayedRating {
	rateTime := make(map[int][]DecayedRating, len(reviews))
	if windowDays <= 0 {
		windowDays = DefaultWeights().DecayWindowDays
	}

	for _, review := range reviews {
		ageInDays := now.Sub(review.CreatedAt).Hours() / hoursPerDay
		decayFactor := 1 - ageInDays/windowDays
		if decayFactor < 0 {
			decayFactor = 0
		}
		if decayFactor > 1 {
			decayFactor = 1
		}

		rateTime[review.ServiceID] = append(rateTime[review.ServiceID], DecayedRating{
			Rating:        review.Rating,
			DecayedRating: review.Rating * decayFactor,
			CreatedAt:     review.CreatedAt,
			UserID:        review.UserID,
		})
	}

	return rateTime
}
