package recommend

import (
	"encoding/base64"
	"math"
	"testing"
	"time"

	"campusBack/internal/models"
)

func TestScoreEmptyCatalog(t *testing.T) {
	scored, err := Score(nil, 1, nil, CoFavoriteMatrix{}, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scored) != 0 {
		t.Errorf("expected empty result, got %v", scored)
	}
}

func TestScoreNoSignalIsDefaultWeight(t *testing.T) {
	services := []models.Service{{ID: 1, Name: "tutoring"}}

	scored, err := Score(services, 1, nil, CoFavoriteMatrix{}, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(scored[0].Score, DefaultWeights().Default) {
		t.Errorf("no-signal service must score exactly the default weight, got %f", scored[0].Score)
	}
	if scored[0].AverageRating != NoRatingsYet {
		t.Errorf("expected %q, got %q", NoRatingsYet, scored[0].AverageRating)
	}
}

func TestScoreFavoriteContribution(t *testing.T) {
	services := []models.Service{
		{ID: 1, FavoritedBy: []models.FavoriteRef{{UserID: 1}}},
		{ID: 2, FavoritedBy: []models.FavoriteRef{{UserID: 2}}},
	}
	w := DefaultWeights()

	scored, err := Score(services, 1, nil, CoFavoriteMatrix{}, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scored[0].ID != 1 || !almostEqual(scored[0].Score, w.Default+w.Favorite) {
		t.Errorf("favorited service should lead with %f, got id=%d score=%f", w.Default+w.Favorite, scored[0].ID, scored[0].Score)
	}
	if !almostEqual(scored[1].Score, w.Default) {
		t.Errorf("another user's favorite must not contribute, got %f", scored[1].Score)
	}
}

func TestScoreDecayedRatingContribution(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	services := []models.Service{{ID: 1}}
	decayed := map[int][]DecayedRating{
		1: {
			{Rating: 5, DecayedRating: 5, CreatedAt: now, UserID: 1},
			{Rating: 4, DecayedRating: 2, CreatedAt: now, UserID: 1},
			{Rating: 5, DecayedRating: 5, CreatedAt: now, UserID: 99},
		},
	}
	w := DefaultWeights()

	scored, err := Score(services, 1, decayed, CoFavoriteMatrix{}, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Mean over user 1's entries only: (4*5/5 + 4*2/5) / 2 = 2.8.
	want := w.Default + 2.8
	if !almostEqual(scored[0].Score, want) {
		t.Errorf("expected score %f, got %f", want, scored[0].Score)
	}
}

func TestScoreSimilarityContribution(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 1, ServiceID: 1},
		{UserID: 2, ServiceID: 2},
		{UserID: 1, ServiceID: 2},
	}
	m := BuildCoFavoriteMatrix(favorites)
	services := []models.Service{{ID: 1}, {ID: 2}, {ID: 3}}
	w := DefaultWeights()

	scored, err := Score(services, 77, nil, m, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[int]models.ScoredService)
	for _, s := range scored {
		byID[s.ID] = s
	}

	wantSim := w.Default + (1/math.Sqrt2)*w.Similarity
	if !almostEqual(byID[1].Score, wantSim) {
		t.Errorf("service 1 similarity contribution: want %f, got %f", wantSim, byID[1].Score)
	}
	if !almostEqual(byID[2].Score, wantSim) {
		t.Errorf("service 2 similarity contribution: want %f, got %f", wantSim, byID[2].Score)
	}
	// Never-favorited service has no column and gets no similarity score.
	if !almostEqual(byID[3].Score, w.Default) {
		t.Errorf("unindexed service must stay at default weight, got %f", byID[3].Score)
	}
}

func TestScoreLowerBound(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	favorites := []models.ServiceFavorite{
		{UserID: 1, ServiceID: 1},
		{UserID: 2, ServiceID: 3},
	}
	services := []models.Service{
		{ID: 1, FavoritedBy: []models.FavoriteRef{{UserID: 1}}},
		{ID: 2},
		{ID: 3, FavoritedBy: []models.FavoriteRef{{UserID: 2}}},
	}
	decayed := map[int][]DecayedRating{
		2: {{Rating: 3, DecayedRating: 1.5, CreatedAt: now, UserID: 1}},
	}
	w := DefaultWeights()

	scored, err := Score(services, 1, decayed, BuildCoFavoriteMatrix(favorites), w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range scored {
		if s.Score < w.Default {
			t.Errorf("service %d scored %f, below the default weight", s.ID, s.Score)
		}
	}
}

func TestScoreSortDescendingStableTies(t *testing.T) {
	services := []models.Service{
		{ID: 1},
		{ID: 2, FavoritedBy: []models.FavoriteRef{{UserID: 1}}},
		{ID: 3},
		{ID: 4},
	}

	scored, err := Score(services, 1, nil, CoFavoriteMatrix{}, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Fatalf("result not sorted descending at %d: %f after %f", i, scored[i].Score, scored[i-1].Score)
		}
	}
	if scored[0].ID != 2 {
		t.Errorf("favorited service should rank first, got %d", scored[0].ID)
	}
	// Equal scores keep catalog order.
	wantTail := []int{1, 3, 4}
	for i, want := range wantTail {
		if scored[i+1].ID != want {
			t.Errorf("tie order broken: position %d is %d, want %d", i+1, scored[i+1].ID, want)
		}
	}
}

func TestScoreAverageRatingFormatting(t *testing.T) {
	services := []models.Service{
		{ID: 1, Reviews: []models.Reviews{{Rating: 5}, {Rating: 3}}},
		{ID: 2},
	}

	scored, err := Score(services, 1, nil, CoFavoriteMatrix{}, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[int]models.ScoredService)
	for _, s := range scored {
		byID[s.ID] = s
	}
	if byID[1].AverageRating != "4.00" {
		t.Errorf("expected \"4.00\", got %q", byID[1].AverageRating)
	}
	if byID[2].AverageRating != NoRatingsYet {
		t.Errorf("expected %q, got %q", NoRatingsYet, byID[2].AverageRating)
	}
}

func TestScoreEncodesImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	services := []models.Service{
		{ID: 1, Image: raw},
		{ID: 2},
	}

	scored, err := Score(services, 1, nil, CoFavoriteMatrix{}, DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[int]models.ScoredService)
	for _, s := range scored {
		byID[s.ID] = s
	}
	if byID[1].ImageBase64 == nil {
		t.Fatalf("expected encoded image")
	}
	if *byID[1].ImageBase64 != base64.StdEncoding.EncodeToString(raw) {
		t.Errorf("unexpected encoding: %q", *byID[1].ImageBase64)
	}
	if byID[1].Image != nil {
		t.Errorf("raw payload must not survive into the result")
	}
	if byID[2].ImageBase64 != nil {
		t.Errorf("absent image must stay absent")
	}
}

func TestScoreDimensionMismatch(t *testing.T) {
	m := CoFavoriteMatrix{Services: []int{1, 2}, CosineSim: [][]float64{{1}}}

	_, err := Score([]models.Service{{ID: 1}}, 1, nil, m, DefaultWeights())
	if err == nil {
		t.Fatalf("expected error for mismatched similarity matrix")
	}
}
