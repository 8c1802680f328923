package recommend

import (
	"math"

	"campusBack/internal/models"
)

// CoFavoriteMatrix is a binary user×service matrix built from favorite
// edges together with the item-item cosine similarity of its columns.
// Rows and columns are keyed by immutable ids in first-seen order, so
// the same input always yields the same index assignment.
type CoFavoriteMatrix struct {
	Users     []int
	Services  []int
	Cells     [][]float64
	CosineSim [][]float64

	serviceIndex map[int]int
}

// BuildCoFavoriteMatrix derives the co-favorite matrix and its item-item
// cosine similarity from the full favorite-edge set. Zero favorites
// yields an empty matrix with no rows or columns; edges missing a user
// or service id are skipped.
func BuildCoFavoriteMatrix(favorites []models.ServiceFavorite) CoFavoriteMatrix {
	m := CoFavoriteMatrix{serviceIndex: make(map[int]int)}
	userIndex := make(map[int]int)

	for _, fav := range favorites {
		if fav.UserID == 0 || fav.ServiceID == 0 {
			continue
		}
		if _, ok := userIndex[fav.UserID]; !ok {
			userIndex[fav.UserID] = len(m.Users)
			m.Users = append(m.Users, fav.UserID)
		}
		if _, ok := m.serviceIndex[fav.ServiceID]; !ok {
			m.serviceIndex[fav.ServiceID] = len(m.Services)
			m.Services = append(m.Services, fav.ServiceID)
		}
	}

	if len(m.Users) == 0 || len(m.Services) == 0 {
		return m
	}

	m.Cells = make([][]float64, len(m.Users))
	for i := range m.Cells {
		m.Cells[i] = make([]float64, len(m.Services))
	}
	for _, fav := range favorites {
		u, ok := userIndex[fav.UserID]
		if !ok {
			continue
		}
		s, ok := m.serviceIndex[fav.ServiceID]
		if !ok {
			continue
		}
		m.Cells[u][s] = 1
	}

	m.CosineSim = make([][]float64, len(m.Services))
	for i := range m.CosineSim {
		m.CosineSim[i] = make([]float64, len(m.Services))
	}
	for i := 0; i < len(m.Services); i++ {
		for j := i; j < len(m.Services); j++ {
			sim := cosineSimilarity(m.column(i), m.column(j))
			m.CosineSim[i][j] = sim
			m.CosineSim[j][i] = sim
		}
	}

	return m
}

// ServiceIndex returns the column index for a service id, or -1 when the
// service has never been favorited.
func (m CoFavoriteMatrix) ServiceIndex(serviceID int) int {
	if idx, ok := m.serviceIndex[serviceID]; ok {
		return idx
	}
	return -1
}

func (m CoFavoriteMatrix) column(idx int) []float64 {
	col := make([]float64, len(m.Cells))
	for u := range m.Cells {
		col[u] = m.Cells[u][idx]
	}
	return col
}

// cosineSimilarity is dot(a,b) / (||a||*||b||), defined as 0 whenever
// either magnitude is zero. The zero rule is a policy choice that keeps
// never-favorited columns from producing NaN downstream.
func cosineSimilarity(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
