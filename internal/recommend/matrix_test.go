package recommend

import (
	"math"
	"reflect"
	"testing"

	"campusBack/internal/models"
)

func TestBuildCoFavoriteMatrixReference(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 1, ServiceID: 101},
		{UserID: 2, ServiceID: 102},
		{UserID: 1, ServiceID: 102},
	}

	m := BuildCoFavoriteMatrix(favorites)

	if !reflect.DeepEqual(m.Users, []int{1, 2}) {
		t.Errorf("unexpected user order: %v", m.Users)
	}
	if !reflect.DeepEqual(m.Services, []int{101, 102}) {
		t.Errorf("unexpected service order: %v", m.Services)
	}
	wantCells := [][]float64{{1, 1}, {0, 1}}
	if !reflect.DeepEqual(m.Cells, wantCells) {
		t.Errorf("unexpected matrix: %v", m.Cells)
	}

	invSqrt2 := 1 / math.Sqrt2
	wantSim := [][]float64{{1, invSqrt2}, {invSqrt2, 1}}
	for i := range wantSim {
		for j := range wantSim[i] {
			if !almostEqual(m.CosineSim[i][j], wantSim[i][j]) {
				t.Errorf("sim[%d][%d] = %f, want %f", i, j, m.CosineSim[i][j], wantSim[i][j])
			}
		}
	}
}

func TestBuildCoFavoriteMatrixSymmetryAndDiagonal(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 1, ServiceID: 10},
		{UserID: 1, ServiceID: 11},
		{UserID: 2, ServiceID: 11},
		{UserID: 2, ServiceID: 12},
		{UserID: 3, ServiceID: 10},
		{UserID: 3, ServiceID: 12},
	}

	m := BuildCoFavoriteMatrix(favorites)

	for i := range m.CosineSim {
		if !almostEqual(m.CosineSim[i][i], 1) {
			t.Errorf("diagonal[%d] = %f, want 1", i, m.CosineSim[i][i])
		}
		for j := range m.CosineSim[i] {
			if !almostEqual(m.CosineSim[i][j], m.CosineSim[j][i]) {
				t.Errorf("similarity not symmetric at (%d,%d): %f vs %f", i, j, m.CosineSim[i][j], m.CosineSim[j][i])
			}
		}
	}
}

func TestBuildCoFavoriteMatrixEmpty(t *testing.T) {
	m := BuildCoFavoriteMatrix(nil)

	if len(m.Users) != 0 || len(m.Services) != 0 {
		t.Errorf("expected empty index sets, got users=%v services=%v", m.Users, m.Services)
	}
	if len(m.Cells) != 0 || len(m.CosineSim) != 0 {
		t.Errorf("expected no rows or columns, got %v / %v", m.Cells, m.CosineSim)
	}
	if m.ServiceIndex(1) != -1 {
		t.Errorf("expected -1 for unknown service")
	}
}

func TestBuildCoFavoriteMatrixSkipsMalformedEdges(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 0, ServiceID: 5},
		{UserID: 5, ServiceID: 0},
		{UserID: 1, ServiceID: 101},
	}

	m := BuildCoFavoriteMatrix(favorites)

	if !reflect.DeepEqual(m.Users, []int{1}) || !reflect.DeepEqual(m.Services, []int{101}) {
		t.Errorf("malformed edges must be skipped, got users=%v services=%v", m.Users, m.Services)
	}
}

func TestBuildCoFavoriteMatrixDeterministic(t *testing.T) {
	favorites := []models.ServiceFavorite{
		{UserID: 4, ServiceID: 40},
		{UserID: 2, ServiceID: 20},
		{UserID: 4, ServiceID: 20},
		{UserID: 9, ServiceID: 90},
	}

	first := BuildCoFavoriteMatrix(favorites)
	second := BuildCoFavoriteMatrix(favorites)

	if !reflect.DeepEqual(first.Users, second.Users) || !reflect.DeepEqual(first.Services, second.Services) {
		t.Errorf("index order must be stable across calls: %v/%v vs %v/%v",
			first.Users, first.Services, second.Users, second.Services)
	}
	if !reflect.DeepEqual(first.CosineSim, second.CosineSim) {
		t.Errorf("similarity must be stable across calls")
	}
}

func TestCosineSimilarityZeroMagnitude(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
	}{
		{"zero left", []float64{0, 0}, []float64{1, 0}},
		{"zero right", []float64{1, 1}, []float64{0, 0}},
		{"both zero", []float64{0, 0}, []float64{0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if got != 0 {
				t.Errorf("expected 0 for zero-magnitude vectors, got %f", got)
			}
			if math.IsNaN(got) {
				t.Errorf("similarity must never be NaN")
			}
		})
	}
}
