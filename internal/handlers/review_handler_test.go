package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newReviewRequest(t *testing.T, target, body string, userID int) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if userID != 0 {
		r = r.WithContext(context.WithValue(r.Context(), "user_id", userID))
	}
	return r
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	h := &ReviewHandler{}

	cases := []struct {
		name string
		body string
	}{
		{"rating too low", `{"rating": 0, "review": "bad"}`},
		{"rating too high", `{"rating": 6, "review": "great"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := newReviewRequest(t, "/api/services/1/comments?:service_id=1", tc.body, 7)

			h.CreateReview(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCreateReviewRequiresAuthContext(t *testing.T) {
	h := &ReviewHandler{}
	w := httptest.NewRecorder()
	r := newReviewRequest(t, "/api/services/1/comments?:service_id=1", `{"rating": 5}`, 0)

	h.CreateReview(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreateReviewRejectsBadServiceID(t *testing.T) {
	h := &ReviewHandler{}
	w := httptest.NewRecorder()
	r := newReviewRequest(t, "/api/services/x/comments?:service_id=x", `{"rating": 5}`, 7)

	h.CreateReview(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
