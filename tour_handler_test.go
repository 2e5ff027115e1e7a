package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/cache/memory"
	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// fakeTourRepo implements repository.TourRepository for handler tests
type fakeTourRepo struct {
	tours     []model.Tour
	err       error
	listCalls int
}

func (f *fakeTourRepo) CreateTour(req model.CreateTourRequest) (*model.Tour, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTourRepo) UpdateTour(req model.UpdateTourRequest) (*model.Tour, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTourRepo) DeleteTour(tourID uuid.UUID) error { return errors.New("not implemented") }

func (f *fakeTourRepo) GetTourByID(tourID uuid.UUID) (*model.Tour, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeTourRepo) GetTourBySlug(slug string) (*model.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.tours {
		if f.tours[i].Slug == slug {
			return &f.tours[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTourRepo) ListTours(filter model.TourFilter) ([]model.Tour, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tours, nil
}

func (f *fakeTourRepo) ListFeaturedTours() ([]model.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tours, nil
}

func (f *fakeTourRepo) UpdateTourRating(tourID uuid.UUID, rating float64, totalReviews int) error {
	return nil
}

func newTourRouter(repo *fakeTourRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTourHandler(repo, memory.New(), zap.NewNop())

	r := gin.New()
	r.GET("/api/tours", handler.ListTours)
	r.GET("/api/tours/featured", handler.ListFeaturedTours)
	r.GET("/api/tours/:slug", handler.GetTour)
	return r
}

func TestListToursCacheMissThenHit(t *testing.T) {
	repo := &fakeTourRepo{
		tours: []model.Tour{{ID: uuid.New(), Title: "Sahara Expedition", Slug: "sahara-expedition", Country: "Morocco"}},
	}
	router := newTourRouter(repo)

	// First request fetches from the store.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours?country=Morocco", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var first model.TourListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.False(t, first.Cached)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 1, repo.listCalls)

	// Second identical request is served from the cache.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/tours?country=Morocco", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var second model.TourListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.Cached)
	assert.Equal(t, 1, second.Total)
	assert.Equal(t, 1, repo.listCalls, "cache hit must not re-query the store")
}

func TestListToursDistinctFiltersFetchSeparately(t *testing.T) {
	repo := &fakeTourRepo{}
	router := newTourRouter(repo)

	for _, query := range []string{"?country=Morocco", "?country=Nepal", "?category=adventure"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours"+query, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 3, repo.listCalls)
}

func TestListToursDegradesToEmptyOnStoreError(t *testing.T) {
	repo := &fakeTourRepo{err: errors.New("connection refused")}
	router := newTourRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response model.TourListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Tours)
	assert.False(t, response.Cached)
}

func TestStoreErrorsAreNotCached(t *testing.T) {
	repo := &fakeTourRepo{err: errors.New("connection refused")}
	router := newTourRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Store recovers; the next request must re-fetch, not serve the
	// degraded empty response.
	repo.err = nil
	repo.tours = []model.Tour{{ID: uuid.New(), Title: "Inca Trail", Slug: "inca-trail", Country: "Peru"}}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours", nil))

	var response model.TourListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
}

func TestGetTourNotFound(t *testing.T) {
	repo := &fakeTourRepo{}
	router := newTourRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours/no-such-tour", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTourServedFromCache(t *testing.T) {
	repo := &fakeTourRepo{
		tours: []model.Tour{{ID: uuid.New(), Title: "Inca Trail", Slug: "inca-trail", Country: "Peru"}},
	}
	router := newTourRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours/inca-trail", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var first model.TourDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.False(t, first.Cached)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tours/inca-trail", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var second model.TourDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.Cached)
	assert.Equal(t, "Inca Trail", second.Tour.Title)
}
