package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "carrental-backend/internal/api/http"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/jsonfile"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	store, err := jsonfile.NewFromData(
		[]domain.Car{
			{ID: "car-1", Name: "Fusca", ReleaseYear: 1975, Available: true, GasAvailable: true},
		},
		[]domain.CarCategory{
			{ID: "cat-1", Name: "Classics", DailyPrice: decimal.RequireFromString("37.6"), CarIDs: []string{"car-1"}},
			{ID: "cat-ghost", Name: "Ghost", DailyPrice: decimal.RequireFromString("10"), CarIDs: []string{"missing"}},
			{ID: "cat-empty", Name: "Empty", DailyPrice: decimal.RequireFromString("10")},
		},
	)
	require.NoError(t, err)

	svc, err := service.NewRentalService(store, service.Options{
		Index: service.FixedIndex(0),
		Clock: service.FixedClock(time.Date(2022, time.May, 19, 10, 0, 0, 0, time.UTC)),
		NewID: func() string { return "tx-1" },
	})
	require.NoError(t, err)

	router := mux.NewRouter()
	api.RegisterRentalRoutes(router, api.NewRentalHandler(svc, store))
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func rentalBody(categoryID string, age, days int) map[string]any {
	return map[string]any{
		"customer":     map[string]any{"id": "c-1", "name": "Ana", "age": age},
		"categoryId":   categoryID,
		"numberOfDays": days,
	}
}

func TestRentalHandler_Rent(t *testing.T) {
	router := newRouter(t)

	t.Run("Success", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("cat-1", 50, 5))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var res map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "tx-1", res["id"])
		assert.Equal(t, "2022-05-24", res["dueDate"])
		assert.Equal(t, "R$ 244,40", res["amount"])
		assert.Equal(t, "car-1", res["car"].(map[string]any)["id"])
		assert.Equal(t, "Ana", res["customer"].(map[string]any)["name"])
	})

	t.Run("Unknown category", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("nope", 50, 5))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Car missing from dataset", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("cat-ghost", 50, 5))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "car not found")
	})

	t.Run("Category without cars", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("cat-empty", 50, 5))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Unrated age", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("cat-1", 12, 5))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "tax bracket")
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing category id", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("", 50, 5))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_Quote(t *testing.T) {
	router := newRouter(t)

	t.Run("Success", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/quotes", rentalBody("cat-1", 20, 5))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var res map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "cat-1", res["categoryId"])
		assert.Equal(t, "R$ 206,80", res["amount"])
		assert.Equal(t, "206.80", res["total"])
	})

	t.Run("Negative days", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/quotes", rentalBody("cat-1", 20, -2))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_ListCategories(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 3)
	assert.Equal(t, "cat-1", res[0]["id"])
	assert.Equal(t, "37.6", res[0]["price"])
}

func TestRentalHandler_ErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter(&buf, "info", "text")
	t.Cleanup(func() { logger.Initialize("info", "text") })

	router := newRouter(t)
	rec := do(t, router, http.MethodPost, "/api/v1/rentals", rentalBody("cat-1", 17, 5))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="Request rejected"`)
	assert.Contains(t, out, "status=422")
	assert.NotContains(t, out, "level=ERROR")
}

func TestHealthz(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
