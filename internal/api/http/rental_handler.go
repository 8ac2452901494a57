package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

// RentalHandler exposes quoting and renting over JSON.
type RentalHandler struct {
	rentals    service.RentalService
	categories repository.CategoryRepository
}

func NewRentalHandler(rentals service.RentalService, categories repository.CategoryRepository) *RentalHandler {
	return &RentalHandler{
		rentals:    rentals,
		categories: categories,
	}
}

type rentalRequest struct {
	Customer     domain.Customer `json:"customer"`
	CategoryID   string          `json:"categoryId"`
	NumberOfDays int             `json:"numberOfDays"`
}

type quoteResponse struct {
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Total      string `json:"total"`
}

type transactionResponse struct {
	ID       string          `json:"id"`
	Customer domain.Customer `json:"customer"`
	Car      domain.Car      `json:"car"`
	DueDate  string          `json:"dueDate"`
	Amount   string          `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleQuote handles POST /api/v1/quotes
func (h *RentalHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	req, category, ok := h.decode(w, r)
	if !ok {
		return
	}

	total, err := h.rentals.CalculateTotal(req.Customer, category, req.NumberOfDays)
	if err != nil {
		writeError(w, r, err)
		return
	}
	amount, err := h.rentals.CalculateFinalPrice(req.Customer, category, req.NumberOfDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		CategoryID: category.ID,
		Amount:     amount,
		Total:      total.StringFixed(2),
	})
}

// HandleRent handles POST /api/v1/rentals
func (h *RentalHandler) HandleRent(w http.ResponseWriter, r *http.Request) {
	req, category, ok := h.decode(w, r)
	if !ok {
		return
	}

	tx, err := h.rentals.Rent(r.Context(), req.Customer, category, req.NumberOfDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.InfoContext(r.Context(), "Rental created", "transaction_id", tx.ID(), "car_id", tx.Car().ID, "customer_id", tx.Customer().ID)
	writeJSON(w, http.StatusCreated, transactionResponse{
		ID:       tx.ID(),
		Customer: tx.Customer(),
		Car:      tx.Car(),
		DueDate:  tx.DueDate().Format(dateLayout),
		Amount:   tx.Amount(),
	})
}

// HandleListCategories handles GET /api/v1/categories
func (h *RentalHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.CarCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *RentalHandler) decode(w http.ResponseWriter, r *http.Request) (rentalRequest, *domain.CarCategory, bool) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return req, nil, false
	}
	if req.CategoryID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "categoryId is required"})
		return req, nil, false
	}
	if req.Customer.Age < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "customer age must not be negative"})
		return req, nil, false
	}

	category, err := h.categories.GetByID(r.Context(), req.CategoryID)
	if err != nil {
		writeError(w, r, err)
		return req, nil, false
	}
	return req, category, true
}

// statusFor maps domain failures to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCarNotFound), errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnratedAge), errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
		msg = "internal error"
	} else {
		logger.WarnContext(r.Context(), "Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// loggingMiddleware logs every request with its duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// RegisterRentalRoutes registers the rental endpoints
func RegisterRentalRoutes(router *mux.Router, handler *RentalHandler) {
	router.Use(loggingMiddleware)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.HandleFunc("/api/v1/categories", handler.HandleListCategories).Methods("GET")
	router.HandleFunc("/api/v1/quotes", handler.HandleQuote).Methods("POST")
	router.HandleFunc("/api/v1/rentals", handler.HandleRent).Methods("POST")
}
