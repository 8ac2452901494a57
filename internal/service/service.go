package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type RentalService interface {
	// GetRandomPositionFromArray returns an index in [0, len(list)-1].
	GetRandomPositionFromArray(list []string) int
	ChooseRandomCar(category *domain.CarCategory) (string, error)
	GetAvailableCar(ctx context.Context, category *domain.CarCategory) (*domain.Car, error)
	CalculateTotal(customer domain.Customer, category *domain.CarCategory, numberOfDays int) (decimal.Decimal, error)
	// CalculateFinalPrice returns a display string; callers must not parse it back.
	CalculateFinalPrice(customer domain.Customer, category *domain.CarCategory, numberOfDays int) (string, error)
	Rent(ctx context.Context, customer domain.Customer, category *domain.CarCategory, numberOfDays int) (*domain.Transaction, error)
}

// IndexSource yields a position in [0, bound).
type IndexSource interface {
	NextIndex(bound int) int
}

type Clock interface {
	Now() time.Time
}

type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
}
