package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options carries the substitutable collaborators. Zero fields fall back to
// the defaults set in NewRentalService.
type Options struct {
	Index       IndexSource
	Clock       Clock
	Formatter   CurrencyFormatter
	TaxBrackets []domain.TaxBracket
	NewID       func() string
}

type rentalService struct {
	log       *slog.Logger
	carRepo   repository.CarRepository
	index     IndexSource
	clock     Clock
	formatter CurrencyFormatter
	brackets  []domain.TaxBracket
	newID     func() string
}

func NewRentalService(carRepo repository.CarRepository, opts Options) (RentalService, error) {
	s := &rentalService{
		log:       logger.WithService("rental"),
		carRepo:   carRepo,
		index:     opts.Index,
		clock:     opts.Clock,
		formatter: opts.Formatter,
		brackets:  opts.TaxBrackets,
		newID:     opts.NewID,
	}
	if s.index == nil {
		s.index = RandomIndex{}
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.formatter == nil {
		f, err := pricing.NewFormatter("pt-BR", "BRL")
		if err != nil {
			return nil, err
		}
		s.formatter = f
	}
	if s.brackets == nil {
		s.brackets = pricing.DefaultTaxBrackets()
	} else {
		s.brackets = append([]domain.TaxBracket(nil), s.brackets...)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s, nil
}

func (s *rentalService) GetRandomPositionFromArray(list []string) int {
	n := len(list)
	if n == 0 {
		return 0
	}
	i := s.index.NextIndex(n)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (s *rentalService) ChooseRandomCar(category *domain.CarCategory) (string, error) {
	if category == nil {
		return "", domain.ErrInvalidCategory
	}
	if len(category.CarIDs) == 0 {
		return "", fmt.Errorf("category %s: %w", category.ID, domain.ErrInvalidCategory)
	}
	return category.CarIDs[s.GetRandomPositionFromArray(category.CarIDs)], nil
}

func (s *rentalService) GetAvailableCar(ctx context.Context, category *domain.CarCategory) (*domain.Car, error) {
	carID, err := s.ChooseRandomCar(category)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.Find(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("car %s: %w", carID, domain.ErrCarNotFound)
	}
	s.log.DebugContext(ctx, "Car allocated", "category_id", category.ID, "car_id", car.ID)
	return car, nil
}

func (s *rentalService) CalculateTotal(customer domain.Customer, category *domain.CarCategory, numberOfDays int) (decimal.Decimal, error) {
	if category == nil {
		return decimal.Zero, domain.ErrInvalidCategory
	}
	if numberOfDays < 0 {
		return decimal.Zero, domain.ErrInvalidDuration
	}
	bracket, err := pricing.FindBracket(s.brackets, customer.Age)
	if err != nil {
		return decimal.Zero, fmt.Errorf("customer %s: %w", customer.ID, err)
	}
	return pricing.Total(category.DailyPrice, bracket.Multiplier, numberOfDays), nil
}

func (s *rentalService) CalculateFinalPrice(customer domain.Customer, category *domain.CarCategory, numberOfDays int) (string, error) {
	total, err := s.CalculateTotal(customer, category, numberOfDays)
	if err != nil {
		return "", err
	}
	return s.formatter.Format(total), nil
}

func (s *rentalService) Rent(ctx context.Context, customer domain.Customer, category *domain.CarCategory, numberOfDays int) (*domain.Transaction, error) {
	logger.EnterMethod("RentalService.Rent", "customer_id", customer.ID, "days", numberOfDays)

	car, err := s.GetAvailableCar(ctx, category)
	if err != nil {
		logger.ExitMethodWithError("RentalService.Rent", err)
		return nil, err
	}

	dueDate := dueDateFrom(s.clock.Now(), numberOfDays)

	amount, err := s.CalculateFinalPrice(customer, category, numberOfDays)
	if err != nil {
		logger.ExitMethodWithError("RentalService.Rent", err)
		return nil, err
	}

	tx := domain.NewTransaction(s.newID(), customer, *car, dueDate, amount)
	logger.ExitMethod("RentalService.Rent", "transaction_id", tx.ID(), "car_id", car.ID, "due_date", dueDate.Format("2006-01-02"))
	return tx, nil
}

// dueDateFrom advances now by days calendar days and drops the time of day.
func dueDateFrom(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, now.Location())
}
