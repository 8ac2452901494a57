package service_test

import (
	"context"

	"carrental-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Find(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

// MockIndexSource
type MockIndexSource struct {
	mock.Mock
}

func (m *MockIndexSource) NextIndex(bound int) int {
	args := m.Called(bound)
	return args.Int(0)
}

// plainFormatter renders amounts with two decimals and no symbol.
type plainFormatter struct{}

func (plainFormatter) Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
