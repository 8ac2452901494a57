package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

// CarRepository returns domain.ErrCarNotFound (wrapped) when no car has the id.
type CarRepository interface {
	Find(ctx context.Context, id string) (*domain.Car, error)
}

// CategoryRepository returns domain.ErrCategoryNotFound (wrapped) when no
// category has the id.
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CarCategory, error)
	List(ctx context.Context) ([]domain.CarCategory, error)
}
