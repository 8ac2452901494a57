package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Find(ctx context.Context, id string) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, name, release_year, available, gas_available FROM cars WHERE id = $1`
	logger.DatabaseCall("cars.find", query, "id", id)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.ReleaseYear, &c.Available, &c.GasAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("cars.find", 0, nil, "id", id)
		return nil, fmt.Errorf("car %s: %w", id, domain.ErrCarNotFound)
	}
	if err != nil {
		logger.DatabaseResult("cars.find", 0, err, "id", id)
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	logger.DatabaseResult("cars.find", 1, nil, "id", id)
	return c, nil
}
