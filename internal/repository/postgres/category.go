package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.CarCategory, error) {
	c := &domain.CarCategory{}
	query := `SELECT id, name, daily_price, car_ids FROM car_categories WHERE id = $1`
	logger.DatabaseCall("car_categories.get", query, "id", id)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.DailyPrice, pq.Array(&c.CarIDs))
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("car_categories.get", 0, nil, "id", id)
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrCategoryNotFound)
	}
	if err != nil {
		logger.DatabaseResult("car_categories.get", 0, err, "id", id)
		return nil, fmt.Errorf("failed to get car category: %w", err)
	}
	logger.DatabaseResult("car_categories.get", 1, nil, "id", id)
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.CarCategory, error) {
	query := `SELECT id, name, daily_price, car_ids FROM car_categories ORDER BY name`
	logger.DatabaseCall("car_categories.list", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("car_categories.list", 0, err)
		return nil, fmt.Errorf("failed to list car categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.CarCategory
	for rows.Next() {
		var c domain.CarCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.DailyPrice, pq.Array(&c.CarIDs)); err != nil {
			return nil, fmt.Errorf("failed to scan car category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate car categories: %w", err)
	}
	logger.DatabaseResult("car_categories.list", int64(len(categories)), nil)
	return categories, nil
}
