// Package jsonfile serves cars and categories from a read-only snapshot of
// JSON dataset files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

const (
	CarsFile       = "cars.json"
	CategoriesFile = "carCategories.json"
)

var (
	_ repository.CarRepository      = (*Store)(nil)
	_ repository.CategoryRepository = (*Store)(nil)
)

// Store holds the dataset in memory. It is never mutated after New returns.
type Store struct {
	cars       map[string]domain.Car
	categories map[string]domain.CarCategory
	order      []string
}

// New loads cars.json and carCategories.json from dir.
func New(dir string) (*Store, error) {
	var cars []domain.Car
	if err := readJSON(filepath.Join(dir, CarsFile), &cars); err != nil {
		return nil, err
	}
	var categories []domain.CarCategory
	if err := readJSON(filepath.Join(dir, CategoriesFile), &categories); err != nil {
		return nil, err
	}
	return NewFromData(cars, categories)
}

// NewFromData builds a Store from already decoded records.
func NewFromData(cars []domain.Car, categories []domain.CarCategory) (*Store, error) {
	s := &Store{
		cars:       make(map[string]domain.Car, len(cars)),
		categories: make(map[string]domain.CarCategory, len(categories)),
	}
	for _, c := range cars {
		if c.ID == "" {
			return nil, fmt.Errorf("car without id")
		}
		if _, dup := s.cars[c.ID]; dup {
			return nil, fmt.Errorf("duplicate car id: %s", c.ID)
		}
		s.cars[c.ID] = c
	}
	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("car category without id")
		}
		if _, dup := s.categories[c.ID]; dup {
			return nil, fmt.Errorf("duplicate car category id: %s", c.ID)
		}
		c.CarIDs = append([]string(nil), c.CarIDs...)
		s.categories[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	logger.Info("Dataset loaded", "cars", len(s.cars), "categories", len(s.categories))
	return s, nil
}

func (s *Store) Find(ctx context.Context, id string) (*domain.Car, error) {
	car, ok := s.cars[id]
	logger.Debug("Car lookup", "car_id", id, "found", ok)
	if !ok {
		return nil, fmt.Errorf("car %s: %w", id, domain.ErrCarNotFound)
	}
	return &car, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.CarCategory, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrCategoryNotFound)
	}
	c.CarIDs = append([]string(nil), c.CarIDs...)
	return &c, nil
}

// List returns categories in file order.
func (s *Store) List(ctx context.Context) ([]domain.CarCategory, error) {
	out := make([]domain.CarCategory, 0, len(s.order))
	for _, id := range s.order {
		c := s.categories[id]
		c.CarIDs = append([]string(nil), c.CarIDs...)
		out = append(out, c)
	}
	return out, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse dataset file %s: %w", filepath.Base(path), err)
	}
	return nil
}
