package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CategoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CarRepository:      NewCarRepository(db),
		CategoryRepository: NewCategoryRepository(db),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}
