package postgres_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryColumns = []string{"id", "name", "daily_price", "car_ids"}

func TestCategoryRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(categoryColumns).
			AddRow("cat-1", "SUV", "37.60", "{car-1,car-2}")

		mock.ExpectQuery("SELECT (.+) FROM car_categories WHERE id = \\$1").
			WithArgs("cat-1").
			WillReturnRows(rows)

		category, err := repo.GetByID(ctx, "cat-1")
		require.NoError(t, err)
		assert.Equal(t, "SUV", category.Name)
		assert.Equal(t, "37.6", category.DailyPrice.String())
		assert.Equal(t, []string{"car-1", "car-2"}, category.CarIDs)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM car_categories WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(categoryColumns))

		category, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, category)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewCategoryRepository(db)

	rows := sqlmock.NewRows(categoryColumns).
		AddRow("cat-2", "Hatch", "20.00", "{car-3}").
		AddRow("cat-1", "SUV", "37.60", "{car-1,car-2}")

	mock.ExpectQuery("SELECT (.+) FROM car_categories ORDER BY name").
		WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "cat-2", categories[0].ID)
	assert.Equal(t, []string{"car-3"}, categories[0].CarIDs)
	assert.Equal(t, "20", categories[0].DailyPrice.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
