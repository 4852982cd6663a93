package repository

import (
	"context"
	"testing"

	"group-reviews/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewColumns = []string{
	"id", "group_id", "user_name", "user_avatar", "rating", "text", "created_at", "group_name",
}

func TestReviewRepository_ListByGroup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)

	rows := pgxmock.NewRows(reviewColumns).
		AddRow(int64(11), int64(1), "Анна", "", 5, "Отлично", createdAt, "IT Специалисты").
		AddRow(int64(10), int64(1), "Борис", "https://img/b.png", 3, "Нормально", createdAt, "IT Специалисты")

	mock.ExpectQuery(`WHERE r.group_id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	reviews, err := repo.ListByGroup(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "Анна", reviews[0].UserName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "https://img/b.png", reviews[1].UserAvatar)
	assert.Equal(t, "IT Специалисты", reviews[1].GroupName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListLatest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)

	mock.ExpectQuery(`LIMIT`).
		WithArgs(domain.LatestReviewsLimit).
		WillReturnRows(pgxmock.NewRows(reviewColumns))

	reviews, err := repo.ListLatest(context.Background(), domain.LatestReviewsLimit)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	review := &domain.Review{GroupID: 1, UserName: "Анна", Rating: 4, Text: "Хорошо"}

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(int64(1), "Анна", "", 4, "Хорошо").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := repo.Create(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_UnknownGroup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	review := &domain.Review{GroupID: 99, UserName: "Анна", Rating: 4, Text: "Хорошо"}

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(int64(99), "Анна", "", 4, "Хорошо").
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	_, err = repo.Create(context.Background(), review)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
