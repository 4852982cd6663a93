package repository

import (
	"context"
	"errors"
	"testing"

	"group-reviews/internal/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsColumns = []string{
	"id", "name", "platform", "avatar", "members", "created_at",
	"avg_rating", "reviews_count",
	"stars_1", "stars_2", "stars_3", "stars_4", "stars_5",
}

func TestStatsRepository_GetGroupStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)

	rows := pgxmock.NewRows(statsColumns).
		AddRow(int64(1), "IT Специалисты", "telegram", "", "81K", createdAt,
			4.4, int64(5), int64(0), int64(0), int64(1), int64(1), int64(3)).
		AddRow(int64(2), "Пустая", "vk", "https://img/a.png", "1K", createdAt,
			0.0, int64(0), int64(0), int64(0), int64(0), int64(0), int64(0))

	mock.ExpectQuery(`FROM groups g`).WillReturnRows(rows)

	stats, err := repo.GetGroupStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	first := stats[0]
	assert.Equal(t, domain.PlatformTelegram, first.Platform)
	assert.Equal(t, 5, first.ReviewsCount)
	assert.Equal(t, 3, first.RatingDistribution.Count(5))
	assert.Equal(t, 1, first.RatingDistribution.Count(3))
	assert.Equal(t, 5, first.RatingDistribution.Total())
	assert.InDelta(t, 60.0, first.RatingDistribution.Percentage(5), 1e-9)

	empty := stats[1]
	assert.Equal(t, 0, empty.RatingDistribution.Total())
	assert.Equal(t, "https://img/a.png", empty.Avatar)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_GetGroupStats_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)

	mock.ExpectQuery(`FROM groups g`).WillReturnError(errors.New("connection reset"))

	stats, err := repo.GetGroupStats(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)

	require.NoError(t, mock.ExpectationsWereMet())
}
