package repository

import (
	"context"
	"fmt"

	"group-reviews/internal/database"
	"group-reviews/internal/domain"
	"group-reviews/internal/rating"
)

// StatsRepository реализует domain.StatsRepository для работы со статистикой.
type StatsRepository struct {
	db database.PgxIface
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(db database.PgxIface) domain.StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// GetGroupStats возвращает по каждой группе среднюю оценку, число отзывов и распределение оценок.
func (r *StatsRepository) GetGroupStats(ctx context.Context) ([]*domain.GroupStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			g.id, g.name, g.platform, COALESCE(g.avatar, ''), g.members, g.created_at,
			COALESCE(AVG(r.rating), 0)::float8 AS avg_rating,
			COUNT(r.id) AS reviews_count,
			COUNT(r.id) FILTER (WHERE r.rating = 1) AS stars_1,
			COUNT(r.id) FILTER (WHERE r.rating = 2) AS stars_2,
			COUNT(r.id) FILTER (WHERE r.rating = 3) AS stars_3,
			COUNT(r.id) FILTER (WHERE r.rating = 4) AS stars_4,
			COUNT(r.id) FILTER (WHERE r.rating = 5) AS stars_5
		FROM groups g
		LEFT JOIN reviews r ON r.group_id = g.id
		GROUP BY g.id
		ORDER BY avg_rating DESC, reviews_count DESC, g.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get group stats: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.GroupStats, 0)
	for rows.Next() {
		var (
			stat     domain.GroupStats
			platform string
			total    int64
			buckets  [rating.MaxStars]int64
		)
		if err := rows.Scan(
			&stat.ID, &stat.Name, &platform, &stat.Avatar, &stat.MembersCount, &stat.CreatedAt,
			&stat.AvgRating, &total,
			&buckets[0], &buckets[1], &buckets[2], &buckets[3], &buckets[4],
		); err != nil {
			return nil, fmt.Errorf("failed to scan group stats: %w", err)
		}

		counts := make(map[int]int, rating.MaxStars)
		for i, n := range buckets {
			counts[i+1] = int(n)
		}
		distribution, err := rating.FromCounts(counts)
		if err != nil {
			return nil, fmt.Errorf("invalid distribution for group %d: %w", stat.ID, err)
		}

		stat.Platform = domain.Platform(platform)
		stat.ReviewsCount = int(total)
		stat.RatingDistribution = distribution
		result = append(result, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group stats: %w", err)
	}

	return result, nil
}
