package domain

import (
	"context"
	"time"

	"group-reviews/internal/rating"
)

// GroupStats представляет агрегированную статистику оценок одной группы.
type GroupStats struct {
	ID                 int64
	Name               string
	Platform           Platform
	Avatar             string
	MembersCount       string
	AvgRating          float64
	ReviewsCount       int
	RatingDistribution rating.Histogram
	CreatedAt          time.Time
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	GetGroupStats(ctx context.Context) ([]*GroupStats, error)
}

// StatsCache хранит готовый ответ статистики между запросами.
type StatsCache interface {
	Get(ctx context.Context) ([]*GroupStats, bool, error)
	Set(ctx context.Context, stats []*GroupStats) error
	Invalidate(ctx context.Context) error
}
