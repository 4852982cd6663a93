package domain

import (
	"context"
	"time"
)

// LatestReviewsLimit - сколько последних отзывов отдается без фильтра по группе.
const LatestReviewsLimit = 50

// Review представляет отзыв пользователя о группе.
type Review struct {
	ID         int64
	GroupID    int64
	UserName   string
	UserAvatar string
	Rating     int
	Text       string
	CreatedAt  time.Time
	GroupName  string
}

// Ratings возвращает оценки отзывов в исходном порядке.
func Ratings(reviews []*Review) []int {
	out := make([]int, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Rating)
	}
	return out
}

// ReviewRepository определяет контракт для работы с хранилищем отзывов.
type ReviewRepository interface {
	ListByGroup(ctx context.Context, groupID int64) ([]*Review, error)
	ListLatest(ctx context.Context, limit int) ([]*Review, error)
	Create(ctx context.Context, review *Review) (int64, error)
}
