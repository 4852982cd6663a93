package page

import (
	"context"

	"group-reviews/internal/domain"
	"group-reviews/internal/rating"

	"github.com/sirupsen/logrus"
)

// StatsCard - блок статистики одной группы.
type StatsCard struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	PlatformName string       `json:"platform_name"`
	Avatar       string       `json:"avatar,omitempty"`
	Initials     string       `json:"initials"`
	MembersCount string       `json:"members_count"`
	AvgRating    float64      `json:"avg_rating"`
	RatingLabel  string       `json:"rating_label"`
	Stars        string       `json:"stars"`
	ReviewsCount int          `json:"reviews_count"`
	Bars         []rating.Bar `json:"bars"`
}

// StatsPage - страница статистики.
type StatsPage struct {
	Groups []StatsCard `json:"groups"`
}

// LoadStats загружает статистику, при ошибке страница пустая.
func (l *Loader) LoadStats(ctx context.Context) StatsPage {
	stats, err := l.api.Stats(ctx)
	if err != nil {
		l.degrade(err, "stats", logrus.Fields{})
		stats = nil
	}
	return StatsPage{Groups: NewStatsCards(stats)}
}

// NewStatsCards строит блоки статистики. Проценты считаются от reviews_count сервера.
func NewStatsCards(stats []*domain.GroupStats) []StatsCard {
	cards := make([]StatsCard, len(stats))
	for i, s := range stats {
		cards[i] = StatsCard{
			ID:           s.ID,
			Name:         s.Name,
			PlatformName: s.Platform.DisplayName(),
			Avatar:       s.Avatar,
			Initials:     rating.Initials(s.Name),
			MembersCount: s.MembersCount,
			AvgRating:    s.AvgRating,
			RatingLabel:  RatingLabel(s.AvgRating),
			Stars:        rating.Stars(s.AvgRating),
			ReviewsCount: s.ReviewsCount,
			Bars:         s.RatingDistribution.BarsOf(s.ReviewsCount),
		}
	}
	return cards
}
