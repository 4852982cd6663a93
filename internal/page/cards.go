package page

import (
	"fmt"

	"group-reviews/internal/domain"
	"group-reviews/internal/rating"
	"group-reviews/internal/reldate"
)

// GroupCard - карточка группы в списках.
type GroupCard struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Platform     domain.Platform `json:"platform"`
	PlatformName string          `json:"platform_name"`
	Members      string          `json:"members"`
	Rating       float64         `json:"rating"`
	RatingLabel  string          `json:"rating_label"`
	Stars        string          `json:"stars"`
	ReviewsCount int             `json:"reviews_count"`
	Description  string          `json:"description"`
	Link         string          `json:"link,omitempty"`
	Avatar       string          `json:"avatar,omitempty"`
	Initials     string          `json:"initials"`
}

// NewGroupCard строит карточку из группы.
func NewGroupCard(g *domain.Group) GroupCard {
	return GroupCard{
		ID:           g.ID,
		Name:         g.Name,
		Platform:     g.Platform,
		PlatformName: g.Platform.DisplayName(),
		Members:      g.Members,
		Rating:       g.Rating,
		RatingLabel:  RatingLabel(g.Rating),
		Stars:        rating.Stars(g.Rating),
		ReviewsCount: g.ReviewsCount,
		Description:  g.Description,
		Link:         g.Link,
		Avatar:       g.Avatar,
		Initials:     rating.Initials(g.Name),
	}
}

// NewGroupCards строит карточки, сохраняя порядок.
func NewGroupCards(groups []*domain.Group) []GroupCard {
	cards := make([]GroupCard, len(groups))
	for i, g := range groups {
		cards[i] = NewGroupCard(g)
	}
	return cards
}

// ReviewCard - карточка отзыва.
type ReviewCard struct {
	ID         int64  `json:"id"`
	GroupID    int64  `json:"group_id"`
	GroupName  string `json:"group_name"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Initials   string `json:"initials"`
	Rating     int    `json:"rating"`
	Stars      string `json:"stars"`
	Text       string `json:"text"`
	When       string `json:"when"`
}

// NewReviewCards строит карточки отзывов, даты выводятся относительно часов dates.
func NewReviewCards(reviews []*domain.Review, dates *reldate.Formatter) []ReviewCard {
	cards := make([]ReviewCard, len(reviews))
	for i, r := range reviews {
		when := ""
		if !r.CreatedAt.IsZero() {
			when = dates.Format(r.CreatedAt)
		}
		cards[i] = ReviewCard{
			ID:         r.ID,
			GroupID:    r.GroupID,
			GroupName:  r.GroupName,
			UserName:   r.UserName,
			UserAvatar: r.UserAvatar,
			Initials:   rating.Initials(r.UserName),
			Rating:     r.Rating,
			Stars:      rating.Stars(float64(r.Rating)),
			Text:       r.Text,
			When:       when,
		}
	}
	return cards
}

// RatingLabel форматирует оценку с одним знаком после запятой.
func RatingLabel(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}
