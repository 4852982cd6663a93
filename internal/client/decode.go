package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"group-reviews/api"
	"group-reviews/internal/domain"
	"group-reviews/internal/rating"
	"group-reviews/internal/reldate"
)

// flexFloat принимает число как JSON number или строку ("4.8").
type flexFloat struct {
	value float64
	set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		f.value, f.set = v, true
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.set = true
	return nil
}

type wireGroup struct {
	ID                *int64      `json:"id"`
	Name              *string     `json:"name"`
	Platform          *string     `json:"platform"`
	Members           api.Members `json:"members"`
	Rating            flexFloat   `json:"rating"`
	ReviewsCount      flexFloat   `json:"reviews_count"`
	Description       *string     `json:"description"`
	Link              *string     `json:"link"`
	Avatar            *string     `json:"avatar"`
	VKGroupID         *string     `json:"vk_group_id"`
	TelegramChannelID *string     `json:"telegram_channel_id"`
	CreatedAt         *string     `json:"created_at"`
}

type wireReview struct {
	ID         *int64  `json:"id"`
	GroupID    *int64  `json:"group_id"`
	UserName   *string `json:"user_name"`
	UserAvatar *string `json:"user_avatar"`
	Rating     *int    `json:"rating"`
	Text       *string `json:"text"`
	CreatedAt  *string `json:"created_at"`
	GroupName  *string `json:"group_name"`
}

type wireStats struct {
	ID                 *int64         `json:"id"`
	Name               *string        `json:"name"`
	Platform           *string        `json:"platform"`
	Avatar             *string        `json:"avatar"`
	MembersCount       api.Members    `json:"members_count"`
	AvgRating          flexFloat      `json:"avg_rating"`
	ReviewsCount       flexFloat      `json:"reviews_count"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	CreatedAt          *string        `json:"created_at"`
}

// DecodeGroups разбирает ответ GET /groups.
func DecodeGroups(data []byte) ([]*domain.Group, error) {
	var raw []wireGroup
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, integrityErr("group list", "", "is not a JSON array of groups", err)
	}

	groups := make([]*domain.Group, 0, len(raw))
	for i := range raw {
		group, err := raw[i].toDomain()
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// DecodeReviews разбирает ответ GET /reviews.
func DecodeReviews(data []byte) ([]*domain.Review, error) {
	var raw []wireReview
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, integrityErr("review list", "", "is not a JSON array of reviews", err)
	}

	reviews := make([]*domain.Review, 0, len(raw))
	for i := range raw {
		review, err := raw[i].toDomain()
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// DecodeStats разбирает ответ GET /groups?stats=true.
func DecodeStats(data []byte) ([]*domain.GroupStats, error) {
	var envelope struct {
		Stats *[]wireStats `json:"stats"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, integrityErr("stats", "", "is not a JSON object", err)
	}
	if envelope.Stats == nil {
		return nil, integrityErr("stats", "stats", "is missing", nil)
	}

	stats := make([]*domain.GroupStats, 0, len(*envelope.Stats))
	for i := range *envelope.Stats {
		stat, err := (*envelope.Stats)[i].toDomain()
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// DecodeCreated разбирает ответ {id, message} на создание или обновление.
func DecodeCreated(data []byte) (api.CreatedResponse, error) {
	var raw struct {
		ID      *int64 `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return api.CreatedResponse{}, integrityErr("created response", "", "is not a JSON object", err)
	}
	if raw.ID == nil {
		return api.CreatedResponse{}, integrityErr("created response", "id", "is missing", nil)
	}
	return api.CreatedResponse{Id: *raw.ID, Message: raw.Message}, nil
}

func (w *wireGroup) toDomain() (*domain.Group, error) {
	const typ = "group"
	switch {
	case w.ID == nil:
		return nil, integrityErr(typ, "id", "is missing", nil)
	case w.Name == nil:
		return nil, integrityErr(typ, "name", "is missing", nil)
	case w.Platform == nil:
		return nil, integrityErr(typ, "platform", "is missing", nil)
	}

	platform := domain.Platform(*w.Platform)
	if !platform.Valid() {
		return nil, integrityErr(typ, "platform", fmt.Sprintf("has unknown value %q", *w.Platform), nil)
	}
	avg, err := ratingValue(typ, "rating", w.Rating)
	if err != nil {
		return nil, err
	}
	reviewsCount, err := countValue(typ, "reviews_count", w.ReviewsCount)
	if err != nil {
		return nil, err
	}

	created, err := parseTime(typ, w.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Group{
		ID:                *w.ID,
		Name:              *w.Name,
		Platform:          platform,
		Members:           string(w.Members),
		Rating:            avg,
		ReviewsCount:      reviewsCount,
		Description:       deref(w.Description),
		Link:              deref(w.Link),
		Avatar:            deref(w.Avatar),
		VKGroupID:         deref(w.VKGroupID),
		TelegramChannelID: deref(w.TelegramChannelID),
		CreatedAt:         created,
	}, nil
}

func (w *wireReview) toDomain() (*domain.Review, error) {
	const typ = "review"
	switch {
	case w.ID == nil:
		return nil, integrityErr(typ, "id", "is missing", nil)
	case w.GroupID == nil:
		return nil, integrityErr(typ, "group_id", "is missing", nil)
	case w.UserName == nil:
		return nil, integrityErr(typ, "user_name", "is missing", nil)
	case w.Rating == nil:
		return nil, integrityErr(typ, "rating", "is missing", nil)
	case w.Text == nil:
		return nil, integrityErr(typ, "text", "is missing", nil)
	}

	created, err := parseTime(typ, w.CreatedAt)
	if err != nil {
		return nil, err
	}

	// оценки вне 1..5 пропускаются при агрегации, поэтому здесь не отвергаются
	return &domain.Review{
		ID:         *w.ID,
		GroupID:    *w.GroupID,
		UserName:   *w.UserName,
		UserAvatar: deref(w.UserAvatar),
		Rating:     *w.Rating,
		Text:       *w.Text,
		CreatedAt:  created,
		GroupName:  deref(w.GroupName),
	}, nil
}

func (w *wireStats) toDomain() (*domain.GroupStats, error) {
	const typ = "group stats"
	switch {
	case w.ID == nil:
		return nil, integrityErr(typ, "id", "is missing", nil)
	case w.Name == nil:
		return nil, integrityErr(typ, "name", "is missing", nil)
	}

	avg, err := ratingValue(typ, "avg_rating", w.AvgRating)
	if err != nil {
		return nil, err
	}
	reviewsCount, err := countValue(typ, "reviews_count", w.ReviewsCount)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(w.RatingDistribution))
	for key, n := range w.RatingDistribution {
		stars, err := strconv.Atoi(key)
		if err != nil {
			return nil, integrityErr(typ, "rating_distribution", fmt.Sprintf("has non-numeric key %q", key), err)
		}
		counts[stars] = n
	}
	distribution, err := rating.FromCounts(counts)
	if err != nil {
		return nil, integrityErr(typ, "rating_distribution", err.Error(), err)
	}

	created, err := parseTime(typ, w.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.GroupStats{
		ID:                 *w.ID,
		Name:               *w.Name,
		Platform:           domain.Platform(deref(w.Platform)),
		Avatar:             deref(w.Avatar),
		MembersCount:       string(w.MembersCount),
		AvgRating:          avg,
		ReviewsCount:       reviewsCount,
		RatingDistribution: distribution,
		CreatedAt:          created,
	}, nil
}

// numberValue требует конечное число в диапазоне lo..hi.
func numberValue(typ, field string, f flexFloat, lo, hi float64) (float64, error) {
	switch {
	case !f.set:
		return 0, integrityErr(typ, field, "is missing", nil)
	case math.IsNaN(f.value) || math.IsInf(f.value, 0):
		return 0, integrityErr(typ, field, "is not a finite number", nil)
	case f.value < lo || f.value > hi:
		return 0, integrityErr(typ, field, fmt.Sprintf("is out of range %g..%g", lo, hi), nil)
	}
	return f.value, nil
}

func ratingValue(typ, field string, f flexFloat) (float64, error) {
	return numberValue(typ, field, f, 0, rating.MaxStars)
}

func countValue(typ, field string, f flexFloat) (int, error) {
	v, err := numberValue(typ, field, f, 0, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, integrityErr(typ, field, "is not an integer", nil)
	}
	return int(v), nil
}

// parseTime допускает отсутствие created_at, но не мусор в нем.
func parseTime(typ string, s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	t, err := reldate.Parse(*s)
	if err != nil {
		return time.Time{}, integrityErr(typ, "created_at", fmt.Sprintf("is not a timestamp: %q", *s), err)
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
