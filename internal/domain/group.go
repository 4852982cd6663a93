package domain

import (
	"context"
	"time"
)

// Platform - социальная сеть, в которой живет группа.
type Platform string

const (
	PlatformVK       Platform = "vk"
	PlatformTelegram Platform = "telegram"
)

// Valid проверяет, что платформа поддерживается.
func (p Platform) Valid() bool {
	return p == PlatformVK || p == PlatformTelegram
}

// DisplayName - название платформы для карточек.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformVK:
		return "ВКонтакте"
	case PlatformTelegram:
		return "Telegram"
	default:
		return string(p)
	}
}

// GroupSort - поле сортировки списка групп.
type GroupSort string

const (
	SortByCreated GroupSort = "created_at"
	SortByRating  GroupSort = "rating"
	SortByReviews GroupSort = "reviews"
)

// Group представляет сообщество ВКонтакте или Telegram-канал.
type Group struct {
	ID                int64
	Name              string
	Platform          Platform
	Members           string
	Rating            float64
	ReviewsCount      int
	Description       string
	Link              string
	Avatar            string
	VKGroupID         string
	TelegramChannelID string
	CreatedAt         time.Time
}

// GroupFilter задает параметры поиска групп.
type GroupFilter struct {
	Search   string
	Platform Platform
	Sort     GroupSort
}

// GroupRepository определяет контракт для работы с хранилищем групп.
type GroupRepository interface {
	List(ctx context.Context, filter GroupFilter) ([]*Group, error)
	GetByID(ctx context.Context, groupID int64) (*Group, error)
	Create(ctx context.Context, group *Group) (int64, error)
	Update(ctx context.Context, group *Group) error
	Exists(ctx context.Context, groupID int64) (bool, error)
}
