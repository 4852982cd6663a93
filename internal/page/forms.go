package page

import (
	"errors"
	"strings"

	"group-reviews/api"
	"group-reviews/internal/domain"
)

var (
	ErrReviewFieldsRequired = errors.New("заполните все поля")
	ErrGroupFieldsRequired  = errors.New("название и платформа обязательны")
)

// DefaultReviewRating - оценка, выбранная в новой форме отзыва.
const DefaultReviewRating = 5

// ReviewForm - состояние формы отзыва.
type ReviewForm struct {
	GroupID    int64  `json:"group_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

// NewReviewForm возвращает пустую форму отзыва о группе.
func NewReviewForm(groupID int64) ReviewForm {
	return ReviewForm{GroupID: groupID, Rating: DefaultReviewRating}
}

// Validate проверяет обязательные поля до отправки запроса.
func (f ReviewForm) Validate() error {
	if strings.TrimSpace(f.UserName) == "" || strings.TrimSpace(f.Text) == "" {
		return ErrReviewFieldsRequired
	}
	return nil
}

// Request превращает форму в тело POST /reviews.
func (f ReviewForm) Request() api.CreateReviewRequest {
	return api.CreateReviewRequest{
		GroupId:    f.GroupID,
		UserName:   strings.TrimSpace(f.UserName),
		UserAvatar: strings.TrimSpace(f.UserAvatar),
		Rating:     f.Rating,
		Text:       strings.TrimSpace(f.Text),
	}
}

// GroupForm - состояние формы создания или редактирования группы.
// GroupID == nil означает новую группу.
type GroupForm struct {
	GroupID           *int64 `json:"group_id,omitempty"`
	Name              string `json:"name"`
	Platform          string `json:"platform"`
	Avatar            string `json:"avatar"`
	Members           string `json:"members"`
	Description       string `json:"description"`
	Link              string `json:"link"`
	VKGroupID         string `json:"vk_group_id"`
	TelegramChannelID string `json:"telegram_channel_id"`
}

// NewGroupForm возвращает форму новой группы.
func NewGroupForm() GroupForm {
	return GroupForm{Platform: string(domain.PlatformVK)}
}

// EditGroupForm заполняет форму данными существующей группы.
func EditGroupForm(g *domain.Group) GroupForm {
	id := g.ID
	return GroupForm{
		GroupID:           &id,
		Name:              g.Name,
		Platform:          string(g.Platform),
		Avatar:            g.Avatar,
		Members:           g.Members,
		Description:       g.Description,
		Link:              g.Link,
		VKGroupID:         g.VKGroupID,
		TelegramChannelID: g.TelegramChannelID,
	}
}

// Validate проверяет обязательные поля до отправки запроса.
func (f GroupForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Platform) == "" {
		return ErrGroupFieldsRequired
	}
	return nil
}

// Request превращает форму в тело POST /groups.
func (f GroupForm) Request() api.SaveGroupRequest {
	return api.SaveGroupRequest{
		GroupId:           f.GroupID,
		Name:              strings.TrimSpace(f.Name),
		Platform:          strings.TrimSpace(f.Platform),
		Avatar:            f.Avatar,
		Members:           api.Members(f.Members),
		Description:       f.Description,
		Link:              f.Link,
		VkGroupId:         f.VKGroupID,
		TelegramChannelId: f.TelegramChannelID,
	}
}
