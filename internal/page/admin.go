package page

import (
	"context"

	"group-reviews/internal/domain"

	"github.com/sirupsen/logrus"
)

// AdminRow - строка таблицы администрирования.
type AdminRow struct {
	GroupCard
	VKGroupID         string    `json:"vk_group_id,omitempty"`
	TelegramChannelID string    `json:"telegram_channel_id,omitempty"`
	Form              GroupForm `json:"-"`
}

// AdminPage - список групп с идентификаторами платформ.
type AdminPage struct {
	Rows []AdminRow `json:"rows"`
}

// LoadAdmin загружает все группы.
func (l *Loader) LoadAdmin(ctx context.Context) AdminPage {
	groups, err := l.api.ListGroups(ctx, domain.GroupFilter{})
	if err != nil {
		l.degrade(err, "groups", logrus.Fields{"page": "admin"})
		groups = nil
	}

	rows := make([]AdminRow, len(groups))
	for i, g := range groups {
		rows[i] = AdminRow{
			GroupCard:         NewGroupCard(g),
			VKGroupID:         g.VKGroupID,
			TelegramChannelID: g.TelegramChannelID,
			Form:              EditGroupForm(g),
		}
	}
	return AdminPage{Rows: rows}
}

// SaveGroup создает или обновляет группу и возвращает перезагруженный список.
func (l *Loader) SaveGroup(ctx context.Context, form GroupForm) (int64, AdminPage, error) {
	if err := form.Validate(); err != nil {
		return 0, AdminPage{}, err
	}

	resp, err := l.api.SaveGroup(ctx, form.Request())
	if err != nil {
		l.logger.WithField("group_name", form.Name).WithError(err).Error("Failed to save group")
		return 0, AdminPage{}, err
	}

	return resp.Id, l.LoadAdmin(ctx), nil
}
