// Package page собирает модели страниц клиента из ответов API.
//
// Загрузчики не возвращают сетевые ошибки: неудачный запрос логируется
// и заменяется пустым результатом только для своей части страницы.
package page

import (
	"context"

	"group-reviews/api"
	"group-reviews/internal/domain"
	"group-reviews/internal/reldate"

	"github.com/sirupsen/logrus"
)

// API - операции клиента, которые нужны страницам. Реализуется client.Client.
type API interface {
	ListGroups(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error)
	FindGroup(ctx context.Context, id int64) (*domain.Group, error)
	ListReviews(ctx context.Context, groupID *int64) ([]*domain.Review, error)
	CreateReview(ctx context.Context, req api.CreateReviewRequest) (api.CreatedResponse, error)
	SaveGroup(ctx context.Context, req api.SaveGroupRequest) (api.CreatedResponse, error)
	Stats(ctx context.Context) ([]*domain.GroupStats, error)
}

// Loader загружает и собирает страницы.
type Loader struct {
	api    API
	dates  *reldate.Formatter
	logger *logrus.Logger
}

// NewLoader создает новый экземпляр Loader.
func NewLoader(a API, dates *reldate.Formatter, logger *logrus.Logger) *Loader {
	return &Loader{
		api:    a,
		dates:  dates,
		logger: logger,
	}
}

func (l *Loader) degrade(err error, piece string, fields logrus.Fields) {
	l.logger.WithFields(fields).WithError(err).Warnf("Failed to load %s, showing empty result", piece)
}
