package handler

import (
	"group-reviews/api"
	"group-reviews/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*GroupHandler
	*ReviewHandler
}

func NewAPIHandler(
	groupUseCase domain.GroupUseCase,
	reviewUseCase domain.ReviewUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		GroupHandler:  NewGroupHandler(groupUseCase, NewStatsHandler(statsUseCase, logger), logger),
		ReviewHandler: NewReviewHandler(reviewUseCase, logger),
	}
}
