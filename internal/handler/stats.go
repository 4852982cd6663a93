package handler

import (
	"net/http"

	"group-reviews/api"
	"group-reviews/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистических данных.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetGroupStats отдает среднюю оценку и распределение оценок по каждой группе.
func (h *StatsHandler) GetGroupStats(c echo.Context) error {
	logEntry := h.logRequest(c, "get_group_stats")
	logEntry.Info("Getting group statistics")

	stats, err := h.statsUseCase.GetGroupStats(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get group stats")
	}

	logEntry.WithField("stats_count", len(stats)).Info("Group stats retrieved")
	return c.JSON(http.StatusOK, api.StatsResponse{
		Stats: toAPIGroupStats(stats),
	})
}
