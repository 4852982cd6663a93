package handler

import (
	"net/http"

	"group-reviews/api"
	"group-reviews/internal/domain"
	"group-reviews/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GroupHandler обрабатывает HTTP-запросы для работы с группами
type GroupHandler struct {
	*BaseHandler
	groupUseCase domain.GroupUseCase
	stats        *StatsHandler
}

// NewGroupHandler создает новый экземпляр GroupHandler
func NewGroupHandler(groupUseCase domain.GroupUseCase, stats *StatsHandler, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{
		BaseHandler:  NewBaseHandler(logger),
		groupUseCase: groupUseCase,
		stats:        stats,
	}
}

// GetGroups отдает список групп, а при stats=true - статистику оценок.
func (h *GroupHandler) GetGroups(c echo.Context, params api.GetGroupsParams) error {
	if params.Stats != nil && *params.Stats {
		return h.stats.GetGroupStats(c)
	}

	filter := domain.GroupFilter{
		Search:   derefString(params.Search),
		Platform: domain.Platform(derefString(params.Platform)),
		Sort:     domain.GroupSort(derefString(params.Sort)),
	}

	logEntry := h.logRequest(c, "list_groups").WithFields(logrus.Fields{
		"search":   filter.Search,
		"platform": filter.Platform,
		"sort":     filter.Sort,
	})
	logEntry.Info("Listing groups")

	groups, err := h.groupUseCase.ListGroups(c.Request().Context(), filter)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list groups")
	}

	logEntry.WithField("groups_count", len(groups)).Info("Groups listed")
	return c.JSON(http.StatusOK, toAPIGroups(groups))
}

// PostGroups создает группу, а если в теле передан groupId - обновляет существующую.
func (h *GroupHandler) PostGroups(c echo.Context) error {
	logEntry := h.logRequest(c, "save_group")

	var req api.SaveGroupRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid JSON body"))
	}

	group := toDomainGroup(req)
	logEntry = logEntry.WithFields(logrus.Fields{
		"group_name": group.Name,
		"platform":   group.Platform,
	})

	ctx := c.Request().Context()

	if req.GroupId != nil {
		logEntry = logEntry.WithField("group_id", group.ID)
		logEntry.Info("Updating group")

		if err := h.groupUseCase.UpdateGroup(ctx, group); err != nil {
			return h.respondError(c, logEntry, err, "Failed to update group")
		}

		metrics.RecordGroupSaved("update")
		logEntry.Info("Group updated successfully")
		return c.JSON(http.StatusOK, api.CreatedResponse{
			Id:      group.ID,
			Message: "Group updated successfully",
		})
	}

	logEntry.Info("Creating group")

	id, err := h.groupUseCase.CreateGroup(ctx, group)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create group")
	}

	metrics.RecordGroupSaved("create")
	logEntry.WithField("group_id", id).Info("Group created successfully")
	return c.JSON(http.StatusCreated, api.CreatedResponse{
		Id:      id,
		Message: "Group created successfully",
	})
}
