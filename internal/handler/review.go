package handler

import (
	"net/http"

	"group-reviews/api"
	"group-reviews/internal/domain"
	"group-reviews/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ReviewHandler обрабатывает HTTP-запросы для работы с отзывами
type ReviewHandler struct {
	*BaseHandler
	reviewUseCase domain.ReviewUseCase
}

// NewReviewHandler создает новый экземпляр ReviewHandler
func NewReviewHandler(reviewUseCase domain.ReviewUseCase, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewUseCase: reviewUseCase,
	}
}

// GetReviews отдает отзывы группы или последние отзывы по всем группам.
func (h *ReviewHandler) GetReviews(c echo.Context, params api.GetReviewsParams) error {
	logEntry := h.logRequest(c, "list_reviews")
	if params.GroupId != nil {
		logEntry = logEntry.WithField("group_id", *params.GroupId)
	}
	logEntry.Info("Listing reviews")

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), params.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list reviews")
	}

	logEntry.WithField("reviews_count", len(reviews)).Info("Reviews listed")
	return c.JSON(http.StatusOK, toAPIReviews(reviews))
}

// PostReviews создает отзыв о группе.
func (h *ReviewHandler) PostReviews(c echo.Context) error {
	logEntry := h.logRequest(c, "create_review")
	logEntry.Info("Creating review")

	var req api.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid JSON body"))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"rating":   req.Rating,
	})

	id, err := h.reviewUseCase.CreateReview(c.Request().Context(), toDomainReview(req))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create review")
	}

	metrics.RecordReviewCreated()
	logEntry.WithField("review_id", id).Info("Review created successfully")
	return c.JSON(http.StatusCreated, api.CreatedResponse{
		Id:      id,
		Message: "Review created successfully",
	})
}
