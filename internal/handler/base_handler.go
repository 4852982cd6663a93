package handler

import (
	"net/http"

	"group-reviews/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// BaseHandler содержит общие для всех хендлеров логгер и ответы об ошибках.
type BaseHandler struct {
	logger *logrus.Logger
}

// NewBaseHandler создает новый экземпляр BaseHandler.
func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation": operation,
		"method":    c.Request().Method,
		"path":      c.Request().URL.Path,
		"query":     c.QueryString(),
		"ip":        c.RealIP(),
	})
}

// respondError отвечает кодом из таблицы доменных ошибок, неизвестные ошибки отдаются как 500.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		logEntry.WithError(err).Warn(msg)
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}

	logEntry.WithError(err).Error(msg)
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}
