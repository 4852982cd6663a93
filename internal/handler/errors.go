package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler приводит ошибки echo (биндинг параметров, 404 маршрута, паники) к формату ErrorResponse.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
		}

		code := "INTERNAL_ERROR"
		switch {
		case status == http.StatusNotFound:
			code = "NOT_FOUND"
		case status >= 400 && status < 500:
			code = "INVALID_REQUEST"
		}

		if status >= 500 {
			logger.WithError(err).Error("Unhandled error")
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(status)
		} else {
			respErr = c.JSON(status, toErrorResponse(code, message))
		}
		if respErr != nil {
			logger.WithError(respErr).Error("Failed to write error response")
		}
	}
}
