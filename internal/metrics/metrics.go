// Package metrics содержит метрики Prometheus сервиса отзывов.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "group_reviews"

// Результаты обращения к кэшу статистики.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// HTTPRequestsTotal считает обработанные запросы.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of processed HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration измеряет время обработки запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// StatsCacheTotal считает обращения к кэшу статистики по результату.
	StatsCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_cache_total",
			Help:      "Stats cache lookups by result",
		},
		[]string{"result"},
	)

	// ReviewsCreatedTotal считает созданные отзывы.
	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_created_total",
			Help:      "Total number of created reviews",
		},
	)

	// GroupsSavedTotal считает созданные и обновленные группы.
	GroupsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_saved_total",
			Help:      "Total number of created or updated groups",
		},
		[]string{"operation"},
	)
)

// RecordStatsCache фиксирует результат обращения к кэшу статистики.
func RecordStatsCache(result string) {
	StatsCacheTotal.WithLabelValues(result).Inc()
}

// RecordReviewCreated фиксирует создание отзыва.
func RecordReviewCreated() {
	ReviewsCreatedTotal.Inc()
}

// RecordGroupSaved фиксирует сохранение группы, operation - create или update.
func RecordGroupSaved(operation string) {
	GroupsSavedTotal.WithLabelValues(operation).Inc()
}

// Middleware записывает число и длительность запросов по шаблону маршрута.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			method := c.Request().Method
			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler отдает метрики в формате Prometheus.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
