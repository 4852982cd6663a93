// Package client - HTTP-клиент API групп и отзывов.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"group-reviews/api"
	"group-reviews/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxBodySize = 4 << 20

// Client ходит в API по baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client, например в тестах.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger задает логгер для отладочных сообщений о запросах.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New создает клиент. timeout ограничивает каждый запрос целиком.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListGroups возвращает группы по фильтру.
func (c *Client) ListGroups(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Platform != "" {
		q.Set("platform", string(filter.Platform))
	}
	if filter.Sort != "" {
		q.Set("sort", string(filter.Sort))
	}

	body, err := c.do(ctx, http.MethodGet, "/groups", q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeGroups(body)
}

// FindGroup загружает список групп и выбирает группу по id.
// Отдельного эндпоинта для одной группы в API нет.
func (c *Client) FindGroup(ctx context.Context, id int64) (*domain.Group, error) {
	groups, err := c.ListGroups(ctx, domain.GroupFilter{})
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

// ListReviews возвращает отзывы группы, а при groupID == nil - последние отзывы по всем группам.
func (c *Client) ListReviews(ctx context.Context, groupID *int64) ([]*domain.Review, error) {
	q := url.Values{}
	if groupID != nil {
		q.Set("group_id", strconv.FormatInt(*groupID, 10))
	}

	body, err := c.do(ctx, http.MethodGet, "/reviews", q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeReviews(body)
}

// CreateReview отправляет новый отзыв.
func (c *Client) CreateReview(ctx context.Context, req api.CreateReviewRequest) (api.CreatedResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/reviews", nil, req)
	if err != nil {
		return api.CreatedResponse{}, err
	}
	return DecodeCreated(body)
}

// SaveGroup создает группу или, если задан GroupId, обновляет ее.
func (c *Client) SaveGroup(ctx context.Context, req api.SaveGroupRequest) (api.CreatedResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/groups", nil, req)
	if err != nil {
		return api.CreatedResponse{}, err
	}
	return DecodeCreated(body)
}

// Stats возвращает статистику оценок по всем группам.
func (c *Client) Stats(ctx context.Context) ([]*domain.GroupStats, error) {
	body, err := c.do(ctx, http.MethodGet, "/groups", url.Values{"stats": {"true"}}, nil)
	if err != nil {
		return nil, err
	}
	return DecodeStats(body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":  method,
		"url":     target,
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	}).Debug("API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// parseAPIError понимает {"error":{"code","message"}} и упрощенный {"error":"..."}.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return apiErr
	}

	var structured struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &structured); err == nil {
		apiErr.Code = structured.Code
		if structured.Message != "" {
			apiErr.Message = structured.Message
		}
		return apiErr
	}

	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
		apiErr.Message = plain
	}
	return apiErr
}
