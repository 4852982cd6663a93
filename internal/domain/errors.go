package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidGroupID      = errors.New("invalid group id")
	ErrInvalidPlatform     = errors.New("invalid platform")
	ErrInvalidSort         = errors.New("invalid sort field")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrMissingReviewFields = errors.New("group_id, user_name, rating and text are required")
	ErrMissingGroupFields  = errors.New("name and platform are required")

	// Group errors
	ErrGroupNotFound = errors.New("group not found")
)

// HTTPError для ответа с ошибкой
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidGroupID:      {Code: "INVALID_REQUEST", Message: "group id must be a positive integer"},
	ErrInvalidPlatform:     {Code: "INVALID_REQUEST", Message: "platform must be vk or telegram"},
	ErrInvalidSort:         {Code: "INVALID_REQUEST", Message: "sort must be rating, reviews or created_at"},
	ErrInvalidRating:       {Code: "INVALID_RATING", Message: "Rating must be between 1 and 5"},
	ErrMissingReviewFields: {Code: "INVALID_REQUEST", Message: "group_id, user_name, rating and text are required"},
	ErrMissingGroupFields:  {Code: "INVALID_REQUEST", Message: "Name and platform are required"},
	ErrGroupNotFound:       {Code: "NOT_FOUND", Message: "group not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
