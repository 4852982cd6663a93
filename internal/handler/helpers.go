package handler

import (
	"errors"
	"net/http"
	"strconv"

	"group-reviews/api"
	"group-reviews/internal/domain"
	"group-reviews/internal/rating"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIGroup(group *domain.Group) api.Group {
	return api.Group{
		Id:                group.ID,
		Name:              group.Name,
		Platform:          api.Platform(group.Platform),
		Members:           group.Members,
		Rating:            group.Rating,
		ReviewsCount:      group.ReviewsCount,
		Description:       group.Description,
		Link:              optional(group.Link),
		Avatar:            optional(group.Avatar),
		VkGroupId:         optional(group.VKGroupID),
		TelegramChannelId: optional(group.TelegramChannelID),
		CreatedAt:         group.CreatedAt,
	}
}

func toAPIGroups(groups []*domain.Group) []api.Group {
	result := make([]api.Group, len(groups))
	for i, group := range groups {
		result[i] = toAPIGroup(group)
	}
	return result
}

func toAPIReviews(reviews []*domain.Review) []api.Review {
	result := make([]api.Review, len(reviews))
	for i, review := range reviews {
		result[i] = api.Review{
			Id:         review.ID,
			GroupId:    review.GroupID,
			UserName:   review.UserName,
			UserAvatar: optional(review.UserAvatar),
			Rating:     review.Rating,
			Text:       review.Text,
			CreatedAt:  review.CreatedAt,
			GroupName:  review.GroupName,
		}
	}
	return result
}

func toAPIGroupStats(stats []*domain.GroupStats) []api.GroupStats {
	result := make([]api.GroupStats, len(stats))
	for i, stat := range stats {
		distribution := make(map[string]int, rating.MaxStars)
		for stars, count := range stat.RatingDistribution.Counts() {
			distribution[strconv.Itoa(stars)] = count
		}
		result[i] = api.GroupStats{
			Id:                 stat.ID,
			Name:               stat.Name,
			Platform:           api.Platform(stat.Platform),
			Avatar:             optional(stat.Avatar),
			MembersCount:       stat.MembersCount,
			AvgRating:          stat.AvgRating,
			ReviewsCount:       stat.ReviewsCount,
			RatingDistribution: distribution,
			CreatedAt:          stat.CreatedAt,
		}
	}
	return result
}

func toDomainGroup(req api.SaveGroupRequest) *domain.Group {
	group := &domain.Group{
		Name:              req.Name,
		Platform:          domain.Platform(req.Platform),
		Members:           string(req.Members),
		Description:       req.Description,
		Link:              req.Link,
		Avatar:            req.Avatar,
		VKGroupID:         req.VkGroupId,
		TelegramChannelID: req.TelegramChannelId,
	}
	if req.GroupId != nil {
		group.ID = *req.GroupId
	}
	return group
}

func toDomainReview(req api.CreateReviewRequest) *domain.Review {
	return &domain.Review{
		GroupID:    req.GroupId,
		UserName:   req.UserName,
		UserAvatar: req.UserAvatar,
		Rating:     req.Rating,
		Text:       req.Text,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Not Found errors (404)
	case errors.Is(err, domain.ErrGroupNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidGroupID),
		errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrInvalidSort),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrMissingReviewFields),
		errors.Is(err, domain.ErrMissingGroupFields):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
