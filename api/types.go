// Package api contains the wire types and echo bindings of the groups/reviews HTTP API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Defines values for Platform.
const (
	PlatformTelegram Platform = "telegram"
	PlatformVk       Platform = "vk"
)

// Platform defines model for Platform.
type Platform string

// Group defines model for Group.
type Group struct {
	Id                int64     `json:"id"`
	Name              string    `json:"name"`
	Platform          Platform  `json:"platform"`
	Members           string    `json:"members"`
	Rating            float64   `json:"rating"`
	ReviewsCount      int       `json:"reviews_count"`
	Description       string    `json:"description"`
	Link              *string   `json:"link,omitempty"`
	Avatar            *string   `json:"avatar,omitempty"`
	VkGroupId         *string   `json:"vk_group_id,omitempty"`
	TelegramChannelId *string   `json:"telegram_channel_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Review defines model for Review.
type Review struct {
	Id         int64     `json:"id"`
	GroupId    int64     `json:"group_id"`
	UserName   string    `json:"user_name"`
	UserAvatar *string   `json:"user_avatar,omitempty"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	GroupName  string    `json:"group_name"`
}

// GroupStats defines model for GroupStats.
type GroupStats struct {
	Id                 int64          `json:"id"`
	Name               string         `json:"name"`
	Platform           Platform       `json:"platform"`
	Avatar             *string        `json:"avatar,omitempty"`
	MembersCount       string         `json:"members_count"`
	AvgRating          float64        `json:"avg_rating"`
	ReviewsCount       int            `json:"reviews_count"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	CreatedAt          time.Time      `json:"created_at"`
}

// StatsResponse defines model for StatsResponse.
type StatsResponse struct {
	Stats []GroupStats `json:"stats"`
}

// SaveGroupRequest defines model for SaveGroupRequest. A non-nil GroupId updates an existing group.
type SaveGroupRequest struct {
	GroupId           *int64  `json:"groupId,omitempty"`
	Name              string  `json:"name"`
	Platform          string  `json:"platform"`
	Avatar            string  `json:"avatar,omitempty"`
	Members           Members `json:"members,omitempty"`
	Description       string  `json:"description,omitempty"`
	Link              string  `json:"link,omitempty"`
	VkGroupId         string  `json:"vk_group_id,omitempty"`
	TelegramChannelId string  `json:"telegram_channel_id,omitempty"`
}

// CreateReviewRequest defines model for CreateReviewRequest.
type CreateReviewRequest struct {
	GroupId    int64  `json:"group_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

// CreatedResponse defines model for CreatedResponse.
type CreatedResponse struct {
	Id      int64  `json:"id"`
	Message string `json:"message"`
}

// Defines values for ErrorResponseErrorCode.
const (
	INTERNALERROR  ErrorResponseErrorCode = "INTERNAL_ERROR"
	INVALIDRATING  ErrorResponseErrorCode = "INVALID_RATING"
	INVALIDREQUEST ErrorResponseErrorCode = "INVALID_REQUEST"
	NOTFOUND       ErrorResponseErrorCode = "NOT_FOUND"
)

// ErrorResponseErrorCode defines model for ErrorResponse.Error.Code.
type ErrorResponseErrorCode string

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// GetGroupsParams defines parameters for GetGroups.
type GetGroupsParams struct {
	Search   *string `form:"search,omitempty" json:"search,omitempty"`
	Platform *string `form:"platform,omitempty" json:"platform,omitempty"`
	Sort     *string `form:"sort,omitempty" json:"sort,omitempty"`
	Stats    *bool   `form:"stats,omitempty" json:"stats,omitempty"`
}

// GetReviewsParams defines parameters for GetReviews.
type GetReviewsParams struct {
	GroupId *int64 `form:"group_id,omitempty" json:"group_id,omitempty"`
}

// Members is a subscriber count sent either as a display string ("81K") or a number.
type Members string

// UnmarshalJSON accepts a JSON string, number or null.
func (m *Members) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Members(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("members must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*m = Members(strconv.FormatInt(i, 10))
		return nil
	}
	*m = Members(n.String())
	return nil
}
