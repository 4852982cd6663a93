package client

import (
	"errors"
	"testing"
	"time"

	"group-reviews/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroups_RatingAsStringOrNumber(t *testing.T) {
	data := []byte(`[
		{"id":1,"name":"IT Специалисты","platform":"telegram","members":"81K","rating":"4.8","reviews_count":120,"description":"IT","created_at":"2024-03-01T10:00:00"},
		{"id":2,"name":"Котики","platform":"vk","members":300000,"rating":4.5,"reviews_count":"7","link":"https://vk.com/cats","vk_group_id":"cats","created_at":"2024-03-01T10:00:00Z"}
	]`)

	groups, err := DecodeGroups(data)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.InDelta(t, 4.8, groups[0].Rating, 1e-9)
	assert.Equal(t, 120, groups[0].ReviewsCount)
	assert.Equal(t, domain.PlatformTelegram, groups[0].Platform)
	assert.Equal(t, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), groups[0].CreatedAt)

	assert.InDelta(t, 4.5, groups[1].Rating, 1e-9)
	assert.Equal(t, 7, groups[1].ReviewsCount)
	assert.Equal(t, "300000", groups[1].Members)
	assert.Equal(t, "cats", groups[1].VKGroupID)
}

func TestDecodeGroups_Integrity(t *testing.T) {
	testCases := []struct {
		name  string
		data  string
		field string
	}{
		{"Not an array", `{"id":1}`, ""},
		{"Missing id", `[{"name":"X","platform":"vk"}]`, "id"},
		{"Missing name", `[{"id":1,"platform":"vk"}]`, "name"},
		{"Unknown platform", `[{"id":1,"name":"X","platform":"ok"}]`, "platform"},
		{"Rating not numeric", `[{"id":1,"name":"X","platform":"vk","rating":"high"}]`, ""},
		{"Rating out of range", `[{"id":1,"name":"X","platform":"vk","rating":7,"reviews_count":1}]`, "rating"},
		{"Rating missing", `[{"id":1,"name":"X","platform":"vk","reviews_count":1}]`, "rating"},
		{"Rating NaN", `[{"id":1,"name":"X","platform":"vk","rating":"NaN","reviews_count":1}]`, "rating"},
		{"Rating Inf", `[{"id":1,"name":"X","platform":"vk","rating":"+Inf","reviews_count":1}]`, "rating"},
		{"Reviews count missing", `[{"id":1,"name":"X","platform":"vk","rating":4}]`, "reviews_count"},
		{"Reviews count negative", `[{"id":1,"name":"X","platform":"vk","rating":4,"reviews_count":-3}]`, "reviews_count"},
		{"Reviews count fractional", `[{"id":1,"name":"X","platform":"vk","rating":4,"reviews_count":"2.5"}]`, "reviews_count"},
		{"Bad timestamp", `[{"id":1,"name":"X","platform":"vk","rating":4,"reviews_count":1,"created_at":"yesterday"}]`, "created_at"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeGroups([]byte(tc.data))
			var integrity *DataIntegrityError
			require.True(t, errors.As(err, &integrity), "got %v", err)
			assert.Equal(t, tc.field, integrity.Field)
		})
	}
}

func TestDecodeReviews(t *testing.T) {
	data := []byte(`[
		{"id":11,"group_id":1,"user_name":"Анна","rating":5,"text":"Отлично","created_at":"2024-03-01 10:00:00","group_name":"IT Специалисты"}
	]`)

	reviews, err := DecodeReviews(data)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Анна", reviews[0].UserName)
	assert.Equal(t, "IT Специалисты", reviews[0].GroupName)
	assert.Empty(t, reviews[0].UserAvatar)

	_, err = DecodeReviews([]byte(`[{"id":11,"group_id":1,"rating":5,"text":"?"}]`))
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "user_name", integrity.Field)
}

func TestDecodeStats(t *testing.T) {
	data := []byte(`{"stats":[
		{"id":1,"name":"IT Специалисты","platform":"telegram","members_count":"81K","avg_rating":"4.40","reviews_count":5,
		 "rating_distribution":{"1":0,"2":0,"3":1,"4":1,"5":3}}
	]}`)

	stats, err := DecodeStats(data)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.InDelta(t, 4.4, stats[0].AvgRating, 1e-9)
	assert.Equal(t, 3, stats[0].RatingDistribution.Count(5))
	assert.Equal(t, 5, stats[0].RatingDistribution.Total())

	for _, bad := range []string{
		`[]`,
		`{}`,
		`{"stats":[{"id":1,"name":"X","avg_rating":5,"reviews_count":1,"rating_distribution":{"six":1}}]}`,
		`{"stats":[{"id":1,"name":"X","avg_rating":5,"reviews_count":1,"rating_distribution":{"6":1}}]}`,
	} {
		_, err := DecodeStats([]byte(bad))
		var integrity *DataIntegrityError
		assert.ErrorAs(t, err, &integrity, bad)
	}
}

func TestDecodeStats_Numbers(t *testing.T) {
	testCases := []struct {
		name  string
		data  string
		field string
	}{
		{"Avg rating NaN", `{"stats":[{"id":1,"name":"X","avg_rating":"NaN","reviews_count":1}]}`, "avg_rating"},
		{"Avg rating out of range", `{"stats":[{"id":1,"name":"X","avg_rating":5.5,"reviews_count":1}]}`, "avg_rating"},
		{"Avg rating missing", `{"stats":[{"id":1,"name":"X","reviews_count":1}]}`, "avg_rating"},
		{"Reviews count negative", `{"stats":[{"id":1,"name":"X","avg_rating":4,"reviews_count":"-3"}]}`, "reviews_count"},
		{"Reviews count fractional", `{"stats":[{"id":1,"name":"X","avg_rating":4,"reviews_count":1.5}]}`, "reviews_count"},
		{"Reviews count missing", `{"stats":[{"id":1,"name":"X","avg_rating":4}]}`, "reviews_count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := DecodeStats([]byte(tc.data))
			assert.Nil(t, stats)
			var integrity *DataIntegrityError
			require.ErrorAs(t, err, &integrity)
			assert.Equal(t, tc.field, integrity.Field)
		})
	}
}

func TestDecodeCreated(t *testing.T) {
	resp, err := DecodeCreated([]byte(`{"id":5,"message":"Review created successfully"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Id)

	_, err = DecodeCreated([]byte(`{"message":"ok"}`))
	var integrity *DataIntegrityError
	assert.ErrorAs(t, err, &integrity)
}
