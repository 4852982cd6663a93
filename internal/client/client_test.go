package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"group-reviews/api"
	"group-reviews/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupsJSON = `[
	{"id":1,"name":"IT Специалисты","platform":"telegram","members":"81K","rating":4.8,"reviews_count":120},
	{"id":2,"name":"Котики","platform":"vk","members":"300K","rating":"4.5","reviews_count":7}
]`

func TestClient_ListGroups_SendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups", r.URL.Path)
		assert.Equal(t, "кот", r.URL.Query().Get("search"))
		assert.Equal(t, "vk", r.URL.Query().Get("platform"))
		assert.Equal(t, "rating", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(groupsJSON))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	groups, err := c.ListGroups(context.Background(), domain.GroupFilter{
		Search:   "кот",
		Platform: domain.PlatformVK,
		Sort:     domain.SortByRating,
	})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestClient_FindGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(groupsJSON))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)

	group, err := c.FindGroup(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Котики", group.Name)

	_, err = c.FindGroup(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestClient_ListReviews(t *testing.T) {
	var gotQuery []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = append(gotQuery, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	id := int64(3)

	_, err := c.ListReviews(context.Background(), &id)
	require.NoError(t, err)
	_, err = c.ListReviews(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"group_id=3", ""}, gotQuery)
}

func TestClient_CreateReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.CreateReviewRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Анна", req.UserName)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":21,"message":"Review created successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	resp, err := c.CreateReview(context.Background(), api.CreateReviewRequest{
		GroupId: 1, UserName: "Анна", Rating: 5, Text: "Отлично",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), resp.Id)
}

func TestClient_APIErrors(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{"Structured", http.StatusBadRequest, `{"error":{"code":"INVALID_RATING","message":"Rating must be between 1 and 5"}}`, "INVALID_RATING", "Rating must be between 1 and 5"},
		{"Plain string", http.StatusBadRequest, `{"error":"Name and platform are required"}`, "", "Name and platform are required"},
		{"No body", http.StatusBadGateway, ``, "", "Bad Gateway"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).SaveGroup(context.Background(), api.SaveGroupRequest{Name: "X"})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantCode, apiErr.Code)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_Stats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("stats"))
		_, _ = w.Write([]byte(`{"stats":[{"id":1,"name":"X","platform":"vk","avg_rating":5,"reviews_count":1,"rating_distribution":{"5":1}}]}`))
	}))
	defer srv.Close()

	stats, err := New(srv.URL, time.Second).Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].RatingDistribution.Count(5))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, 20*time.Millisecond).ListGroups(context.Background(), domain.GroupFilter{})
	assert.Error(t, err)
}
