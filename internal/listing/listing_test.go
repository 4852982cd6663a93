package listing_test

import (
	"encoding/json"
	"testing"

	"group-reviews/internal/domain"
	"group-reviews/internal/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroups() []*domain.Group {
	return []*domain.Group{
		{ID: 1, Name: "IT Специалисты", Platform: domain.PlatformTelegram, Rating: 4.8},
		{ID: 2, Name: "Дизайн и творчество", Platform: domain.PlatformVK, Rating: 4.5},
		{ID: 3, Name: "Маркетинг PRO", Platform: domain.PlatformTelegram, Rating: 4.9},
		{ID: 4, Name: "Котики", Platform: domain.PlatformVK, Rating: 4.5},
	}
}

func ids(groups []*domain.Group) []int64 {
	out := make([]int64, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.ID)
	}
	return out
}

func TestByPlatform_KeepsOrder(t *testing.T) {
	groups := sampleGroups()

	assert.Equal(t, []int64{2, 4}, ids(listing.ByPlatform(groups, listing.PlatformVK)))
	assert.Equal(t, []int64{1, 3}, ids(listing.ByPlatform(groups, listing.PlatformTelegram)))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(listing.ByPlatform(groups, listing.PlatformAll)))
}

func TestByName(t *testing.T) {
	groups := sampleGroups()

	assert.Equal(t, []int64{3}, ids(listing.ByName(groups, "маркетинг", false)))
	assert.Empty(t, listing.ByName(groups, "маркетинг", true))
	assert.Equal(t, []int64{3}, ids(listing.ByName(groups, "Маркетинг", true)))
	assert.Equal(t, []int64{1}, ids(listing.ByName(groups, "it", false)))
	assert.Len(t, listing.ByName(groups, "  ", false), 4)
}

func TestTopRated_StableDescending(t *testing.T) {
	groups := sampleGroups()[:3]

	top := listing.TopRated(groups)

	require.Len(t, top, 3)
	assert.Equal(t, []float64{4.9, 4.8, 4.5}, []float64{top[0].Rating, top[1].Rating, top[2].Rating})
	assert.Equal(t, int64(1), groups[0].ID, "input must not be reordered")
}

func TestTopRated_TiesKeepInputOrder(t *testing.T) {
	top := listing.TopRated(sampleGroups())

	assert.Equal(t, []int64{3, 1, 2, 4}, ids(top))
}

func TestApply(t *testing.T) {
	state := listing.Default().WithTab(listing.TabTop).WithPlatform(listing.PlatformVK)

	assert.Equal(t, []int64{2, 4}, ids(listing.Apply(sampleGroups(), state)))

	state = state.WithPlatform(listing.PlatformAll).WithQuery("ко")
	assert.Equal(t, []int64{4}, ids(listing.Apply(sampleGroups(), state)))
}

func TestViewState_Filter(t *testing.T) {
	state := listing.Default()
	assert.Equal(t, domain.GroupFilter{}, state.Filter())

	state = state.WithTab(listing.TabTop).WithQuery("  it ").WithPlatform(listing.PlatformTelegram)
	assert.Equal(t, domain.GroupFilter{
		Search:   "it",
		Platform: domain.PlatformTelegram,
		Sort:     domain.SortByRating,
	}, state.Filter())
}

func TestViewState_TransitionsDoNotMutate(t *testing.T) {
	original := listing.Default()
	next := original.WithTab(listing.TabReviews)

	assert.Equal(t, listing.TabHome, original.Tab)
	assert.True(t, next.ShowsReviews())
	assert.False(t, original.ShowsReviews())
}

func TestViewState_JSON(t *testing.T) {
	state := listing.ViewState{Tab: listing.TabSearch, Query: "дизайн", Platform: listing.PlatformVK}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tab":"search","query":"дизайн","platform":"vk"}`, string(data))

	var decoded listing.ViewState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)
}

func TestParse(t *testing.T) {
	tab, err := listing.ParseTab("TOP")
	require.NoError(t, err)
	assert.Equal(t, listing.TabTop, tab)

	tab, err = listing.ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, listing.TabHome, tab)

	_, err = listing.ParseTab("admin")
	assert.Error(t, err)

	p, err := listing.ParsePlatform("")
	require.NoError(t, err)
	assert.Equal(t, listing.PlatformAll, p)

	_, err = listing.ParsePlatform("facebook")
	assert.Error(t, err)
}
