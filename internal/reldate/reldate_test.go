package reldate_test

import (
	"testing"
	"time"

	"group-reviews/internal/reldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func newFormatter(locale string) *reldate.Formatter {
	return reldate.New(locale, reldate.WithClock(fixedClock), reldate.WithLocation(time.UTC))
}

func TestFormat_Boundaries(t *testing.T) {
	f := newFormatter("ru-RU")

	testCases := []struct {
		name     string
		age      time.Duration
		expected string
	}{
		{"Exactly now", 0, "сегодня"},
		{"One hour", time.Hour, "вчера"},
		{"Exactly one day", 24 * time.Hour, "вчера"},
		{"Two days", 48 * time.Hour, "2 дня назад"},
		{"Exactly six days", 6 * 24 * time.Hour, "6 дня назад"},
		{"Exactly seven days", 7 * 24 * time.Hour, "1 недели назад"},
		{"Thirteen days", 13 * 24 * time.Hour, "1 недели назад"},
		{"Fourteen days", 14 * 24 * time.Hour, "2 недели назад"},
		{"Exactly 29 days", 29 * 24 * time.Hour, "4 недели назад"},
		{"Exactly 30 days", 30 * 24 * time.Hour, "14.02.2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.Format(now.Add(-tc.age)))
		})
	}
}

func TestFormat_CeilsPartialDays(t *testing.T) {
	f := newFormatter("ru")

	assert.Equal(t, "2 дня назад", f.Format(now.Add(-25*time.Hour)))
	assert.Equal(t, "1 недели назад", f.Format(now.Add(-(6*24+1)*time.Hour)))
}

func TestFormat_FutureUsesAbsoluteDifference(t *testing.T) {
	f := newFormatter("ru")

	assert.Equal(t, "вчера", f.Format(now.Add(24*time.Hour)))
}

func TestFormat_English(t *testing.T) {
	f := newFormatter("en-US")

	assert.Equal(t, "today", f.Format(now))
	assert.Equal(t, "yesterday", f.Format(now.Add(-24*time.Hour)))
	assert.Equal(t, "6 days ago", f.Format(now.Add(-6*24*time.Hour)))
	assert.Equal(t, "1 weeks ago", f.Format(now.Add(-7*24*time.Hour)))
	assert.Equal(t, "4 weeks ago", f.Format(now.Add(-29*24*time.Hour)))
	assert.Equal(t, "2/14/2024", f.Format(now.Add(-30*24*time.Hour)))
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, reldate.Russian, reldate.LabelsFor(""))
	assert.Equal(t, reldate.Russian, reldate.LabelsFor("ru-RU"))
	assert.Equal(t, reldate.English, reldate.LabelsFor("en-GB"))
	assert.Equal(t, reldate.Russian, reldate.LabelsFor("not a locale"))
}

func TestFormatString(t *testing.T) {
	f := newFormatter("ru")

	assert.Equal(t, "вчера", f.FormatString("2024-03-14T12:00:00Z"))
	assert.Equal(t, "вчера", f.FormatString("2024-03-14 12:00:00.123456+00:00"))
	assert.Equal(t, "garbage", f.FormatString("garbage"))
}

func TestParse(t *testing.T) {
	ts, err := reldate.Parse("2024-03-14T10:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 14, 7, 30, 0, 0, time.UTC), ts.UTC())

	_, err = reldate.Parse("14/03/2024")
	assert.Error(t, err)
}

func TestDiffDays(t *testing.T) {
	assert.Equal(t, 0, reldate.DiffDays(now, now))
	assert.Equal(t, 1, reldate.DiffDays(now, now.Add(-time.Second)))
	assert.Equal(t, 30, reldate.DiffDays(now, now.Add(-30*24*time.Hour)))
}
