// Package reldate превращает даты отзывов в короткие относительные подписи.
package reldate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const day = 24 * time.Hour

// Clock возвращает текущее время.
type Clock func() time.Time

// Labels - набор подписей одной локали.
type Labels struct {
	Today      string
	Yesterday  string
	DaysAgo    string // формат с одним %d
	WeeksAgo   string // формат с одним %d
	DateLayout string
}

var (
	Russian = Labels{
		Today:      "сегодня",
		Yesterday:  "вчера",
		DaysAgo:    "%d дня назад",
		WeeksAgo:   "%d недели назад",
		DateLayout: "02.01.2006",
	}
	English = Labels{
		Today:      "today",
		Yesterday:  "yesterday",
		DaysAgo:    "%d days ago",
		WeeksAgo:   "%d weeks ago",
		DateLayout: "1/2/2006",
	}
)

var (
	supported = []language.Tag{language.Russian, language.English}
	matcher   = language.NewMatcher(supported)
	catalog   = map[language.Tag]Labels{
		language.Russian: Russian,
		language.English: English,
	}
)

// Formatter форматирует даты относительно своих часов.
type Formatter struct {
	labels Labels
	clock  Clock
	loc    *time.Location
}

// Option настраивает Formatter.
type Option func(*Formatter)

// WithClock подменяет time.Now.
func WithClock(c Clock) Option {
	return func(f *Formatter) { f.clock = c }
}

// WithLocation задает часовой пояс для абсолютных дат.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.loc = loc }
}

// WithLabels заменяет подписи локали.
func WithLabels(l Labels) Option {
	return func(f *Formatter) { f.labels = l }
}

// New создает Formatter для локали BCP 47, например "ru-RU" или "en".
// Для неизвестной или пустой локали используется русская.
func New(locale string, opts ...Option) *Formatter {
	f := &Formatter{
		labels: LabelsFor(locale),
		clock:  time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LabelsFor подбирает ближайшую поддерживаемую локаль.
func LabelsFor(locale string) Labels {
	if strings.TrimSpace(locale) == "" {
		return Russian
	}
	tag, _, conf := matcher.Match(language.Make(locale))
	if conf == language.No {
		return Russian
	}
	base, _ := tag.Base()
	for t, labels := range catalog {
		if b, _ := t.Base(); b == base {
			return labels
		}
	}
	return Russian
}

// DiffDays - это ceil(|now - ts| / 24h).
func DiffDays(now, ts time.Time) int {
	d := now.Sub(ts)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// Format возвращает относительную подпись для ts.
func (f *Formatter) Format(ts time.Time) string {
	n := DiffDays(f.clock(), ts)
	switch {
	case n == 0:
		return f.labels.Today
	case n == 1:
		return f.labels.Yesterday
	case n < 7:
		return fmt.Sprintf(f.labels.DaysAgo, n)
	case n < 30:
		return fmt.Sprintf(f.labels.WeeksAgo, n/7)
	default:
		return ts.In(f.loc).Format(f.labels.DateLayout)
	}
}

// FormatString разбирает дату ISO 8601 и форматирует ее.
// Неразборчивая строка возвращается без изменений.
func (f *Formatter) FormatString(s string) string {
	ts, err := Parse(s)
	if err != nil {
		return s
	}
	return f.Format(ts)
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Parse принимает RFC 3339 и формат PostgreSQL с пробелом вместо T.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range layouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
