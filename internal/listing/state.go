// Package listing хранит состояние страницы списка и фильтры,
// которые применяются к уже загруженным группам.
package listing

import (
	"fmt"
	"strings"

	"group-reviews/internal/domain"
)

// Tab - активная вкладка страницы списка.
type Tab string

const (
	TabHome    Tab = "home"
	TabSearch  Tab = "search"
	TabTop     Tab = "top"
	TabReviews Tab = "reviews"
)

// PlatformFilter оставляет в списке одну платформу.
type PlatformFilter string

const (
	PlatformAll      PlatformFilter = "all"
	PlatformVK       PlatformFilter = PlatformFilter(domain.PlatformVK)
	PlatformTelegram PlatformFilter = PlatformFilter(domain.PlatformTelegram)
)

// ViewState - сериализуемое состояние страницы списка.
type ViewState struct {
	Tab      Tab            `json:"tab"`
	Query    string         `json:"query"`
	Platform PlatformFilter `json:"platform"`
}

// Default возвращает начальное состояние страницы.
func Default() ViewState {
	return ViewState{Tab: TabHome, Platform: PlatformAll}
}

// ParseTab проверяет имя вкладки.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabHome, TabSearch, TabTop, TabReviews:
		return t, nil
	case "":
		return TabHome, nil
	default:
		return "", fmt.Errorf("unknown tab %q", s)
	}
}

// ParsePlatform проверяет фильтр платформы, пустая строка означает все.
func ParsePlatform(s string) (PlatformFilter, error) {
	switch p := PlatformFilter(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformAll, PlatformVK, PlatformTelegram:
		return p, nil
	case "":
		return PlatformAll, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// WithTab переключает вкладку.
func (s ViewState) WithTab(t Tab) ViewState {
	s.Tab = t
	return s
}

// WithQuery заменяет строку поиска.
func (s ViewState) WithQuery(q string) ViewState {
	s.Query = q
	return s
}

// WithPlatform заменяет фильтр платформы.
func (s ViewState) WithPlatform(p PlatformFilter) ViewState {
	s.Platform = p
	return s
}

// Filter превращает состояние в параметры запроса к API.
func (s ViewState) Filter() domain.GroupFilter {
	f := domain.GroupFilter{Search: strings.TrimSpace(s.Query)}
	if s.Platform != PlatformAll && s.Platform != "" {
		f.Platform = domain.Platform(s.Platform)
	}
	if s.Tab == TabTop {
		f.Sort = domain.SortByRating
	}
	return f
}

// ShowsReviews сообщает, показывает ли вкладка отзывы вместо групп.
func (s ViewState) ShowsReviews() bool {
	return s.Tab == TabReviews
}
