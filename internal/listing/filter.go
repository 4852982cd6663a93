package listing

import (
	"cmp"
	"slices"
	"strings"

	"group-reviews/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ByPlatform оставляет группы одной платформы в исходном порядке.
func ByPlatform(groups []*domain.Group, p PlatformFilter) []*domain.Group {
	if p == PlatformAll || p == "" {
		return slices.Clone(groups)
	}
	out := make([]*domain.Group, 0, len(groups))
	for _, g := range groups {
		if string(g.Platform) == string(p) {
			out = append(out, g)
		}
	}
	return out
}

// ByName оставляет группы, в названии которых есть query. Пустой query оставляет все.
func ByName(groups []*domain.Group, query string, caseSensitive bool) []*domain.Group {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(groups)
	}
	match := strings.Contains
	if !caseSensitive {
		fold := cases.Fold()
		query = fold.String(norm.NFC.String(query))
		match = func(name, q string) bool {
			return strings.Contains(fold.String(norm.NFC.String(name)), q)
		}
	}
	out := make([]*domain.Group, 0, len(groups))
	for _, g := range groups {
		if match(g.Name, query) {
			out = append(out, g)
		}
	}
	return out
}

// TopRated сортирует по убыванию оценки, при равенстве порядок сохраняется.
func TopRated(groups []*domain.Group) []*domain.Group {
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b *domain.Group) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return out
}

// Apply фильтрует группы по состоянию: платформа, название и сортировка
// по оценке на вкладке топа.
func Apply(groups []*domain.Group, s ViewState) []*domain.Group {
	out := ByName(ByPlatform(groups, s.Platform), s.Query, false)
	if s.Tab == TabTop {
		out = TopRated(out)
	}
	return out
}
