package rating

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	MinStars = 1
	MaxStars = 5
)

// Histogram хранит количество отзывов по каждой оценке от 1 до 5.
// Нулевое значение - пустая гистограмма со всеми пятью корзинами.
type Histogram struct {
	counts [MaxStars]int
}

// Bar - строка распределения оценок для отрисовки.
type Bar struct {
	Stars   int
	Count   int
	Percent float64
}

// Aggregate строит гистограмму по оценкам отзывов одной группы.
// Оценки вне диапазона 1..5 не учитываются, их количество возвращается вторым значением.
func Aggregate(ratings []int) (Histogram, int) {
	var h Histogram
	skipped := 0
	for _, r := range ratings {
		if !Valid(r) {
			skipped++
			continue
		}
		h.counts[r-1]++
	}
	return h, skipped
}

// Valid сообщает, является ли значение допустимой оценкой.
func Valid(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}

// FromCounts собирает гистограмму из готового распределения (например, из ответа статистики).
func FromCounts(counts map[int]int) (Histogram, error) {
	var h Histogram
	for stars, n := range counts {
		if !Valid(stars) {
			return Histogram{}, fmt.Errorf("star bucket %d out of range", stars)
		}
		if n < 0 {
			return Histogram{}, fmt.Errorf("negative count %d for %d stars", n, stars)
		}
		h.counts[stars-1] = n
	}
	return h, nil
}

// Count возвращает количество отзывов с оценкой stars.
func (h Histogram) Count(stars int) int {
	if !Valid(stars) {
		return 0
	}
	return h.counts[stars-1]
}

// Total - количество учтенных отзывов.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h.counts {
		total += n
	}
	return total
}

// Percentage считает долю корзины от числа учтенных отзывов.
func (h Histogram) Percentage(stars int) float64 {
	return h.PercentageOf(stars, h.Total())
}

// PercentageOf считает долю корзины от явно заданного total.
func (h Histogram) PercentageOf(stars, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(h.Count(stars)) / float64(total)
}

// Bars возвращает строки распределения в порядке отображения: 5, 4, 3, 2, 1.
func (h Histogram) Bars() []Bar {
	return h.BarsOf(h.Total())
}

// BarsOf - то же, что Bars, но с явным total.
func (h Histogram) BarsOf(total int) []Bar {
	bars := make([]Bar, 0, MaxStars)
	for stars := MaxStars; stars >= MinStars; stars-- {
		bars = append(bars, Bar{
			Stars:   stars,
			Count:   h.Count(stars),
			Percent: h.PercentageOf(stars, total),
		})
	}
	return bars
}

// Counts возвращает распределение в виде карты со всеми пятью ключами.
func (h Histogram) Counts() map[int]int {
	out := make(map[int]int, MaxStars)
	for stars := MinStars; stars <= MaxStars; stars++ {
		out[stars] = h.counts[stars-1]
	}
	return out
}

// MarshalJSON кодирует распределение как {"1": n, ..., "5": n}.
func (h Histogram) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, MaxStars)
	for stars := MinStars; stars <= MaxStars; stars++ {
		out[strconv.Itoa(stars)] = h.counts[stars-1]
	}
	return json.Marshal(out)
}

// UnmarshalJSON принимает только ключи "1".."5" с неотрицательными значениями.
// Отсутствующие ключи считаются нулевыми.
func (h *Histogram) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	counts := make(map[int]int, len(raw))
	for key, n := range raw {
		stars, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid star key %q", key)
		}
		counts[stars] = n
	}
	parsed, err := FromCounts(counts)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
