package rating

import (
	"math"
	"strings"
)

// FilledStars - число закрашенных звезд для средней оценки (floor, от 0 до 5).
func FilledStars(avg float64) int {
	if math.IsNaN(avg) || avg <= 0 {
		return 0
	}
	n := int(math.Floor(avg))
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// Stars рисует строку из пяти звезд.
func Stars(avg float64) string {
	n := FilledStars(avg)
	return strings.Repeat("★", n) + strings.Repeat("☆", MaxStars-n)
}

// Initials возвращает первые две буквы имени в верхнем регистре для аватара-заглушки.
func Initials(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
