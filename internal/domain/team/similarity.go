package team

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio scores two strings on a 0-100 scale from their insert/delete edit
// distance, so a substitution costs two edits. Callers are expected to
// lowercase both sides first.
func Ratio(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	distance := edlib.LCSEditDistance(a, b)
	score := float64(total-distance) / float64(total) * 100
	return int(math.Round(score))
}
