package scorecard

import (
	"strconv"
	"strings"
)

// LegalBalls returns the number of legal deliveries bowled. A direct balls
// count wins; otherwise overs in "overs.balls" notation are converted.
func (b Bowler) LegalBalls() int {
	if b.Balls != nil && *b.Balls > 0 {
		return *b.Balls
	}
	return OversToBalls(b.Overs)
}

// OversValue returns the overs figure as written, e.g. 3.4 for "3.4".
func (b Bowler) OversValue() float64 {
	out, ok := floatOf(b.Overs)
	if !ok {
		return 0
	}
	return out
}

// OversToBalls converts cricket overs notation into legal balls.
// "3.4" is three overs and four balls; a fractional digit above 5 is not
// overs notation and the value is treated as whole overs.
func OversToBalls(overs string) int {
	clean := strings.TrimSpace(overs)
	if clean == "" {
		return 0
	}

	if whole, frac, ok := strings.Cut(clean, "."); ok {
		o, errO := strconv.Atoi(whole)
		b, errB := strconv.Atoi(frac)
		if errO == nil && errB == nil && len(frac) == 1 && b >= 0 && b <= 5 && o >= 0 {
			return o*6 + b
		}
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil || value < 0 {
		return 0
	}
	return int(value) * 6
}

// BallsToOvers renders legal balls back into overs notation, e.g. 22 -> 3.4.
func BallsToOvers(balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return float64(balls/6) + float64(balls%6)/10
}
