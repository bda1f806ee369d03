package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TimeSpanToSeconds converts "<N>[s|m|h|d|w]" to seconds. A number without a
// unit is minutes.
func TimeSpanToSeconds(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimRightFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	unit := s[len(digits):]
	if digits == "" {
		return 0, fmt.Errorf("time span %q has no number", s)
	}

	var mult uint64
	switch strings.ToLower(unit) {
	case "s":
		mult = 1
	case "", "m":
		mult = 60
	case "h":
		mult = 60 * 60
	case "d":
		mult = 24 * 60 * 60
	case "w":
		mult = 7 * 24 * 60 * 60
	default:
		return 0, fmt.Errorf("time span %q has unknown unit %q", s, unit)
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("time span %q: %w", s, err)
	}
	secs := n * mult
	if secs > math.MaxUint32 {
		return 0, fmt.Errorf("time span %q overflows", s)
	}
	return uint32(secs), nil
}
