package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reQ  = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
	reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Q validates a search query: trims, enforces allowed characters and max
// length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product/category/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses a quantity, defaulting to 1 and clamping abusive values.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Limit parses a list limit with a default and an upper bound.
func Limit(s string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// Price parses a non-negative whole price; zero means "unset".
func Price(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Rating parses a minimum rating in [0, 5]; zero means "unset".
func Rating(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || f > 5 {
		return 0
	}
	return f
}

// Sort whitelists the supported sort orders; anything else is "".
func Sort(s string) string {
	switch s {
	case "price-asc", "price-desc", "name-asc", "rating-desc":
		return s
	}
	return ""
}
