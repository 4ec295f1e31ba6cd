package ty

import (
	"math"
	"strconv"
	"strings"
)

// MI is a shorthand for map[string]interface{}
type MI map[string]interface{}

// GetString returns the value as a string if it exists and is a string, otherwise empty string.
func (mi MI) GetString(key string) string {
	s, _ := mi.GetStringOk(key)
	return s
}

// GetStringOk returns the value as a string if it exists and is a string, along with true.
func (mi MI) GetStringOk(key string) (string, bool) {
	v, ok := mi[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetIntOk returns the value as an int when it is a number or a numeric
// string. JSON arguments decode numbers as float64, fractions are truncated
// and values past the int range saturate.
func (mi MI) GetIntOk(key string) (int, bool) {
	v, ok := mi[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		switch {
		case math.IsNaN(val):
			return 0, false
		case val >= math.MaxInt:
			return math.MaxInt, true
		case val <= math.MinInt:
			return math.MinInt, true
		}
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
