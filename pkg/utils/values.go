package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ParseValue converts a raw CSV cell into a typed value (int, float64 or string).
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric safely converts supported types to float64.
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case float32:
		return float64(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float()
		}
		return 0
	}
}

// String renders a document field as a plain string key.
func String(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
