package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var ErrNotNumeric = errors.New("value is not numeric")

// ParseNumericValue reads a form value that may be a JSON number, a numeric
// string or empty. present is false for null and blank strings. NaN and
// infinities are not numeric.
func ParseNumericValue(raw interface{}) (value float64, present bool, err error) {
	value, present, err = parseNumber(raw)
	if err != nil || !present {
		return 0, present, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%w: %v", ErrNotNumeric, raw)
	}
	return value, true, nil
}

func parseNumber(raw interface{}) (float64, bool, error) {
	switch v := raw.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s", ErrNotNumeric, v)
		}
		return f, true, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}
		return f, true, nil
	}
	return 0, false, fmt.Errorf("%w: %T", ErrNotNumeric, raw)
}
