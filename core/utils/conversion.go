package utils

import (
	"fmt"
	"math"
	"strconv"
)

// ToString converts various types to string.
// Whole floats are printed without a fractional part so that a JSON number
// like 12 (decoded as float64) and the string "12" yield the same key.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return ToString(float64(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToKB converts a byte count to kilobytes rounded to two decimals.
func ToKB(size int64) float64 {
	return Round2(float64(size) / 1024)
}

// Round2 rounds a float to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
