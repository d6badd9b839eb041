package utils

import (
	"math"
	"strconv"
)

// CreateRankList returns ranks 1..count for items that are already sorted.
// Ranks past the uint16 range saturate at its maximum.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := 0; i < count; i++ {
		ranks[i] = uint16(min(i+1, math.MaxUint16))
	}
	return ranks
}

// FormatWithCommas formats an integer with thousands separators.
func FormatWithCommas(n int64) string {
	sign := ""
	abs := uint64(n)
	if n < 0 {
		sign = "-"
		abs = -abs
	}
	str := strconv.FormatUint(abs, 10)
	if len(str) <= 3 {
		return sign + str
	}

	out := make([]byte, 0, len(sign)+len(str)+len(str)/3)
	out = append(out, sign...)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, str[i])
	}
	return string(out)
}
