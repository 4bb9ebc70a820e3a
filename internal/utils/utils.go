package utils

import (
	"errors"
	"strconv"
)

// ParseLeadingInt parses the optional sign and leading digits of s, ignoring
// surrounding whitespace and any trailing characters: "30" and "30abc" both
// yield 30. A "0x" or "0X" prefix switches to hexadecimal. Values outside the
// int range are clamped to math.MinInt or math.MaxInt. ok is false only when s
// has no leading integer.
func ParseLeadingInt(s string) (n int, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	var sign string
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		sign = s[i : i+1]
		i++
	}
	base, isDigit := 10, isDecDigit
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base, isDigit = 16, isHexDigit
		i += 2
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+s[start:i], base, strconv.IntSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// On ErrRange v already holds the clamped bound.
	return int(v), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
