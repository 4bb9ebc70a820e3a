package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"30", 30, true},
		{" 30", 30, true},
		{"30abc", 30, true},
		{"-5", -5, true},
		{"+7", 7, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"stats", 0, false},
		{"99999999999999999999999", math.MaxInt, true},
		{"-99999999999999999999999", math.MinInt, true},
		{"0x1E", 30, true},
		{"0X1e", 30, true},
		{"-0x10", -16, true},
		{"0xZZ", 0, false},
		{"0x", 0, false},
		{"012", 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
