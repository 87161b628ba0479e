package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "9.00", want: 9, ok: true},
		{in: " 12.5 ", want: 12.5, ok: true},
		{in: "-10", want: -10, ok: true},
		{in: "", ok: false},
		{in: "abc", ok: false},
		{in: "NaN", ok: false},
		{in: "Inf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWhole(t *testing.T) {
	v, ok := ParseWhole("13")
	assert.True(t, ok)
	assert.Equal(t, 13, v)

	v, ok = ParseWhole("07")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = ParseWhole("1.5")
	assert.False(t, ok)

	_, ok = ParseWhole("hello")
	assert.False(t, ok)
}
