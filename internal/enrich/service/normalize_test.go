package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"our glow lip 11 mellow", "ourglowlip11mellow"},
		{"【限定】アワグロウ リップ 11 Mellow", "11Mellow"},
		{"OUR GLOW LIP #2本セット 11 mellow", "OURGLOWLIP11mellow"},
		{"[NEW] 韓コスメ 口紅", "NEW"},
		{"#unterminated", "unterminated"},
		{"ab　cd ef\tgh", "abcdefgh"},
		{"  lots    of   space  ", "lotsofspace"},
		// the slash pattern is lazy with nothing after it: only the slash goes
		{"Tint/Red 02", "TintRed02"},
		{"a/b/c", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"【限定】アワグロウ リップ 11 Mellow",
		"OUR GLOW LIP #2本セット 11 mellow",
		"Tint/Red 02",
		"韓コスメ マットティント [03] コーラル",
		"",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), in)
	}
}

func TestCleanAll(t *testing.T) {
	assert.Equal(t, []string{"ab", "", "c"}, CleanAll([]string{"a b", "", "【x】c"}))
}
