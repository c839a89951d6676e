package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "ourglowlip11mellow", "ourglowlip11mellow", 1},
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"disjoint", "abc", "xyz", 0},
		{"shifted block", "abcd", "bcde", 0.75},
		{"split blocks", "abxcd", "abcd", 8.0 / 9.0},
		{"only first block counts once", "tide", "diet", 0.25},
		{"katakana by code point", "アイウエ", "アイウオ", 0.75},
		{"exactly threshold", "abcdefghij", "abcxxxxxxx", 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-12)
		})
	}
}

func TestRatioExactThresholdIsBitExact(t *testing.T) {
	// 2*3/20 must land on the same float as the literal threshold
	assert.Equal(t, 0.3, Ratio("abcdefghij", "abcxxxxxxx"))
}

func TestRatioPopularElementsInLongTarget(t *testing.T) {
	// 'a' occurs 200 times in a 201-long target, so it leaves the index and
	// only the single 'b' block is found.
	b := "b" + strings.Repeat("a", 200)
	assert.Equal(t, 2.0/204.0, Ratio("aab", b))

	// below 200 elements nothing is dropped: "aa" and then nothing else
	short := "b" + strings.Repeat("a", 150)
	assert.Equal(t, 4.0/154.0, Ratio("aab", short))
}

func TestRatioPopularElementsStillExtendBlocks(t *testing.T) {
	// no indexed element matches, but the empty best block at (0,0) grows
	// over equal popular elements.
	assert.Equal(t, 2.0/201.0, Ratio("a", strings.Repeat("a", 200)))
}
