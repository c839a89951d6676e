package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
)

func TestMatchAllThresholdIsStrict(t *testing.T) {
	src := []string{"abcdefghij"}

	got := MatchAll(src, []string{"abcxxxxxxx"}, DefaultThreshold)
	assert.Empty(t, got, "a score equal to the threshold must not match")

	got = MatchAll(src, []string{"abcdxxxxxx"}, DefaultThreshold)
	assert.Equal(t, model.MatchMapping{0: 0}, got)
}

func TestMatchAllPicksBestAndEarliestOnTie(t *testing.T) {
	t.Run("best score wins", func(t *testing.T) {
		got := MatchAll([]string{"abc"}, []string{"abx", "zzz", "abc"}, DefaultThreshold)
		assert.Equal(t, model.MatchMapping{0: 2}, got)
	})
	t.Run("earliest of equal scores", func(t *testing.T) {
		got := MatchAll([]string{"abc"}, []string{"abx", "aby"}, DefaultThreshold)
		assert.Equal(t, model.MatchMapping{0: 0}, got)
	})
}

func TestMatchAllSkipsEmptyAndUnmatched(t *testing.T) {
	got := MatchAll([]string{"", "abc", "xyz"}, []string{"", "abc"}, DefaultThreshold)
	assert.Equal(t, model.MatchMapping{1: 1}, got)

	assert.Empty(t, MatchAll([]string{"abc"}, nil, DefaultThreshold))
	assert.Empty(t, MatchAll(nil, []string{"abc"}, DefaultThreshold))
}

func TestMatchAllDeterministic(t *testing.T) {
	src := []string{"ourglowlip11mellow", "ourglowlip12rose", "tint02coral", "unknown"}
	tgt := []string{"ourglowlip12rose", "ourglowlip11mellow", "tint02coral", "tint03"}

	first := MatchAll(src, tgt, DefaultThreshold)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MatchAll(src, tgt, DefaultThreshold))
	}
	assert.Equal(t, 1, first[0])
	assert.Equal(t, 0, first[1])
	assert.Equal(t, 2, first[2])
}

func TestMatchScoredKeepsScore(t *testing.T) {
	got := MatchScored([]string{"abcd"}, []string{"bcde"}, DefaultThreshold)
	require.Contains(t, got, 0)
	assert.Equal(t, Match{Target: 0, Score: 0.75}, got[0])
}
