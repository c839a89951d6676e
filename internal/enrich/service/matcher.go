package service

import "github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"

// DefaultThreshold — минимальная схожесть; равенство порогу не засчитывается.
const DefaultThreshold = 0.3

// Match is one accepted source -> target pair.
type Match struct {
	Target int
	Score  float64
}

// MatchAll maps every source index to the best target index whose Ratio is
// strictly above threshold. The scan keeps the earliest target among equal
// scores. Empty source names never match, even against a catalog name that
// also cleans to empty (which would otherwise score 1.0).
func MatchAll(source, target []string, threshold float64) model.MatchMapping {
	out := make(model.MatchMapping)
	for i, m := range MatchScored(source, target, threshold) {
		out[i] = m.Target
	}
	return out
}

// MatchScored is MatchAll keeping the winning score of each pair.
func MatchScored(source, target []string, threshold float64) map[int]Match {
	out := make(map[int]Match)
	for i, src := range source {
		if src == "" {
			continue
		}
		best, bestScore := -1, 0.0
		for j, tgt := range target {
			s := Ratio(src, tgt)
			if s > threshold && s > bestScore {
				best, bestScore = j, s
			}
		}
		if best >= 0 {
			out[i] = Match{Target: best, Score: bestScore}
		}
	}
	return out
}
