package service

// Ratio is the longest-matching-block similarity of two strings compared by
// code point: 2*M/T where M is the number of characters in the recursive
// longest-common-block decomposition and T the combined length. It follows
// the classic sequence matcher exactly, including the rule that elements of
// b occurring more than 1+len(b)/100 times are dropped from the index when
// len(b) >= 200.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	m := newSeqMatcher(ra, rb)
	return 2.0 * float64(m.matchedChars()) / float64(total)
}

type seqMatcher struct {
	a, b []rune
	b2j  map[rune][]int
}

const autojunkMinLen = 200

func newSeqMatcher(a, b []rune) *seqMatcher {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	if n := len(b); n >= autojunkMinLen {
		ntest := n/100 + 1
		for r, idxs := range b2j {
			if len(idxs) > ntest {
				delete(b2j, r)
			}
		}
	}
	return &seqMatcher{a: a, b: b, b2j: b2j}
}

// longest finds the longest block a[i:i+k] == b[j:j+k] inside the given
// window; among equal lengths the one starting earliest in a, then in b.
func (m *seqMatcher) longest(alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	// popular elements are not in b2j but still extend a block
	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestk = besti-1, bestj-1, bestk+1
	}
	for besti+bestk < ahi && bestj+bestk < bhi && m.a[besti+bestk] == m.b[bestj+bestk] {
		bestk++
	}
	return besti, bestj, bestk
}

func (m *seqMatcher) matchedChars() int {
	type window struct{ alo, ahi, blo, bhi int }
	queue := []window{{0, len(m.a), 0, len(m.b)}}
	total := 0
	for len(queue) > 0 {
		w := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		i, j, k := m.longest(w.alo, w.ahi, w.blo, w.bhi)
		if k == 0 {
			continue
		}
		total += k
		if w.alo < i && w.blo < j {
			queue = append(queue, window{w.alo, i, w.blo, j})
		}
		if i+k < w.ahi && j+k < w.bhi {
			queue = append(queue, window{i + k, w.ahi, j + k, w.bhi})
		}
	}
	return total
}
