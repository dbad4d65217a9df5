// Package fuzzy implements the title normalization and SequenceMatcher-style
// ratio matching the Capability Transfer Engine's name mapper (§4.8) uses to
// resolve benchmark occupation titles to taxonomy SOC codes. No fuzzy-string
// library appears in the retrieved reference corpus; see DESIGN.md.
package fuzzy

import (
	"regexp"
	"sort"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiWS   = regexp.MustCompile(`\s+`)
)

// CleanTitle lowercases, replaces "&" with " and ", strips non-alphanumeric
// characters, and collapses whitespace — exactly the normalization spec §4.8
// names for the name-mapping step.
func CleanTitle(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlnum.ReplaceAllString(s, " ")
	s = multiWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// matcher implements the Ratcliff/Obershelp longest-matching-block algorithm
// used by Python's difflib.SequenceMatcher, operating over runes.
type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b string) *matcher {
	m := &matcher{a: []rune(a), b: []rune(b)}
	m.b2j = make(map[rune][]int)
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

type block struct{ i, j, size int }

func (m *matcher) findLongestMatch(alo, ahi, blo, bhi int) block {
	besti, bestj, bestsize := alo, blo, 0
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return block{besti, bestj, bestsize}
}

func (m *matcher) matchingBlocks() []block {
	var queue [][4]int
	queue = append(queue, [4]int{0, len(m.a), 0, len(m.b)})
	var blocks []block
	for len(queue) > 0 {
		q := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		alo, ahi, blo, bhi := q[0], q[1], q[2], q[3]
		mb := m.findLongestMatch(alo, ahi, blo, bhi)
		if mb.size > 0 {
			blocks = append(blocks, mb)
			if alo < mb.i && blo < mb.j {
				queue = append(queue, [4]int{alo, mb.i, blo, mb.j})
			}
			if mb.i+mb.size < ahi && mb.j+mb.size < bhi {
				queue = append(queue, [4]int{mb.i + mb.size, ahi, mb.j + mb.size, bhi})
			}
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].i != blocks[j].i {
			return blocks[i].i < blocks[j].i
		}
		return blocks[i].j < blocks[j].j
	})
	return blocks
}

// Ratio computes the SequenceMatcher similarity ratio 2*M/T, where M is the
// total length of matching blocks and T is the combined length of a and b.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	m := newMatcher(a, b)
	var matches int
	for _, blk := range m.matchingBlocks() {
		matches += blk.size
	}
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}
	return 2 * float64(matches) / float64(total)
}

// Candidate pairs a taxonomy title with its ratio against the query, used by
// GetCloseMatches.
type Candidate struct {
	Value string
	Ratio float64
}

// GetCloseMatches returns the candidates scoring >= cutoff against target,
// sorted by descending ratio (ties by original order), mirroring
// difflib.get_close_matches but returning all qualifying matches rather than
// truncating to n=3 — the name mapper only needs the best one.
func GetCloseMatches(target string, candidates []string, cutoff float64) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		r := Ratio(target, c)
		if r >= cutoff {
			out = append(out, Candidate{c, r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio > out[j].Ratio })
	return out
}
