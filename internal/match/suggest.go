package match

import (
	"slices"
	"strings"
)

// DefaultThreshold is the minimum similarity for a key to be suggested.
const DefaultThreshold = 0.6

// Candidate is a key scored against the requested name.
type Candidate struct {
	Key   string
	Score float64
}

// CandidateList is sorted by descending score, ties broken by key.
type CandidateList []Candidate

// Rank scores every key against name, case-insensitively, and sorts the result.
// Keys equal to name are skipped.
func Rank(name string, keys []string) CandidateList {
	folded := strings.ToLower(name)

	out := make(CandidateList, 0, len(keys))
	for _, key := range keys {
		if key == name {
			continue
		}

		out = append(out, Candidate{Key: key, Score: Similarity(folded, strings.ToLower(key))})
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}

		return strings.Compare(a.Key, b.Key)
	})

	return out
}

// AboveThreshold returns the leading candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	for i, cand := range c {
		if cand.Score < threshold {
			return c[:i]
		}
	}

	return c
}

// Best returns the top candidate, if any.
func (c CandidateList) Best() (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}

	return c[0], true
}

// Suggest returns the key closest to name when it scores at least DefaultThreshold.
func Suggest(name string, keys []string) (string, bool) {
	best, ok := Rank(name, keys).AboveThreshold(DefaultThreshold).Best()

	return best.Key, ok
}
