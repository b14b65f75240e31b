// Package match implements the edit-distance fuzzy matcher shared by the
// formalization engine and the segment parser. Both use it to snap a noisy
// recognizer token to the closest known vocabulary entry.
//
// Similarity is normalized Levenshtein: 1 − distance ∕ max(rune length).
// Below-threshold lookups return the input unchanged so callers never have
// to special-case a miss.
package match

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// DefaultThreshold is the similarity floor used by the formalization engine.
const DefaultThreshold = 0.75

// Similarity returns the normalized Levenshtein similarity of a and b in
// [0, 1], where 1 means identical. Two empty strings are defined to be
// identical. Lengths are counted in runes so Tamil text scores correctly.
func Similarity(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	d := matchr.Levenshtein(a, b)
	return 1 - float64(d)/float64(longest)
}

// FindClosest scans entries in declaration order and returns the entry with
// the highest similarity to word together with its score. When the best
// score is below threshold the original word is returned (the score is still
// reported). Ties resolve to the first-encountered entry; that ordering is
// part of the contract and must stay stable.
func FindClosest(word string, entries []string, threshold float64) (string, float64) {
	best := ""
	bestScore := -1.0
	for _, e := range entries {
		if s := Similarity(word, e); s > bestScore {
			best, bestScore = e, s
		}
	}
	if bestScore < 0 {
		return word, 0
	}
	if bestScore < threshold {
		return word, bestScore
	}
	return best, bestScore
}

type indexEntry struct {
	word string
	pos  int // declaration position, used as the tie-break
}

// Index is a prepared fuzzy-lookup structure over a fixed entry list. It
// buckets entries by rune length so a lookup only compares against entries
// whose length could still clear the similarity threshold, which removes
// most of the O(lexicon × len²) cost of a naive scan.
//
// An Index is read-only after construction and safe for concurrent use.
type Index struct {
	buckets map[int][]indexEntry
	lengths []int
}

// NewIndex prepares an [Index] over entries. Entry order is preserved for
// tie-breaking, matching [FindClosest] exactly.
func NewIndex(entries []string) *Index {
	ix := &Index{buckets: make(map[int][]indexEntry)}
	for i, e := range entries {
		n := utf8.RuneCountInString(e)
		if _, seen := ix.buckets[n]; !seen {
			ix.lengths = append(ix.lengths, n)
		}
		ix.buckets[n] = append(ix.buckets[n], indexEntry{word: e, pos: i})
	}
	return ix
}

// Closest returns the indexed entry most similar to word, or word itself
// when no entry reaches threshold. For any lookup that clears the threshold
// the result is identical to running [FindClosest] over the original entry
// list; for misses the reported best-effort score may come from a smaller
// candidate set because non-qualifying buckets are skipped.
func (ix *Index) Closest(word string, threshold float64) (string, float64) {
	n := utf8.RuneCountInString(word)

	best := ""
	bestScore := -1.0
	bestPos := -1

	for _, m := range ix.lengths {
		// similarity ≥ threshold requires lev ≤ (1−threshold)·max(n,m),
		// and lev ≥ |n−m| always, so buckets whose length difference
		// alone sinks the score cannot qualify.
		longest := n
		if m > longest {
			longest = m
		}
		diff := n - m
		if diff < 0 {
			diff = -diff
		}
		if float64(diff) > (1-threshold)*float64(longest) {
			continue
		}
		for _, e := range ix.buckets[m] {
			s := Similarity(word, e.word)
			if s > bestScore || (s == bestScore && e.pos < bestPos) {
				best, bestScore, bestPos = e.word, s, e.pos
			}
		}
	}

	if bestScore < 0 {
		return word, 0
	}
	if bestScore < threshold {
		return word, bestScore
	}
	return best, bestScore
}
