// Package lcs measures how alike two strings are by their longest common
// subsequence, to suggest the intended word for a misspelled one.
package lcs

import (
	"slices"
)

// minSimilarity is the least [Similarity] for [Closest] to suggest a word.
const minSimilarity = 0.5

// Length returns the length in bytes of the longest common subsequence of a
// and b.
func Length(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}

	// Two rows of the dynamic programming table are enough.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Similarity returns a score between 0 and 1. Identical strings score 1 and
// strings without any common byte score 0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	return 2 * float64(Length(a, b)) / float64(len(a)+len(b))
}

// Closest returns the candidate most similar to s. It returns false if no
// candidate is similar enough to be a likely intent. Ties go to the candidate
// sharing the longer prefix with s, then to the earlier candidate.
func Closest(s string, candidates []string) (string, bool) {
	best := -1
	var bestScore float64
	var bestPrefix int
	for i, c := range candidates {
		score := Similarity(s, c)
		if score < minSimilarity {
			continue
		}
		prefix := len(CommonPrefix([]string{s, c}))
		if best == -1 || score > bestScore || score == bestScore && prefix > bestPrefix {
			best, bestScore, bestPrefix = i, score, prefix
		}
	}
	if best == -1 {
		return "", false
	}
	return candidates[best], true
}

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	// This implementation is based on os.path.commonprefix in Python.
	// https://github.com/python/cpython/blob/ed24702bd0f9925908ce48584c31dfad732208b2/Lib/genericpath.py#L105
	if len(ss) == 0 {
		return ""
	}

	// The longest common prefix of the lexicographically smallest and largest
	// strings is the longest common prefix of them all.
	lo := slices.Min(ss)
	hi := slices.Max(ss)

	for i := range []byte(lo) {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}

	// lo itself is the longest common prefix.
	return lo
}
