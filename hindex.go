package scholar

import (
	"sort"
)

// HIndex returns the largest rank r such that the r-th largest citation
// count is at least r, or 0 when there is none. citations is not modified.
func HIndex(citations []int) int {
	sorted := append([]int(nil), citations...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	h := 0
	for i, c := range sorted {
		if c < i+1 {
			break
		}
		h = i + 1
	}
	return h
}

// ArticleHIndex computes the h-index of a set of articles from their
// current citation counts.
func ArticleHIndex(articles []Article) int {
	citations := make([]int, len(articles))
	for i, a := range articles {
		citations[i] = a.Citations
	}
	return HIndex(citations)
}
