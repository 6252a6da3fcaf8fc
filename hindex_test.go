package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHIndex(t *testing.T) {
	tts := []struct {
		name      string
		citations []int
		expected  int
	}{
		{name: "empty", citations: nil, expected: 0},
		{name: "no citation", citations: []int{0, 0, 0}, expected: 0},
		{name: "all ones", citations: []int{1, 1, 1}, expected: 1},
		{name: "sorted", citations: []int{10, 8, 5, 4, 3}, expected: 4},
		{name: "unsorted", citations: []int{3, 10, 4, 8, 5}, expected: 4},
		{name: "single highly cited", citations: []int{100}, expected: 1},
		{name: "exact", citations: []int{3, 3, 3}, expected: 3},
		{name: "long tail", citations: []int{25, 8, 5, 3, 3, 1, 0}, expected: 3},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.expected, HIndex(tt.citations), tt.name)
	}
}

func TestHIndex_DoesNotModifyInput(t *testing.T) {
	citations := []int{1, 5, 3}
	HIndex(citations)
	assert.Equal(t, []int{1, 5, 3}, citations)
}

func TestArticleHIndex(t *testing.T) {
	articles := []Article{
		{ID: 1, Citations: 10},
		{ID: 2, Citations: 8},
		{ID: 3, Citations: 5},
		{ID: 4, Citations: 4},
		{ID: 5, Citations: 3},
	}
	assert.Equal(t, 4, ArticleHIndex(articles))

	// Citation counts can change under a profile: the index follows.
	articles[4].Citations = 5
	assert.Equal(t, 5, ArticleHIndex(articles))

	assert.Equal(t, 0, ArticleHIndex(nil))
}
