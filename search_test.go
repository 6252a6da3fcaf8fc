package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var researchers = []User{
	{ID: 1, FirstName: "Ivan", LastName: "Ivanov", Area: "Physics"},
	{ID: 2, FirstName: "Olga", LastName: "Smirnov", Area: "Biology"},
	{ID: 3, FirstName: "Petr", LastName: "Physov", Area: "Mathematics"},
}

func ids(users []User) []int {
	res := make([]int, len(users))
	for i, u := range users {
		res[i] = u.ID
	}
	return res
}

func TestFilterUsers(t *testing.T) {
	tts := []struct {
		query    string
		expected []int
	}{
		{query: "", expected: []int{1, 2, 3}},
		{query: "phys", expected: []int{1, 3}},
		{query: "PHYSICS", expected: []int{1}},
		{query: "biology", expected: []int{2}},
		// last name and area are concatenated without separator
		{query: "ivanovphys", expected: []int{1}},
		{query: "ivanov phys", expected: []int{}},
		{query: "chemistry", expected: []int{}},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.expected, ids(FilterUsers(researchers, tt.query)), tt.query)
	}
}

func TestFilterUsers_LastNameAndArea(t *testing.T) {
	users := []User{
		{LastName: "Ivanov", Area: "Physics"},
		{LastName: "Smirnov", Area: "Biology"},
	}

	res := FilterUsers(users, "phys")
	if assert.Len(t, res, 1) {
		assert.Equal(t, "Ivanov", res[0].LastName)
	}
}

func TestArticlesOf(t *testing.T) {
	articles := []Article{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	user := User{Articles: []int{4, 2, 9}}

	res := ArticlesOf(articles, user)
	assert.Equal(t, []Article{{ID: 2}, {ID: 4}}, res)
	assert.Empty(t, ArticlesOf(articles, User{}))
}

func TestTopLiked(t *testing.T) {
	articles := []Article{
		{ID: 1, Likes: 2},
		{ID: 2, Likes: 7},
		{ID: 3, Likes: 0},
		{ID: 4, Likes: 2},
		{ID: 5, Likes: 9},
		{ID: 6, Likes: 1},
	}

	res := TopLiked(articles, 4)
	got := make([]int, len(res))
	for i, a := range res {
		got[i] = a.ID
	}
	assert.Equal(t, []int{5, 2, 1, 4}, got)

	// The input order is untouched.
	assert.Equal(t, 1, articles[0].ID)
	assert.Len(t, TopLiked(articles[:2], 4), 2)
}

func TestFind(t *testing.T) {
	assert.Equal(t, 1, FindUser(researchers, 2))
	assert.Equal(t, -1, FindUser(researchers, 42))
	assert.Equal(t, 0, FindArticle([]Article{{ID: 7}}, 7))
	assert.Equal(t, -1, FindArticle(nil, 7))
}
