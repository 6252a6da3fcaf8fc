package scholar

import (
	"sort"
	"strings"
)

// FilterUsers keeps the users whose last name followed by their area
// contains query, ignoring case. An empty query keeps everyone.
func FilterUsers(users []User, query string) []User {
	q := strings.ToLower(query)

	res := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.LastName+u.Area), q) {
			res = append(res, u)
		}
	}
	return res
}

// ArticlesOf returns the articles owned by user, in the order of articles.
func ArticlesOf(articles []Article, user User) []Article {
	var res []Article
	for _, a := range articles {
		if user.Owns(a.ID) {
			res = append(res, a)
		}
	}
	return res
}

// TopLiked returns at most n articles, most liked first. Ties keep their
// original order.
func TopLiked(articles []Article, n int) []Article {
	sorted := append([]Article(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FindUser returns the index of the user with the given id, or -1.
func FindUser(users []User, id int) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindArticle returns the index of the article with the given id, or -1.
func FindArticle(articles []Article, id int) int {
	for i := range articles {
		if articles[i].ID == id {
			return i
		}
	}
	return -1
}
