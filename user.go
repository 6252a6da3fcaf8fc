package scholar

import (
	"strings"
	"unicode/utf8"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User is a researcher as served by the backend. The same shape is used for
// the session user, which additionally carries liked articles and
// recommendations.
type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age"`
	City           string `json:"city"`
	AcademicStatus string `json:"academicStatus"`
	Area           string `json:"area"`
	Role           Role   `json:"role"`

	Articles      []int `json:"articles"`
	LikedArticles []int `json:"likedArticles"`

	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// Recommendation is a colleague suggestion computed by the backend at login.
type Recommendation struct {
	Name   string `json:"name"`
	Area   string `json:"area"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) Initials() string {
	return firstRune(u.FirstName) + firstRune(u.LastName)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func (u *User) Owns(articleID int) bool {
	return contains(u.Articles, articleID)
}

func (u *User) Likes(articleID int) bool {
	return contains(u.LikedArticles, articleID)
}

// ToggleLike flips the membership of articleID in the liked articles and
// returns whether the article is now liked. The list never holds duplicates.
func (u *User) ToggleLike(articleID int) bool {
	liked := u.LikedArticles[:0:0]
	found := false
	for _, id := range u.LikedArticles {
		if id == articleID {
			found = true
			continue
		}
		liked = append(liked, id)
	}

	if !found {
		liked = append(liked, articleID)
	}
	u.LikedArticles = liked
	return !found
}

// Clone returns a copy that shares no slice with u.
func (u User) Clone() User {
	u.Articles = append([]int(nil), u.Articles...)
	u.LikedArticles = append([]int(nil), u.LikedArticles...)
	u.Recommendations = append([]Recommendation(nil), u.Recommendations...)
	return u
}

func contains(ids []int, id int) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of a sign up request.
type Registration struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age"`
	City           string `json:"city"`
	AcademicStatus string `json:"academicStatus"`
	Area           string `json:"area,omitempty"`
	Role           Role   `json:"role"`
}
