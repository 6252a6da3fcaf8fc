package scholar

import (
	"encoding/json"
	"strings"
)

type Article struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Citations int     `json:"citations"`
	Area      string  `json:"area"`
	Authors   Authors `json:"authors"`
	Likes     int     `json:"likes"`
}

// Authors is the author list of an article. The backend sends it either as
// a list of names or as a single string.
type Authors []string

func (a *Authors) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*a = nil
	} else {
		*a = Authors{s}
	}
	return nil
}

func (a Authors) String() string {
	return strings.Join(a, ", ")
}

// NewArticle is the body of an add-article request. Authors is a plain
// string: the profile the article is added to.
type NewArticle struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Citations int    `json:"citations"`
	Area      string `json:"area"`
	Authors   string `json:"authors"`
	UserID    int    `json:"userId"`
}
