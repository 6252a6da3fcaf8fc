package app

import (
	"fmt"
	"time"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/i18n"
)

// FeedSize is the number of articles of the home feed.
const FeedSize = 4

// StatusOption is an academic status of the registration form: the value
// sent to the backend and its translation key.
type StatusOption struct {
	Value string
	Key   string
}

var AcademicStatuses = []StatusOption{
	{Value: "Student", Key: "st_student"},
	{Value: "PhD Student", Key: "st_phd"},
	{Value: "Researcher", Key: "st_researcher"},
	{Value: "Professor", Key: "st_prof"},
}

// ArticleCard is an article as shown in a list.
type ArticleCard struct {
	ID        int
	Title     string
	URL       string
	Area      string
	Authors   string
	Citations int
	Likes     int
	Liked     bool
}

func NewArticleCard(a scholar.Article, session *scholar.User) ArticleCard {
	return ArticleCard{
		ID:        a.ID,
		Title:     a.Title,
		URL:       a.URL,
		Area:      a.Area,
		Authors:   a.Authors.String(),
		Citations: a.Citations,
		Likes:     a.Likes,
		Liked:     session != nil && session.Likes(a.ID),
	}
}

func articleCards(articles []scholar.Article, session *scholar.User) []ArticleCard {
	cards := make([]ArticleCard, len(articles))
	for i, a := range articles {
		cards[i] = NewArticleCard(a, session)
	}
	return cards
}

type HomeView struct {
	Anonymous bool
	Feed      []ArticleCard
	Users     int
	Articles  int
}

func NewHomeView(st *State) HomeView {
	return HomeView{
		Anonymous: st.User == nil,
		Feed:      articleCards(scholar.TopLiked(st.Articles, FeedSize), st.User),
		Users:     len(st.Users),
		Articles:  len(st.Articles),
	}
}

// UserCard is a search result.
type UserCard struct {
	ID       int
	Initials string
	Name     string
	Subtitle string
	Admin    bool
}

type SearchView struct {
	Query   string
	Results []UserCard
}

// NewSearchView filters the user list locally. The backend is not asked.
func NewSearchView(st *State) SearchView {
	users := scholar.FilterUsers(st.Users, st.Search)

	results := make([]UserCard, len(users))
	for i, u := range users {
		subtitle := u.AcademicStatus
		if subtitle == "" {
			subtitle = u.Area
		}

		name := u.LastName
		if first := []rune(u.FirstName); len(first) > 0 {
			name = fmt.Sprintf("%s %c.", u.LastName, first[0])
		}

		results[i] = UserCard{
			ID:       u.ID,
			Initials: u.Initials(),
			Name:     name,
			Subtitle: subtitle,
			Admin:    u.Role.IsAdmin(),
		}
	}

	return SearchView{
		Query:   st.Search,
		Results: results,
	}
}

// ProfileView is the profile of the inspected user, derived from the
// current lists on every render.
type ProfileView struct {
	User     scholar.User
	Initials string
	Name     string

	HIndex       int
	Publications []ArticleCard

	IsMe              bool
	ShowEmail         bool
	ShowContactToggle bool
	ContactsShown     bool

	CanAddArticle bool
	AddFormOpen   bool

	Recommendations []scholar.Recommendation
}

func NewProfileView(st *State) ProfileView {
	target := *st.Target
	articles := scholar.ArticlesOf(st.Articles, target)

	isMe := st.User != nil && st.User.ID == target.ID
	admin := st.IsAdmin()

	v := ProfileView{
		User:     target,
		Initials: target.Initials(),
		Name:     target.FullName(),

		HIndex:       scholar.ArticleHIndex(articles),
		Publications: articleCards(articles, st.User),

		IsMe:              isMe,
		ShowEmail:         isMe || st.ShowContacts,
		ShowContactToggle: !isMe,
		ContactsShown:     st.ShowContacts,

		CanAddArticle: admin,
		AddFormOpen:   admin && st.AddFormOpen,
	}
	if isMe && len(st.User.Recommendations) > 0 {
		v.Recommendations = st.User.Recommendations
	}
	return v
}

// Page is what the layout renders: the header data plus the model of the
// active view. Exactly one of the view models is set.
type Page struct {
	View      View
	Back      View
	Lang      i18n.Language
	Languages []i18n.Option
	User      *scholar.User
	Alert     string
	Loading   bool

	Home    *HomeView
	Search  *SearchView
	Profile *ProfileView
}

func NewPage(st *State) Page {
	p := Page{
		View:      st.View,
		Back:      st.View.Back(),
		Lang:      st.Lang,
		Languages: i18n.Languages(),
		User:      st.User,
		Alert:     st.Alert,
		Loading:   st.registering(time.Now()),
	}

	switch st.View {
	case ViewHome:
		home := NewHomeView(st)
		p.Home = &home
	case ViewSearch:
		search := NewSearchView(st)
		p.Search = &search
	case ViewProfile:
		if st.Target == nil {
			p.View = ViewHome
			p.Back = ViewHome
			home := NewHomeView(st)
			p.Home = &home
			break
		}
		profile := NewProfileView(st)
		p.Profile = &profile
	case ViewLogin, ViewRegister:
	}
	return p
}
