package app

import (
	"time"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/i18n"
)

// Alert keys raised by the controller. Each is a translation key.
const (
	AlertLikeLoginRequired = "like_err"
	AlertLikeFailed        = "like_sync_err"
	AlertLoginRejected     = "login_err"
	AlertConnection        = "conn_err"
	AlertRegisterRejected  = "reg_err"
	AlertServer            = "srv_err"
	AlertArticleFailed     = "art_err"
	AlertArticleInvalid    = "art_invalid"
	AlertForbidden         = "forbidden"
)

// State is everything one running client knows. It is stored between
// requests, encoded as JSON.
type State struct {
	// User is the logged in user, nil when anonymous.
	User *scholar.User `json:"user,omitempty"`

	Articles []scholar.Article `json:"articles"`
	Users    []scholar.User    `json:"users"`
	Started  bool              `json:"started"`

	View   View          `json:"view"`
	Lang   i18n.Language `json:"lang"`
	Search string        `json:"search"`

	// Target is the user shown by the profile view. It is a copy: edits of
	// Users do not reach it until it is copied again.
	Target *scholar.User `json:"target,omitempty"`

	// Loading is set while a registration is in flight, since LoadingSince.
	Loading      bool      `json:"loading"`
	LoadingSince time.Time `json:"loadingSince"`

	ShowContacts bool `json:"showContacts"`
	AddFormOpen  bool `json:"addFormOpen"`

	// Alert is a translation key shown once on the next render.
	Alert string `json:"alert,omitempty"`
}

// NewState returns the state of a client that has not fetched anything yet.
func NewState(lang i18n.Language) *State {
	return &State{
		View: ViewHome,
		Lang: lang,
	}
}

func (s *State) IsAdmin() bool {
	return s.User != nil && s.User.Role.IsAdmin()
}

// StaleLoading is how long a registration may stay in flight. Past it, the
// flag is left over from a request that never finished, for instance across
// a restart, and no longer blocks a new registration.
const StaleLoading = 5 * time.Minute

func (s *State) registering(now time.Time) bool {
	return s.Loading && now.Sub(s.LoadingSince) < StaleLoading
}

func (s *State) resetToggles() {
	s.ShowContacts = false
	s.AddFormOpen = false
}

func (s *State) setView(v View) {
	if s.View == ViewProfile && v != ViewProfile {
		s.resetToggles()
	}
	s.View = v
}

// inspect makes a copy of u the profile target and shows it.
func (s *State) inspect(u scholar.User) {
	if s.Target == nil || s.Target.ID != u.ID {
		s.resetToggles()
	}
	target := u.Clone()
	s.Target = &target
	s.setView(ViewProfile)
}

// addLikes moves the like counter of the article by delta.
func (s *State) addLikes(articleID, delta int) {
	if i := scholar.FindArticle(s.Articles, articleID); i >= 0 {
		s.Articles[i].Likes += delta
	}
}

func likeDelta(liked bool) int {
	if liked {
		return 1
	}
	return -1
}
