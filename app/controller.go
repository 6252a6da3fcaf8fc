// Package app holds the client logic: the state of one running client and
// the operations the pages trigger on it.
package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/errors"
	"github.com/sirius-scholar/scholar/i18n"
	"github.com/sirius-scholar/scholar/log"
)

// Session is the state of one client. Update applies fn to the state and
// saves it, unless fn returns an error. Updates of one session never run
// concurrently.
type Session interface {
	Update(ctx context.Context, fn func(*State) error) error
}

// Controller runs the operations of the client. Backend calls are made
// outside of Session.Update so that a slow backend does not block the
// rendering of the session.
//
// Calls that change something on the backend are detached from the
// cancellation of ctx: once sent, their outcome is always applied to the
// session, even when the browser gave up on the request.
type Controller struct {
	api    scholar.API
	logger log.Logger
	now    func() time.Time
}

func NewController(api scholar.API, logger log.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// Start fetches the article and user lists the first time it is called on
// a session. Both lists are only kept when both fetches succeed. Failures
// are logged and never retried.
func (c *Controller) Start(ctx context.Context, s Session) error {
	first := false
	err := s.Update(ctx, func(st *State) error {
		first = !st.Started
		st.Started = true
		return nil
	})
	if err != nil || !first {
		return err
	}

	articles, err := c.api.Articles(ctx)
	if err != nil {
		c.logger.Errorf("could not fetch articles: %v", err)
		return nil
	}

	users, err := c.api.Users(ctx)
	if err != nil {
		c.logger.Errorf("could not fetch users: %v", err)
		return nil
	}

	return s.Update(ctx, func(st *State) error {
		st.Articles = articles
		st.Users = users
		return nil
	})
}

// Navigate shows v. The profile view needs a target and falls back to home
// without one.
func (c *Controller) Navigate(ctx context.Context, s Session, v View) error {
	return s.Update(ctx, func(st *State) error {
		if v == ViewProfile && st.Target == nil {
			v = ViewHome
		}
		st.setView(v)
		return nil
	})
}

// Back follows the back link of the current view.
func (c *Controller) Back(ctx context.Context, s Session) error {
	return s.Update(ctx, func(st *State) error {
		st.setView(st.View.Back())
		return nil
	})
}

func (c *Controller) SetLanguage(ctx context.Context, s Session, lang i18n.Language) error {
	if _, ok := i18n.ParseLanguage(string(lang)); !ok {
		return errors.New("unknown language "+string(lang), errors.BadRequest())
	}

	return s.Update(ctx, func(st *State) error {
		st.Lang = lang
		return nil
	})
}

// SetSearch stores the filter of the search view and shows it.
func (c *Controller) SetSearch(ctx context.Context, s Session, query string) error {
	return s.Update(ctx, func(st *State) error {
		st.Search = query
		st.setView(ViewSearch)
		return nil
	})
}

// SelectUser shows the profile of a user of the list. The session user is
// not changed.
func (c *Controller) SelectUser(ctx context.Context, s Session, userID int) error {
	found := true
	err := s.Update(ctx, func(st *State) error {
		i := scholar.FindUser(st.Users, userID)
		if i < 0 {
			found = false
			return nil
		}
		st.inspect(st.Users[i])
		return nil
	})
	if err != nil {
		return err
	}

	if !found {
		return errors.New("no user with id "+strconv.Itoa(userID), errors.NotFound())
	}
	return nil
}

// OpenMyProfile shows the profile of the session user.
func (c *Controller) OpenMyProfile(ctx context.Context, s Session) error {
	return s.Update(ctx, func(st *State) error {
		if st.User == nil {
			st.setView(ViewLogin)
			return nil
		}
		st.inspect(*st.User)
		return nil
	})
}

// Like toggles the like of the session user on an article. The change is
// applied locally first, then sent to the backend. If the backend refuses
// it, the change is reverted, provided the session still holds it.
func (c *Controller) Like(ctx context.Context, s Session, articleID int) error {
	var (
		anonymous bool
		userID    int
		liked     bool
	)
	err := s.Update(ctx, func(st *State) error {
		if st.User == nil {
			anonymous = true
			st.Alert = AlertLikeLoginRequired
			return nil
		}

		userID = st.User.ID
		liked = st.User.ToggleLike(articleID)
		st.addLikes(articleID, likeDelta(liked))
		return nil
	})
	if err != nil {
		return err
	}
	if anonymous {
		return errors.New("login required to like", errors.Unauthorized())
	}

	callErr := c.api.Like(context.WithoutCancel(ctx), userID, articleID)
	if callErr == nil {
		return nil
	}

	c.logger.Errorf("could not sync like of article %d by user %d: %v", articleID, userID, callErr)
	return s.Update(context.WithoutCancel(ctx), func(st *State) error {
		st.Alert = AlertLikeFailed

		// A toggle made since then already moved the counter back.
		if st.User != nil && st.User.ID == userID && st.User.Likes(articleID) != liked {
			return nil
		}

		if st.User != nil && st.User.ID == userID {
			st.User.ToggleLike(articleID)
		}
		st.addLikes(articleID, -likeDelta(liked))
		return nil
	})
}

// Login authenticates against the backend. Admins land on the home page,
// other users on their own profile.
func (c *Controller) Login(ctx context.Context, s Session, creds scholar.Credentials) error {
	user, callErr := c.api.Login(ctx, creds)
	if callErr != nil {
		c.logger.Printf("login of %s failed: %v", creds.Email, callErr)
	}

	return s.Update(ctx, func(st *State) error {
		if callErr != nil {
			st.Alert = AlertLoginRejected
			if errors.IsUnavailable(callErr) {
				st.Alert = AlertConnection
			}
			return nil
		}

		st.User = &user
		if user.Role.IsAdmin() {
			st.setView(ViewHome)
		} else {
			st.inspect(user)
		}
		return nil
	})
}

// Register signs up a new user and logs them in. Only one registration per
// session can be in flight; a flag older than StaleLoading does not count.
func (c *Controller) Register(ctx context.Context, s Session, r scholar.Registration, isAdmin bool) error {
	r.Role = scholar.RoleUser
	if isAdmin {
		r.Role = scholar.RoleAdmin
	}

	started := c.now()
	busy := false
	err := s.Update(ctx, func(st *State) error {
		if busy = st.registering(started); busy {
			return nil
		}
		st.Loading = true
		st.LoadingSince = started
		return nil
	})
	if err != nil {
		return err
	}
	if busy {
		return errors.New("registration already in progress", errors.Conflict())
	}

	user, callErr := c.api.Register(context.WithoutCancel(ctx), r)
	if callErr != nil {
		c.logger.Printf("registration of %s failed: %v", r.Email, callErr)
	}

	return s.Update(context.WithoutCancel(ctx), func(st *State) error {
		// A registration started after this one went stale owns the flag.
		if st.LoadingSince.Equal(started) {
			st.Loading = false
		}
		if callErr != nil {
			st.Alert = AlertRegisterRejected
			if errors.IsUnavailable(callErr) {
				st.Alert = AlertServer
			}
			return nil
		}

		st.Users = append(st.Users, user)
		st.User = &user
		st.inspect(user)
		return nil
	})
}

// Logout forgets the session user. The backend is not told.
func (c *Controller) Logout(ctx context.Context, s Session) error {
	return s.Update(ctx, func(st *State) error {
		st.User = nil
		st.setView(ViewHome)
		st.resetToggles()
		return nil
	})
}

// AddArticle creates an article owned by userID. The owner's article list
// is updated in place, and the profile target is refreshed when it shows
// the owner.
func (c *Controller) AddArticle(ctx context.Context, s Session, userID int, a scholar.NewArticle) error {
	a.UserID = userID
	article, callErr := c.api.CreateArticle(context.WithoutCancel(ctx), a)
	if callErr != nil {
		c.logger.Errorf("could not add article %q to user %d: %v", a.Title, userID, callErr)
	}

	return s.Update(context.WithoutCancel(ctx), func(st *State) error {
		if callErr != nil {
			st.Alert = AlertArticleFailed
			return nil
		}

		st.Articles = append(st.Articles, article)

		i := scholar.FindUser(st.Users, userID)
		if i < 0 {
			return nil
		}
		st.Users[i].Articles = append(st.Users[i].Articles, article.ID)
		if st.Target != nil && st.Target.ID == userID {
			target := st.Users[i].Clone()
			st.Target = &target
		}
		return nil
	})
}

// ArticleForm is the add-article form as posted from the profile page.
type ArticleForm struct {
	Title     string
	URL       string
	Citations string
}

// SubmitArticle validates the add-article form of the profile page and adds
// the article to the profile target, authored by the target's last name
// and filed under its area. Only admins can do it.
func (c *Controller) SubmitArticle(ctx context.Context, s Session, form ArticleForm) error {
	var (
		req    scholar.NewArticle
		userID int
		reject error
	)
	err := s.Update(ctx, func(st *State) error {
		switch {
		case !st.IsAdmin():
			st.Alert = AlertForbidden
			reject = errors.New("admin session required", errors.Forbidden())
			return nil
		case st.Target == nil:
			reject = errors.New("no profile to add the article to", errors.BadRequest())
			return nil
		}

		title := strings.TrimSpace(form.Title)
		citations, convErr := strconv.Atoi(strings.TrimSpace(form.Citations))
		if title == "" || convErr != nil {
			st.Alert = AlertArticleInvalid
			reject = errors.New("invalid article", errors.BadRequest(), errors.WithCause(convErr))
			return nil
		}

		userID = st.Target.ID
		req = scholar.NewArticle{
			Title:     title,
			URL:       strings.TrimSpace(form.URL),
			Citations: citations,
			Area:      st.Target.Area,
			Authors:   st.Target.LastName,
		}
		return nil
	})
	if err != nil {
		return err
	}
	if reject != nil {
		return reject
	}

	if err := c.AddArticle(ctx, s, userID, req); err != nil {
		return err
	}

	return s.Update(context.WithoutCancel(ctx), func(st *State) error {
		st.AddFormOpen = false
		return nil
	})
}

// ToggleContacts shows or hides the email of the profile target.
func (c *Controller) ToggleContacts(ctx context.Context, s Session) error {
	return s.Update(ctx, func(st *State) error {
		st.ShowContacts = !st.ShowContacts
		return nil
	})
}

// ToggleAddArticleForm opens or closes the add-article form. Only admins
// have one.
func (c *Controller) ToggleAddArticleForm(ctx context.Context, s Session) error {
	forbidden := false
	err := s.Update(ctx, func(st *State) error {
		if !st.IsAdmin() {
			forbidden = true
			st.Alert = AlertForbidden
			return nil
		}
		st.AddFormOpen = !st.AddFormOpen
		return nil
	})
	if err != nil {
		return err
	}

	if forbidden {
		return errors.New("admin session required", errors.Forbidden())
	}
	return nil
}

// Page builds the page of the active view. The pending alert is part of it
// and dismissed in the same update, so it is shown exactly once.
func (c *Controller) Page(ctx context.Context, s Session) (Page, error) {
	var p Page
	err := s.Update(ctx, func(st *State) error {
		p = NewPage(st)
		st.Alert = ""
		return nil
	})
	return p, err
}

// Dismiss drops the pending alert once it has been shown.
func (c *Controller) Dismiss(ctx context.Context, s Session) error {
	return s.Update(ctx, func(st *State) error {
		st.Alert = ""
		return nil
	})
}
