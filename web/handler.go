package web

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/app"
	"github.com/sirius-scholar/scholar/errors"
	"github.com/sirius-scholar/scholar/i18n"
	"github.com/sirius-scholar/scholar/log"
	"github.com/sirius-scholar/scholar/session"
)

const (
	// stateKey is the cookie session entry holding the client state id.
	stateKey  = "state"
	clientKey = "client"
)

// Handler serves the pages of the client. Every browser is one client; its
// state lives in the session manager and the cookie only carries its id.
type Handler struct {
	Controller *app.Controller
	Sessions   *session.Manager
	Templates  *template.Template
	Logger     log.Logger
}

func (h *Handler) Register(r *gin.Engine) {
	r.Use(h.client)

	r.GET("/", h.index)

	r.POST("/navigate", h.navigate)
	r.POST("/back", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.Back(ctx, s)
	}))
	r.POST("/lang", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.SetLanguage(ctx, s, i18n.Language(c.PostForm("lang")))
	}))
	r.POST("/search", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.SetSearch(ctx, s, c.PostForm("q"))
	}))

	r.POST("/login", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		creds := scholar.Credentials{
			Email:    c.PostForm("email"),
			Password: c.PostForm("password"),
		}
		return h.Controller.Login(ctx, s, creds)
	}))
	r.POST("/register", h.register)
	r.POST("/logout", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.Logout(ctx, s)
	}))

	r.POST("/users/:id", h.selectUser)
	r.POST("/articles/:id/like", h.like)
	r.POST("/articles", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		form := app.ArticleForm{
			Title:     c.PostForm("title"),
			URL:       c.PostForm("url"),
			Citations: c.PostForm("citations"),
		}
		return h.Controller.SubmitArticle(ctx, s, form)
	}))

	r.POST("/profile/me", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.OpenMyProfile(ctx, s)
	}))
	r.POST("/profile/contacts", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.ToggleContacts(ctx, s)
	}))
	r.POST("/profile/article-form", h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.ToggleAddArticleForm(ctx, s)
	}))
}

// client attaches the client state handle of the browser, creating the
// state id on first visit.
func (h *Handler) client(c *gin.Context) {
	cookie := sessions.Default(c)

	id, _ := cookie.Get(stateKey).(string)
	if id == "" {
		id = h.Sessions.NewID()
		cookie.Set(stateKey, id)
		if err := cookie.Save(); err != nil {
			h.Logger.Errorf("could not save session cookie: %v", err)
		}
	}

	lang := i18n.Negotiate(c.GetHeader("Accept-Language"))
	c.Set(clientKey, h.Sessions.Open(id, lang))
	c.Next()
}

func getClient(c *gin.Context) *session.Handle {
	return c.MustGet(clientKey).(*session.Handle)
}

func (h *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()
	client := getClient(c)

	if err := h.Controller.Start(ctx, client); err != nil {
		h.fail(c, err)
		return
	}

	page, err := h.Controller.Page(ctx, client)
	if err != nil {
		h.fail(c, err)
		return
	}

	data, err := renderContent(h.Templates, page)
	if err != nil {
		h.fail(c, errors.New("could not render page", errors.WithCause(err)))
		return
	}
	c.HTML(http.StatusOK, "layout", data)
}

type action func(ctx context.Context, c *gin.Context, s app.Session) error

// run executes a form action and redirects to the page. Rejected actions
// have already raised their alert; only failures of the server itself are
// rendered as errors.
func (h *Handler) run(fn action) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := fn(c.Request.Context(), c, getClient(c))
		if err != nil && errors.Code(err) >= http.StatusInternalServerError {
			h.fail(c, err)
			return
		} else if err != nil {
			h.Logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.Logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(errors.Code(err), "something went wrong, please retry")
}

func (h *Handler) navigate(c *gin.Context) {
	view, ok := app.ParseView(c.PostForm("view"))
	if !ok {
		c.String(http.StatusBadRequest, "invalid view")
		return
	}

	h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.Navigate(ctx, s, view)
	})(c)
}

func (h *Handler) selectUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.SelectUser(ctx, s, id)
	})(c)
}

func (h *Handler) like(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.Like(ctx, s, id)
	})(c)
}

func (h *Handler) register(c *gin.Context) {
	var form struct {
		FirstName      string `form:"firstName" binding:"required"`
		LastName       string `form:"lastName" binding:"required"`
		Age            string `form:"age" binding:"required"`
		City           string `form:"city" binding:"required"`
		AcademicStatus string `form:"academicStatus" binding:"required"`
		Email          string `form:"email" binding:"required"`
		Password       string `form:"password" binding:"required"`
		IsAdmin        string `form:"isAdmin"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid age")
		return
	}

	r := scholar.Registration{
		Email:          form.Email,
		Password:       form.Password,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Age:            age,
		City:           form.City,
		AcademicStatus: form.AcademicStatus,
	}
	isAdmin := form.IsAdmin == "on"

	h.run(func(ctx context.Context, c *gin.Context, s app.Session) error {
		return h.Controller.Register(ctx, s, r, isAdmin)
	})(c)
}
