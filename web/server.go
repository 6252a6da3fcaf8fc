package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/sirius-scholar/scholar/app"
	"github.com/sirius-scholar/scholar/log"
	"github.com/sirius-scholar/scholar/session"
)

type ServerConfig struct {
	Env    string
	Secret string

	// CookieMaxAge is the lifetime of the cookie carrying the state id.
	CookieMaxAge time.Duration
}

func New(cfg ServerConfig, controller *app.Controller, manager *session.Manager, logger log.Logger) (http.Handler, error) {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Env == "dev" {
		router.Use(gin.Logger())
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "page not found")
	})

	// Ping does not need a client
	NewUptimeHandler().Register(router)

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("scholar", store))

	handler := Handler{
		Controller: controller,
		Sessions:   manager,
		Templates:  tmpl,
		Logger:     logger,
	}
	handler.Register(router)

	return router, nil
}
