package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

type UptimeHandler struct {
	f     Formatter
	start time.Time
}

func NewUptimeHandler() *UptimeHandler {
	return &UptimeHandler{start: time.Now()}
}

func (h *UptimeHandler) Register(r *gin.Engine) {
	r.GET("/ping", h.f.Wrap(h.Ping))
}

func (h *UptimeHandler) Ping(c *gin.Context) (interface{}, error) {
	return map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.start).Round(time.Second).String(),
	}, nil
}
