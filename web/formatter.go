package web

import (
	"github.com/gin-gonic/gin"

	"github.com/sirius-scholar/scholar/errors"
)

type Formatter struct{}

// Wrap renders the result of next as a JSON envelope.
func (f *Formatter) Wrap(next func(*gin.Context) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := next(c)

		if err != nil {
			c.JSON(errors.Code(err), map[string]interface{}{
				"data":    "ko",
				"message": err.Error(),
			})
			return
		}

		c.JSON(200, map[string]interface{}{
			"data": data,
		})
	}
}
