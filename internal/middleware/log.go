package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorLog writes every error a handler attached with c.Error, tagged with
// the request and the signed-in admin. The response is left alone.
func ErrorLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		var adminID uint
		if admin, ok := CurrentAdmin(c); ok {
			adminID = admin.ID
		}
		for _, e := range c.Errors {
			log.Printf("%s %s admin=%d status=%d: %v",
				c.Request.Method, c.Request.URL.Path, adminID, c.Writer.Status(), e.Err)
		}
	}
}
