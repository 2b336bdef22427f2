package middleware

import "github.com/gin-gonic/gin"

const (
	LayoutHeader     = "X-Layout"
	AdminLayoutValue = "admin-fullscreen"
)

// AdminLayout wraps the admin route group in a single full-screen
// container. Nested handlers write their status and body unchanged.
func AdminLayout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(LayoutHeader, AdminLayoutValue)
		c.Next()
	}
}
