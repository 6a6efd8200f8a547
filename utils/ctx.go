package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the id the auth middleware stored on the
// context, or 0 for an unauthenticated request.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole returns the role claim of the authenticated user, or ""
// when no valid token was presented.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
