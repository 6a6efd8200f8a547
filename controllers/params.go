package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryUint reads a positive integer query parameter; ok is false when it
// is absent or malformed.
func queryUint(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
