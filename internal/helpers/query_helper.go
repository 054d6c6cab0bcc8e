package helpers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseListParam reads a multi-valued filter param. Both repeated keys
// (?types=a&types=b) and comma-joined values (?types=a,b) are accepted.
func ParseListParam(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
