package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/middleware"
)

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// markEmpty flags an empty result so the client shows the empty state with
// the given recovery hint.
func markEmpty(c *gin.Context, empty bool, hint string) map[string]interface{} {
	if empty {
		middleware.SetMeta(c, "empty", true)
		middleware.SetMeta(c, "hint", hint)
	}
	return middleware.ExtractMeta(c)
}
