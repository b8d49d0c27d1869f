package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/service"
)

// unmatchedRoute labels requests that hit no route, so raw paths carrying
// DNIs or tokens never become label values.
const unmatchedRoute = "unmatched"

// Metrics observes every request except scrapes of metricsPath.
func Metrics(metricsSvc *service.MetricsService, metricsPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
