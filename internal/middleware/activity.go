package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// ActorHeader names the acting user for the activity feed.
const ActorHeader = "X-Actor"

const defaultActor = "system"

type activityRecorder interface {
	Record(ctx context.Context, entry models.ActivityLog)
}

// Activity records an activity entry after successful requests.
func Activity(recorder activityRecorder, action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if recorder == nil || c.Writer.Status() >= 400 {
			return
		}
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = defaultActor
		}
		resourceID := c.Param("dni")
		if resourceID == "" {
			resourceID = c.Param("id")
		}
		recorder.Record(c.Request.Context(), models.ActivityLog{
			Timestamp:  time.Now().UTC(),
			Actor:      actor,
			Action:     action,
			Resource:   resource,
			ResourceID: resourceID,
			Status:     c.Writer.Status(),
		})
	}
}

// AfterMutation runs hook once a mutating request succeeded.
func AfterMutation(hook func(context.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if hook != nil && c.Writer.Status() < 400 {
			hook(c.Request.Context())
		}
	}
}
