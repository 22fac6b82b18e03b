package middleware

import (
	"errors"
	"net/http"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorName = "X-Actor-Name"
	HeaderActorRole = "X-Actor-Role"

	ctxActorKey = "actor"
)

var errForbidden = errors.New("admin role required")

// Actor reads the identity forwarded by the gateway. A missing or malformed
// id leaves the actor anonymous but keeps the name for the audit trail.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := audit.Actor{
			Name: c.GetHeader(HeaderActorName),
			Role: c.GetHeader(HeaderActorRole),
		}
		if raw := c.GetHeader(HeaderActorID); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				actor.ID = &id
			}
		}
		if actor.Name == "" && actor.ID == nil {
			actor = audit.System()
		}
		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c).Role != role.String() {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) audit.Actor {
	if v, ok := c.Get(ctxActorKey); ok {
		if actor, ok := v.(audit.Actor); ok {
			return actor
		}
	}
	return audit.System()
}
