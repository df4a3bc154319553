package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notesd/internal/domain"
	"notesd/internal/infra/auth/guard"
)

const (
	principalContextKey = "principal"
	requestIDContextKey = "request_id"

	headerOrgID     = "X-Org-ID"
	headerUserID    = "X-User-ID"
	headerRequestID = "X-Request-ID"
)

// requireAuth builds the per-route middleware that runs the full
// authorization chain before any handler logic. Each request re-resolves
// identity against the directory; nothing is cached between requests.
func (s *Server) requireAuth(floor domain.Role, routeID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := guard.RawIdentity{
			OrgID:  c.GetHeader(headerOrgID),
			UserID: c.GetHeader(headerUserID),
		}
		principal, err := s.guard.Authorize(c.Request.Context(), raw, floor)
		if err != nil {
			writeError(c, err)
			return
		}
		if !s.enforceRateLimit(c, routeID, "tenant:"+principal.TenantID) {
			return
		}
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

func getPrincipal(c *gin.Context) (domain.Principal, bool) {
	raw, ok := c.Get(principalContextKey)
	if !ok {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "principal missing")
		return domain.Principal{}, false
	}
	principal, ok := raw.(domain.Principal)
	if !ok {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "principal invalid")
		return domain.Principal{}, false
	}
	return principal, true
}

// requestIDMiddleware echoes the inbound X-Request-ID or assigns one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDContextKey, requestID)
		c.Header(headerRequestID, requestID)
		c.Next()
	}
}
