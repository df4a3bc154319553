package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notesd/internal/domain"
	"notesd/internal/infra/auth/rbac"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type orgResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type userResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      *string `json:"updated_at,omitempty"`
}

type noteResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	CreatedBy      string  `json:"created_by"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      *string `json:"updated_at,omitempty"`
}

func toOrgResponse(org domain.Organization) orgResponse {
	return orgResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: formatTime(org.CreatedAt),
	}
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role.String(),
		CreatedAt:      formatTime(user.CreatedAt),
		UpdatedAt:      formatTimePtr(user.UpdatedAt),
	}
}

func toNoteResponse(note domain.Note) noteResponse {
	return noteResponse{
		ID:             note.ID,
		OrganizationID: note.OrganizationID,
		CreatedBy:      note.CreatedBy,
		Title:          note.Title,
		Content:        note.Content,
		CreatedAt:      formatTime(note.CreatedAt),
		UpdatedAt:      formatTimePtr(note.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatTime(*t)
	return &formatted
}

// writeError maps the domain taxonomy to wire status codes. Authorization
// outcomes keep a generic message: the status code is all a caller learns.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingIdentity):
		writeErrorCode(c, http.StatusUnauthorized, "MISSING_IDENTITY", "X-Org-ID and X-User-ID headers are required")
	case errors.Is(err, domain.ErrMalformedIdentity):
		writeErrorCode(c, http.StatusBadRequest, "MALFORMED_IDENTITY", "identifiers must be 24-character hex tokens")
	case errors.Is(err, domain.ErrUserNotFound):
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrTenantMismatch), errors.Is(err, domain.ErrForbidden):
		writeForbidden(c, err)
	case errors.Is(err, domain.ErrNotFound):
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrConflict):
		writeErrorCode(c, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, domain.ErrInvalidArgument):
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid argument")
	default:
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeForbidden(c *gin.Context, err error) {
	code := "FORBIDDEN"
	if errors.Is(err, domain.ErrTenantMismatch) {
		code = "TENANT_MISMATCH"
	} else if authz, ok := rbac.IsAuthzError(err); ok {
		code = authz.Code
	}
	writeErrorCode(c, http.StatusForbidden, code, "forbidden")
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}
