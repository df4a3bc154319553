package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notesd/internal/usecase"
)

type createOrganizationRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	org, err := s.orgs.Create(c.Request.Context(), usecase.CreateOrganizationInput{Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrgResponse(*org))
}

func (s *Server) handleGetOrganization(c *gin.Context) {
	org, err := s.orgs.GetByID(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrgResponse(*org))
}
