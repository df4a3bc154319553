package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notesd/internal/domain"
	"notesd/internal/usecase"
)

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type updateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (s *Server) handleCreateUser(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input := usecase.CreateUserInput{Email: req.Email, Name: req.Name}
	if req.Role != "" {
		role, err := domain.ParseRole(req.Role)
		if err != nil {
			writeError(c, err)
			return
		}
		input.Role = role
	}
	user, err := s.users.Create(c.Request.Context(), principal, c.Param("org_id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(*user))
}

func (s *Server) handleListUsers(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	users, err := s.users.List(c.Request.Context(), principal, c.Param("org_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetUser(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	user, err := s.users.Get(c.Request.Context(), principal, c.Param("org_id"), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input := usecase.UpdateUserInput{Name: req.Name}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			writeError(c, err)
			return
		}
		input.Role = &role
	}
	user, err := s.users.Update(c.Request.Context(), principal, c.Param("org_id"), c.Param("user_id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}
