package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notesd/internal/usecase"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (s *Server) handleCreateNote(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	note, err := s.notes.Create(c.Request.Context(), principal, usecase.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toNoteResponse(*note))
}

func (s *Server) handleListNotes(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", usecase.DefaultNoteLimit)
	notes, err := s.notes.List(c.Request.Context(), principal, skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, toNoteResponse(note))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetNote(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	note, err := s.notes.Get(c.Request.Context(), principal, c.Param("note_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(*note))
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	note, err := s.notes.Update(c.Request.Context(), principal, c.Param("note_id"), usecase.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(*note))
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	if err := s.notes.Delete(c.Request.Context(), principal, c.Param("note_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
