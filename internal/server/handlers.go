package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) collection(c *gin.Context) (string, bool) {
	name := c.Param("collection")
	if !s.db.Has(name) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown collection: " + name})
		return "", false
	}
	return name, true
}

func (s *Server) handleList(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.db.All(name))
}

func (s *Server) handleGet(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	rec, err := s.db.Find(name, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleCreate(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	var rec map[string]any
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	// A body of `null` binds without error and leaves the map nil.
	if rec == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: expected a JSON object"})
		return
	}
	created, err := s.db.Insert(name, rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleReplace(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	var rec map[string]any
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: expected a JSON object"})
		return
	}
	updated, err := s.db.Replace(name, c.Param("id"), rec)
	if err != nil {
		s.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handlePatch(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	updated, err := s.db.Patch(name, c.Param("id"), fields)
	if err != nil {
		s.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDelete(c *gin.Context) {
	name, ok := s.collection(c)
	if !ok {
		return
	}
	if err := s.db.Delete(name, c.Param("id")); err != nil {
		s.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) writeMutationError(c *gin.Context, err error) {
	if errors.Is(err, ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
