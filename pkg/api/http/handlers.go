package http

import (
	"net/http"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed news request
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handleNews relays one news query to NewsAPI
func (s *Server) handleNews(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		s.handleMethodNotAllowed(c)
		return
	}

	query := domain.QueryFromValues(c.Request.URL.Query())

	body, err := s.proxy.Fetch(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// handleMethodNotAllowed rejects anything but GET on the news endpoint
func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
