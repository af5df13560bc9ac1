package handlers

import (
	"net/http"
	"strconv"

	"github.com/celiarozalenm/fn-quest-live/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// ListSessions godoc
// @Summary      List sessions
// @Description  Get all sessions, optionally filtered to one calendar date
// @Tags         sessions
// @Produce      json
// @Param        date query string false "Calendar date (YYYY-MM-DD)"
// @Success      200 {array} Session
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListSessions(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ListAvailableSessions godoc
// @Summary      List sessions open for registration
// @Description  Get active sessions on a date with seats remaining, excluding walk-in-reserved slots
// @Tags         sessions
// @Produce      json
// @Param        date query string true "Calendar date (YYYY-MM-DD)"
// @Success      200 {array} Session
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/available [get]
func (h *SessionHandler) ListAvailableSessions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date query parameter required"})
		return
	}

	sessions, err := h.sessionService.ListAvailableSessions(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.GetSession(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
