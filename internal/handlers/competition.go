package handlers

import (
	"net/http"
	"strconv"

	"github.com/celiarozalenm/fn-quest-live/internal/live"
	"github.com/celiarozalenm/fn-quest-live/internal/services"
	"github.com/celiarozalenm/fn-quest-live/internal/ws"

	"github.com/gin-gonic/gin"
)

type CompetitionHandler struct {
	competitionService  *services.CompetitionService
	registrationService *services.RegistrationService
	progressService     *services.ProgressService
	watcher             *live.Watcher
	hub                 *ws.Hub
}

func NewCompetitionHandler(
	competitionService *services.CompetitionService,
	registrationService *services.RegistrationService,
	progressService *services.ProgressService,
	watcher *live.Watcher,
	hub *ws.Hub,
) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService:  competitionService,
		registrationService: registrationService,
		progressService:     progressService,
		watcher:             watcher,
		hub:                 hub,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"finished"`
}

// StartCompetition godoc
// @Summary      Start a session's competition
// @Description  Create the countdown competition and seed a progress record per checked-in player
// @Tags         competitions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      201 {object} Competition
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/start [post]
func (h *CompetitionHandler) StartCompetition(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	competition, err := h.competitionService.StartCompetition(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.watcher.Track(competition.ID)

	c.JSON(http.StatusCreated, competition)
}

// GetActiveCompetition godoc
// @Summary      Get the currently running competition
// @Description  Returns the first competition in countdown or active state, or null
// @Tags         competitions
// @Produce      json
// @Success      200 {object} Competition
// @Router       /api/v1/competitions/active [get]
func (h *CompetitionHandler) GetActiveCompetition(c *gin.Context) {
	competition, err := h.competitionService.GetActiveCompetition()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, competition)
}

// GetCompetition godoc
// @Summary      Get a competition
// @Tags         competitions
// @Produce      json
// @Param        id path int true "Competition ID"
// @Success      200 {object} Competition
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/competitions/{id} [get]
func (h *CompetitionHandler) GetCompetition(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid competition id"})
		return
	}

	competition, err := h.competitionService.GetCompetition(uint(competitionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, competition)
}

// GetCompetitionBySession godoc
// @Summary      Get a session's competition
// @Description  Returns the session's latest competition, or null
// @Tags         competitions
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} Competition
// @Router       /api/v1/sessions/{id}/competition [get]
func (h *CompetitionHandler) GetCompetitionBySession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	competition, err := h.competitionService.GetCompetitionBySession(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, competition)
}

// UpdateStatus godoc
// @Summary      Update competition status
// @Description  Direct status write; finishing also stamps finished_at
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Competition ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} Competition
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/competitions/{id}/status [put]
func (h *CompetitionHandler) UpdateStatus(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid competition id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	competition, err := h.competitionService.UpdateStatus(uint(competitionID), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(competition.ID, ws.WSMessage{Type: "status", Data: competition})

	c.JSON(http.StatusOK, competition)
}
