package handlers

import (
	"net/http"
	"strconv"

	"github.com/celiarozalenm/fn-quest-live/internal/live"
	"github.com/celiarozalenm/fn-quest-live/internal/models"
	"github.com/celiarozalenm/fn-quest-live/internal/services"
	"github.com/celiarozalenm/fn-quest-live/internal/ws"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressService     *services.ProgressService
	competitionService  *services.CompetitionService
	registrationService *services.RegistrationService
	hub                 *ws.Hub
}

func NewProgressHandler(
	progressService *services.ProgressService,
	competitionService *services.CompetitionService,
	registrationService *services.RegistrationService,
	hub *ws.Hub,
) *ProgressHandler {
	return &ProgressHandler{
		progressService:     progressService,
		competitionService:  competitionService,
		registrationService: registrationService,
		hub:                 hub,
	}
}

type UpdateProgressRequest struct {
	RegistrationID  uint    `json:"registration_id" binding:"required" example:"12"`
	ChallengeNumber int     `json:"challenge_number" binding:"required,min=1,max=5" example:"3"`
	TimeSeconds     float64 `json:"time_seconds" binding:"required" example:"42.7"`
}

// UpdateProgress godoc
// @Summary      Record a challenge completion
// @Description  Record one challenge's elapsed time; the fifth completion finishes the player and assigns the finish rank
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        id path int true "Competition ID"
// @Param        request body UpdateProgressRequest true "Completion data"
// @Success      200 {object} Progress
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/competitions/{id}/progress [post]
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid competition id"})
		return
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := h.progressService.UpdateProgress(uint(competitionID), req.RegistrationID, req.ChallengeNumber, req.TimeSeconds)
	if err != nil {
		status := http.StatusBadRequest
		if err.Error() == "progress record not found" {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(uint(competitionID), ws.WSMessage{Type: "progress_update", Data: progress})

	c.JSON(http.StatusOK, progress)
}

// GetCompetitionProgress godoc
// @Summary      Get all progress records for a competition
// @Tags         progress
// @Produce      json
// @Param        id path int true "Competition ID"
// @Success      200 {array} Progress
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/competitions/{id}/progress [get]
func (h *ProgressHandler) GetCompetitionProgress(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid competition id"})
		return
	}

	progress, err := h.progressService.GetCompetitionProgress(uint(competitionID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetStandings godoc
// @Summary      Get live standings for a competition
// @Description  Progress joined with player identities, in race order (finished first by time, then by furthest challenge)
// @Tags         progress
// @Produce      json
// @Param        id path int true "Competition ID"
// @Success      200 {array} live.Standing
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/competitions/{id}/standings [get]
func (h *ProgressHandler) GetStandings(c *gin.Context) {
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

	progress, err := h.progressService.GetCompetitionProgress(competition.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	registrations, err := h.registrationService.ListRegistrations(competition.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	standings := live.WithPlayers(progress, registrations)
	if competition.Status == models.CompetitionStatusFinished {
		live.SortResults(standings)
	} else {
		live.SortLive(standings)
	}

	c.JSON(http.StatusOK, standings)
}
