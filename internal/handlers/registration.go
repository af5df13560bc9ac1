package handlers

import (
	"net/http"
	"strconv"

	"github.com/celiarozalenm/fn-quest-live/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

type RegisterForSessionRequest struct {
	Email   string `json:"email" binding:"required,email" example:"player@example.com"`
	Name    string `json:"name" binding:"required,min=1,max=100" example:"Jamie"`
	Company string `json:"company" binding:"max=100" example:"Acme Networks"`
}

type CheckInRequest struct {
	PlayerName string `json:"player_name" binding:"required,min=1,max=100" example:"Fluffy Armadillo"`
	PlayerIcon string `json:"player_icon" binding:"required,min=1,max=30" example:"rocket"`
}

// RegisterForSession godoc
// @Summary      Register for a session
// @Description  Claim one seat on a session; fails when the session is full
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        id path int true "Session ID"
// @Param        request body RegisterForSessionRequest true "Registration data"
// @Success      201 {object} Registration
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/register [post]
func (h *RegistrationHandler) RegisterForSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req RegisterForSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	registration, err := h.registrationService.RegisterForSession(uint(sessionID), req.Email, req.Name, req.Company)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// AddWalkin godoc
// @Summary      Add a walk-in registration
// @Description  Register an on-site arrival, allowed even on walk-in-reserved slots
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body RegisterForSessionRequest true "Walk-in data"
// @Success      201 {object} Registration
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/walkin [post]
func (h *RegistrationHandler) AddWalkin(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req RegisterForSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	registration, err := h.registrationService.AdminAddWalkin(uint(sessionID), req.Email, req.Name, req.Company)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// CheckIn godoc
// @Summary      Check in a player
// @Description  Assign the chosen player name and icon; allowed exactly once
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        id path int true "Registration ID"
// @Param        request body CheckInRequest true "Player identity"
// @Success      200 {object} Registration
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/registrations/{id}/checkin [post]
func (h *RegistrationHandler) CheckIn(c *gin.Context) {
	registrationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	registration, err := h.registrationService.CheckInPlayer(uint(registrationID), req.PlayerName, req.PlayerIcon)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, registration)
}

// GetRegistration godoc
// @Summary      Get a registration
// @Tags         registrations
// @Produce      json
// @Param        id path int true "Registration ID"
// @Success      200 {object} Registration
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/registrations/{id} [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	registrationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid registration id"})
		return
	}

	registration, err := h.registrationService.GetRegistration(uint(registrationID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, registration)
}

// ListSessionRegistrations godoc
// @Summary      List a session's registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {array} Registration
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/registrations [get]
func (h *RegistrationHandler) ListSessionRegistrations(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	registrations, err := h.registrationService.ListRegistrations(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// ListUserRegistrations godoc
// @Summary      List a user's registrations
// @Tags         registrations
// @Produce      json
// @Param        email query string true "Registrant email"
// @Success      200 {array} Registration
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/registrations [get]
func (h *RegistrationHandler) ListUserRegistrations(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email query parameter required"})
		return
	}

	registrations, err := h.registrationService.ListUserRegistrations(email)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, registrations)
}
