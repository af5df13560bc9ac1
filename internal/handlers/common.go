package handlers

import "github.com/celiarozalenm/fn-quest-live/internal/models"

type ErrorResponse struct {
	Error   string `json:"error" example:"something went wrong"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Session = models.Session
type Registration = models.Registration
type Competition = models.Competition
type Progress = models.Progress
