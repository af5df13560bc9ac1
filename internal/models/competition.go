package models

import "time"

// Competition is one live run of a session's race.
type Competition struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SessionID   uint       `gorm:"not null;index" json:"session_id"`
	Status      string     `gorm:"size:20;not null;default:'waiting'" json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	GameStartAt time.Time  `json:"game_start_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	DayNumber   int        `gorm:"not null;default:1" json:"day_number"`
	CreatedAt   time.Time  `json:"created_at"`
}

const (
	CompetitionStatusWaiting   = "waiting"
	CompetitionStatusCountdown = "countdown"
	CompetitionStatusActive    = "active"
	CompetitionStatusFinished  = "finished"
)
