package models

import "time"

type Registration struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SessionID    uint       `gorm:"not null;index" json:"session_id"`
	PublicID     string     `gorm:"size:36;uniqueIndex" json:"public_id"`
	Email        string     `gorm:"size:255;not null;index" json:"email"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Company      string     `gorm:"size:100" json:"company,omitempty"`
	Source       string     `gorm:"size:20;not null" json:"source"`
	RegisteredAt time.Time  `json:"registered_at"`
	CheckedIn    bool       `gorm:"not null;default:false" json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	PlayerName   string     `gorm:"size:100" json:"player_name,omitempty"`
	PlayerIcon   string     `gorm:"size:30" json:"player_icon,omitempty"`
}

const (
	SourcePreRegistration = "pre-registration"
	SourceWalkIn          = "walk-in"
)
