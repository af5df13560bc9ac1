package models

import "time"

// Session is a bookable competition time slot tied to one day's challenge set.
type Session struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Date                 string    `gorm:"size:10;not null;index" json:"date"`
	StartTime            string    `gorm:"size:5;not null" json:"start_time"`
	TotalSeats           int       `gorm:"not null" json:"total_seats"`
	AvailableSeats       int       `gorm:"not null" json:"available_seats"`
	IsReservedForWalkins bool      `gorm:"not null;default:false" json:"is_reserved_for_walkins"`
	IsActive             bool      `gorm:"not null;default:true" json:"is_active"`
	ChallengeSet         string    `gorm:"size:20;not null" json:"challenge_set"`
	CreatedAt            time.Time `json:"created_at"`
}
