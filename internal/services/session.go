package services

import (
	"errors"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// ListSessions returns all sessions, optionally filtered to one calendar
// date, ordered by start time ascending.
func (s *SessionService) ListSessions(date string) ([]models.Session, error) {
	query := s.db.Order("start_time ASC")
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var sessions []models.Session
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListAvailableSessions returns the sessions on date that are open for
// self-service registration: active, not reserved for walk-ins, and with
// seats remaining.
func (s *SessionService) ListAvailableSessions(date string) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.
		Where("date = ? AND is_active = ? AND is_reserved_for_walkins = ? AND available_seats > 0",
			date, true, false).
		Order("start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionService) GetSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}
	return &session, nil
}
