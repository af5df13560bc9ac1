package services

import (
	"errors"
	"time"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// RegisterForSession claims one seat on a session. The seat decrement is a
// single conditional UPDATE, so two concurrent registrations for the last
// seat cannot both succeed and available_seats can never go below zero.
func (s *RegistrationService) RegisterForSession(sessionID uint, email, name, company string) (*models.Registration, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}
	if !session.IsActive {
		return nil, errors.New("session is not active")
	}
	if session.IsReservedForWalkins {
		return nil, errors.New("session is reserved for walk-ins")
	}

	var registration models.Registration
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Session{}).
			Where("id = ? AND available_seats > 0", sessionID).
			Update("available_seats", gorm.Expr("available_seats - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("no seats available")
		}

		registration = models.Registration{
			SessionID:    sessionID,
			PublicID:     uuid.NewString(),
			Email:        email,
			Name:         name,
			Company:      company,
			Source:       models.SourcePreRegistration,
			RegisteredAt: time.Now(),
			CheckedIn:    false,
		}
		return tx.Create(&registration).Error
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// AdminAddWalkin registers an on-site arrival. Walk-ins are allowed on
// walk-in-reserved slots and even when the seat count is exhausted; the
// decrement simply stops at zero.
func (s *RegistrationService) AdminAddWalkin(sessionID uint, email, name, company string) (*models.Registration, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}

	var registration models.Registration
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx.Model(&models.Session{}).
			Where("id = ? AND available_seats > 0", sessionID).
			Update("available_seats", gorm.Expr("available_seats - 1"))

		registration = models.Registration{
			SessionID:    sessionID,
			PublicID:     uuid.NewString(),
			Email:        email,
			Name:         name,
			Company:      company,
			Source:       models.SourceWalkIn,
			RegisteredAt: time.Now(),
			CheckedIn:    false,
		}
		return tx.Create(&registration).Error
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// CheckInPlayer assigns the chosen player identity and marks the
// registration ready to compete. The transition is one-way and happens
// exactly once.
func (s *RegistrationService) CheckInPlayer(registrationID uint, playerName, playerIcon string) (*models.Registration, error) {
	var registration models.Registration
	if err := s.db.First(&registration, registrationID).Error; err != nil {
		return nil, errors.New("registration not found")
	}
	if registration.CheckedIn {
		return nil, errors.New("player already checked in")
	}

	now := time.Now()
	registration.CheckedIn = true
	registration.CheckedInAt = &now
	registration.PlayerName = playerName
	registration.PlayerIcon = playerIcon
	if err := s.db.Save(&registration).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *RegistrationService) GetRegistration(registrationID uint) (*models.Registration, error) {
	var registration models.Registration
	if err := s.db.First(&registration, registrationID).Error; err != nil {
		return nil, errors.New("registration not found")
	}
	return &registration, nil
}

func (s *RegistrationService) ListRegistrations(sessionID uint) ([]models.Registration, error) {
	var registrations []models.Registration
	if err := s.db.Where("session_id = ?", sessionID).
		Order("registered_at ASC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (s *RegistrationService) ListUserRegistrations(email string) ([]models.Registration, error) {
	var registrations []models.Registration
	if err := s.db.Where("email = ?", email).
		Order("registered_at ASC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

// ListCheckedIn returns the session's checked-in registrations in check-in order.
func (s *RegistrationService) ListCheckedIn(sessionID uint) ([]models.Registration, error) {
	var registrations []models.Registration
	if err := s.db.Where("session_id = ? AND checked_in = ?", sessionID, true).
		Order("checked_in_at ASC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}
