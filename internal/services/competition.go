package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"gorm.io/gorm"
)

// CountdownLead is how long the lobby countdown runs before "GO".
const CountdownLead = 5 * time.Second

// MinPlayersToStart is the minimum number of checked-in players for a race.
const MinPlayersToStart = 2

type CompetitionService struct {
	db *gorm.DB
}

func NewCompetitionService(db *gorm.DB) *CompetitionService {
	return &CompetitionService{db: db}
}

// StartCompetition creates the competition for a session in countdown state
// and seeds one progress record per checked-in registration. A session can
// have at most one unfinished competition at a time.
func (s *CompetitionService) StartCompetition(sessionID uint) (*models.Competition, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}

	var existing models.Competition
	if err := s.db.Where("session_id = ? AND status != ?", sessionID, models.CompetitionStatusFinished).
		First(&existing).Error; err == nil {
		return nil, errors.New("competition already running for this session")
	}

	var players []models.Registration
	if err := s.db.Where("session_id = ? AND checked_in = ?", sessionID, true).
		Order("checked_in_at ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}
	if len(players) < MinPlayersToStart {
		return nil, errors.New("need at least 2 checked-in players to start")
	}

	now := time.Now()
	competition := models.Competition{
		SessionID:   sessionID,
		Status:      models.CompetitionStatusCountdown,
		StartedAt:   now,
		GameStartAt: now.Add(CountdownLead),
		DayNumber:   parseDayNumber(session.ChallengeSet),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&competition).Error; err != nil {
			return err
		}
		for _, p := range players {
			progress := models.Progress{
				CompetitionID:    competition.ID,
				RegistrationID:   p.ID,
				CurrentChallenge: 1,
				HintsUsed:        0,
				Finished:         false,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

// UpdateStatus writes the competition status directly; finishing also stamps
// finished_at.
func (s *CompetitionService) UpdateStatus(competitionID uint, status string) (*models.Competition, error) {
	switch status {
	case models.CompetitionStatusWaiting, models.CompetitionStatusCountdown,
		models.CompetitionStatusActive, models.CompetitionStatusFinished:
	default:
		return nil, errors.New("invalid competition status")
	}

	var competition models.Competition
	if err := s.db.First(&competition, competitionID).Error; err != nil {
		return nil, errors.New("competition not found")
	}

	competition.Status = status
	if status == models.CompetitionStatusFinished && competition.FinishedAt == nil {
		now := time.Now()
		competition.FinishedAt = &now
	}
	if err := s.db.Save(&competition).Error; err != nil {
		return nil, err
	}
	return &competition, nil
}

// GetActiveCompetition returns the first competition still in countdown or
// active state, or nil when no race is running.
func (s *CompetitionService) GetActiveCompetition() (*models.Competition, error) {
	var competition models.Competition
	err := s.db.Where("status IN ?", []string{
		models.CompetitionStatusCountdown,
		models.CompetitionStatusActive,
	}).Order("started_at ASC").First(&competition).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

func (s *CompetitionService) GetCompetition(competitionID uint) (*models.Competition, error) {
	var competition models.Competition
	if err := s.db.First(&competition, competitionID).Error; err != nil {
		return nil, errors.New("competition not found")
	}
	return &competition, nil
}

// GetCompetitionBySession returns the session's latest competition, or nil.
func (s *CompetitionService) GetCompetitionBySession(sessionID uint) (*models.Competition, error) {
	var competition models.Competition
	err := s.db.Where("session_id = ?", sessionID).
		Order("started_at DESC").First(&competition).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

// ListUnfinished returns competitions that still need lifecycle tracking.
func (s *CompetitionService) ListUnfinished() ([]models.Competition, error) {
	var competitions []models.Competition
	if err := s.db.Where("status != ?", models.CompetitionStatusFinished).
		Find(&competitions).Error; err != nil {
		return nil, err
	}
	return competitions, nil
}

// parseDayNumber extracts the digits from a challenge set label such as
// "Day3". Labels without digits map to day 1.
func parseDayNumber(challengeSet string) int {
	digits := strings.TrimLeftFunc(challengeSet, func(r rune) bool {
		return r < '0' || r > '9'
	})
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
