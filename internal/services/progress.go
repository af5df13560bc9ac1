package services

import (
	"errors"
	"sync"
	"time"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB

	// finishMu serializes finish handling so two players completing their
	// last challenge at the same moment cannot read the same finished count
	// and claim the same rank. This process owns all progress mutations.
	finishMu sync.Mutex
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// UpdateProgress records the completion of one challenge. The final
// challenge also computes the total time and assigns the finish rank: ranks
// follow strict finish order, the first player to complete the last challenge
// takes rank 1 regardless of total time.
func (s *ProgressService) UpdateProgress(competitionID, registrationID uint, challengeNumber int, timeSeconds float64) (*models.Progress, error) {
	if challengeNumber < 1 || challengeNumber > models.ChallengeCount {
		return nil, errors.New("invalid challenge number")
	}

	var progress models.Progress
	if err := s.db.Where("competition_id = ? AND registration_id = ?", competitionID, registrationID).
		First(&progress).Error; err != nil {
		return nil, errors.New("progress record not found")
	}
	if progress.Finished {
		return nil, errors.New("player already finished")
	}

	progress.SetChallengeTime(challengeNumber, timeSeconds)
	progress.CurrentChallenge = challengeNumber + 1

	if challengeNumber < models.ChallengeCount {
		if err := s.db.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}

	s.finishMu.Lock()
	defer s.finishMu.Unlock()

	total := progress.SumChallengeTimes()
	now := time.Now()
	progress.TotalTime = &total
	progress.Finished = true
	progress.FinishedAt = &now

	var finishedCount int64
	if err := s.db.Model(&models.Progress{}).
		Where("competition_id = ? AND finished = ?", competitionID, true).
		Count(&finishedCount).Error; err != nil {
		return nil, err
	}
	rank := int(finishedCount) + 1
	progress.Rank = &rank

	if err := s.db.Save(&progress).Error; err != nil {
		return nil, err
	}

	// Last finisher closes out the competition.
	var unfinished int64
	s.db.Model(&models.Progress{}).
		Where("competition_id = ? AND finished = ?", competitionID, false).
		Count(&unfinished)
	if unfinished == 0 {
		s.db.Model(&models.Competition{}).
			Where("id = ? AND status != ?", competitionID, models.CompetitionStatusFinished).
			Updates(map[string]interface{}{
				"status":      models.CompetitionStatusFinished,
				"finished_at": now,
			})
	}

	return &progress, nil
}

func (s *ProgressService) GetCompetitionProgress(competitionID uint) ([]models.Progress, error) {
	var progress []models.Progress
	if err := s.db.Where("competition_id = ?", competitionID).
		Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}
