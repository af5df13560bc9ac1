package models

import "time"

// ChallengeCount is the fixed number of puzzle stages in a competition.
const ChallengeCount = 5

// Progress is one player's per-challenge timing within one competition.
// CurrentChallenge runs 1..ChallengeCount+1; a value past the last challenge
// means the player has finished.
type Progress struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CompetitionID    uint       `gorm:"not null;uniqueIndex:idx_comp_reg" json:"competition_id"`
	RegistrationID   uint       `gorm:"not null;uniqueIndex:idx_comp_reg" json:"registration_id"`
	CurrentChallenge int        `gorm:"not null;default:1" json:"current_challenge"`
	Challenge1Time   *float64   `json:"challenge_1_time"`
	Challenge2Time   *float64   `json:"challenge_2_time"`
	Challenge3Time   *float64   `json:"challenge_3_time"`
	Challenge4Time   *float64   `json:"challenge_4_time"`
	Challenge5Time   *float64   `json:"challenge_5_time"`
	TotalTime        *float64   `json:"total_time"`
	HintsUsed        int        `gorm:"not null;default:0" json:"hints_used"`
	Finished         bool       `gorm:"not null;default:false" json:"finished"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	Rank             *int       `json:"rank"`
}

// ChallengeTime returns the recorded time for challenge n (1-based), or nil.
func (p *Progress) ChallengeTime(n int) *float64 {
	switch n {
	case 1:
		return p.Challenge1Time
	case 2:
		return p.Challenge2Time
	case 3:
		return p.Challenge3Time
	case 4:
		return p.Challenge4Time
	case 5:
		return p.Challenge5Time
	}
	return nil
}

// SetChallengeTime records the time for challenge n (1-based).
func (p *Progress) SetChallengeTime(n int, seconds float64) {
	switch n {
	case 1:
		p.Challenge1Time = &seconds
	case 2:
		p.Challenge2Time = &seconds
	case 3:
		p.Challenge3Time = &seconds
	case 4:
		p.Challenge4Time = &seconds
	case 5:
		p.Challenge5Time = &seconds
	}
}

// SumChallengeTimes adds up the recorded challenge times, treating unset ones as 0.
func (p *Progress) SumChallengeTimes() float64 {
	var total float64
	for n := 1; n <= ChallengeCount; n++ {
		if t := p.ChallengeTime(n); t != nil {
			total += *t
		}
	}
	return total
}
