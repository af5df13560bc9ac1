package live

import (
	"sort"

	"github.com/celiarozalenm/fn-quest-live/internal/models"
)

// Standing joins one progress record with its player's registration for the
// race and results views.
type Standing struct {
	models.Progress
	Player *models.Registration `json:"player"`
}

// WithPlayers matches progress records to their registrations. A progress
// row without a matching registration keeps a nil player.
func WithPlayers(progress []models.Progress, registrations []models.Registration) []Standing {
	byID := make(map[uint]*models.Registration, len(registrations))
	for i := range registrations {
		byID[registrations[i].ID] = &registrations[i]
	}

	standings := make([]Standing, len(progress))
	for i, p := range progress {
		standings[i] = Standing{Progress: p, Player: byID[p.RegistrationID]}
	}
	return standings
}

// SortLive orders standings for the horse-race view: finished players first
// by ascending total time, then unfinished players by descending current
// challenge. This ordering is visualization only; final ranks are assigned
// by finish order.
func SortLive(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Finished != b.Finished {
			return a.Finished
		}
		if a.Finished {
			return totalOrZero(a.Progress) < totalOrZero(b.Progress)
		}
		return a.CurrentChallenge > b.CurrentChallenge
	})
}

// SortResults orders standings for the results view: by rank when both are
// ranked, finished before unfinished otherwise, then by ascending total time.
func SortResults(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Rank != nil && b.Rank != nil {
			return *a.Rank < *b.Rank
		}
		if a.Finished != b.Finished {
			return a.Finished
		}
		return totalOrMax(a.Progress) < totalOrMax(b.Progress)
	})
}

// AllFinished reports whether every player has completed the race.
func AllFinished(progress []models.Progress) bool {
	if len(progress) == 0 {
		return false
	}
	for _, p := range progress {
		if !p.Finished {
			return false
		}
	}
	return true
}

func totalOrZero(p models.Progress) float64 {
	if p.TotalTime != nil {
		return *p.TotalTime
	}
	return 0
}

func totalOrMax(p models.Progress) float64 {
	if p.TotalTime != nil {
		return *p.TotalTime
	}
	return 999999
}
