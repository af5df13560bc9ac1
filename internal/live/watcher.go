package live

import (
	"log"
	"sync"
	"time"

	"github.com/celiarozalenm/fn-quest-live/internal/models"
	"github.com/celiarozalenm/fn-quest-live/internal/services"
	"github.com/celiarozalenm/fn-quest-live/internal/ws"
)

// Watcher is the lifecycle authority for running competitions. One goroutine
// per competition re-reads its state on a fixed interval, flips countdown to
// active once game_start_at elapses, and pushes countdown/progress/finish
// frames to connected clients. A failed tick is logged and retried on the
// next one.
type Watcher struct {
	competitionSvc  *services.CompetitionService
	registrationSvc *services.RegistrationService
	progressSvc     *services.ProgressService
	hub             *ws.Hub
	pollInterval    time.Duration

	mu      sync.Mutex
	stopChs map[uint]chan struct{}
}

func NewWatcher(
	competitionSvc *services.CompetitionService,
	registrationSvc *services.RegistrationService,
	progressSvc *services.ProgressService,
	hub *ws.Hub,
	pollInterval time.Duration,
) *Watcher {
	return &Watcher{
		competitionSvc:  competitionSvc,
		registrationSvc: registrationSvc,
		progressSvc:     progressSvc,
		hub:             hub,
		pollInterval:    pollInterval,
		stopChs:         make(map[uint]chan struct{}),
	}
}

// Track starts the poll loop for one competition. Tracking an already
// tracked competition is a no-op.
func (w *Watcher) Track(competitionID uint) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.stopChs[competitionID]; exists {
		return
	}
	stopCh := make(chan struct{})
	w.stopChs[competitionID] = stopCh
	go w.pollLoop(competitionID, stopCh)
	log.Printf("[Watcher] tracking competition %d", competitionID)
}

// Resume re-tracks every unfinished competition, for recovery after a
// restart.
func (w *Watcher) Resume() {
	competitions, err := w.competitionSvc.ListUnfinished()
	if err != nil {
		log.Printf("[Watcher] resume failed: %v", err)
		return
	}
	for _, c := range competitions {
		w.Track(c.ID)
	}
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, ch := range w.stopChs {
		close(ch)
		delete(w.stopChs, id)
	}
	log.Println("[Watcher] stopped")
}

func (w *Watcher) untrack(competitionID uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ch, ok := w.stopChs[competitionID]; ok {
		close(ch)
		delete(w.stopChs, competitionID)
	}
}

func (w *Watcher) pollLoop(competitionID uint, stopCh chan struct{}) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if done := w.checkCompetition(competitionID); done {
				w.untrack(competitionID)
				return
			}
		}
	}
}

// checkCompetition runs one tick. It returns true once the competition is
// finished and the loop can stop.
func (w *Watcher) checkCompetition(competitionID uint) bool {
	competition, err := w.competitionSvc.GetCompetition(competitionID)
	if err != nil {
		log.Printf("[Watcher] competition %d: %v", competitionID, err)
		return false
	}

	switch competition.Status {
	case models.CompetitionStatusWaiting, models.CompetitionStatusCountdown:
		remaining := time.Until(competition.GameStartAt)
		if remaining > 0 {
			w.hub.Broadcast(competitionID, ws.WSMessage{
				Type: "countdown",
				Data: map[string]interface{}{
					"competition":      competition,
					"seconds_to_start": int(remaining.Seconds()) + 1,
				},
			})
			return false
		}

		updated, err := w.competitionSvc.UpdateStatus(competitionID, models.CompetitionStatusActive)
		if err != nil {
			log.Printf("[Watcher] competition %d: activate: %v", competitionID, err)
			return false
		}
		log.Printf("[Watcher] competition %d is live", competitionID)
		w.hub.Broadcast(competitionID, ws.WSMessage{Type: "started", Data: updated})
		return false

	case models.CompetitionStatusActive:
		standings, err := w.loadStandings(competition)
		if err != nil {
			log.Printf("[Watcher] competition %d: %v", competitionID, err)
			return false
		}
		w.hub.Broadcast(competitionID, ws.WSMessage{
			Type: "progress",
			Data: map[string]interface{}{
				"competition": competition,
				"standings":   standings,
			},
		})
		return false

	case models.CompetitionStatusFinished:
		standings, err := w.loadStandings(competition)
		if err != nil {
			log.Printf("[Watcher] competition %d: %v", competitionID, err)
			standings = nil
		}
		w.hub.Broadcast(competitionID, ws.WSMessage{
			Type: "finished",
			Data: map[string]interface{}{
				"competition": competition,
				"standings":   standings,
			},
		})
		log.Printf("[Watcher] competition %d finished", competitionID)
		return true
	}

	return false
}

func (w *Watcher) loadStandings(competition *models.Competition) ([]Standing, error) {
	progress, err := w.progressSvc.GetCompetitionProgress(competition.ID)
	if err != nil {
		return nil, err
	}
	registrations, err := w.registrationSvc.ListRegistrations(competition.SessionID)
	if err != nil {
		return nil, err
	}

	standings := WithPlayers(progress, registrations)
	if competition.Status == models.CompetitionStatusFinished {
		SortResults(standings)
	} else {
		SortLive(standings)
	}
	return standings, nil
}
