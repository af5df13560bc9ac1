package services

import (
	"testing"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"gorm.io/gorm"
)

// startTestCompetition seeds a session with n checked-in players and starts
// its competition, returning the competition and the player registrations.
func startTestCompetition(t *testing.T, db *gorm.DB, n int) (*models.Competition, []models.Registration) {
	t.Helper()

	session := createTestSession(t, db, 5)
	checkInPlayers(t, db, session.ID, n)

	competition, err := NewCompetitionService(db).StartCompetition(session.ID)
	if err != nil {
		t.Fatalf("StartCompetition: %v", err)
	}

	var players []models.Registration
	db.Where("session_id = ?", session.ID).Order("id ASC").Find(&players)
	return competition, players
}

func TestUpdateProgressMidRace(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	progress, err := svc.UpdateProgress(competition.ID, players[0].ID, 1, 12.5)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	if progress.CurrentChallenge != 2 {
		t.Errorf("current challenge: got %d, want 2", progress.CurrentChallenge)
	}
	if progress.Challenge1Time == nil || *progress.Challenge1Time != 12.5 {
		t.Errorf("challenge 1 time not recorded: %+v", progress.Challenge1Time)
	}
	if progress.Finished || progress.TotalTime != nil || progress.Rank != nil {
		t.Errorf("mid-race update should not finish the player: %+v", progress)
	}
}

func TestUpdateProgressMissingRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, _ := startTestCompetition(t, db, 2)

	if _, err := svc.UpdateProgress(competition.ID, 9999, 1, 10); err == nil {
		t.Error("expected error for missing progress record")
	}
}

func TestUpdateProgressInvalidChallengeNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	for _, n := range []int{0, 6, -1} {
		if _, err := svc.UpdateProgress(competition.ID, players[0].ID, n, 10); err == nil {
			t.Errorf("expected error for challenge number %d", n)
		}
	}
}

func TestFinalChallengeFinishesPlayer(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	// Record only challenges 1 and 5; the gaps count as zero.
	if _, err := svc.UpdateProgress(competition.ID, players[0].ID, 1, 20); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	progress, err := svc.UpdateProgress(competition.ID, players[0].ID, 5, 30)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	if !progress.Finished {
		t.Error("final challenge should finish the player")
	}
	if progress.TotalTime == nil || *progress.TotalTime != 50 {
		t.Errorf("total time: got %+v, want 50", progress.TotalTime)
	}
	if progress.Rank == nil || *progress.Rank < 1 {
		t.Errorf("rank not assigned: %+v", progress.Rank)
	}
	if progress.FinishedAt == nil {
		t.Error("finished_at not stamped")
	}
	if progress.CurrentChallenge != models.ChallengeCount+1 {
		t.Errorf("current challenge: got %d, want %d", progress.CurrentChallenge, models.ChallengeCount+1)
	}
}

func TestRanksFollowFinishOrderNotTotalTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	slow, fast := players[0], players[1]
	for n := 1; n <= models.ChallengeCount; n++ {
		if _, err := svc.UpdateProgress(competition.ID, slow.ID, n, 60); err != nil {
			t.Fatalf("slow player challenge %d: %v", n, err)
		}
	}
	// The faster total time finishes second and still takes rank 2.
	for n := 1; n <= models.ChallengeCount; n++ {
		if _, err := svc.UpdateProgress(competition.ID, fast.ID, n, 10); err != nil {
			t.Fatalf("fast player challenge %d: %v", n, err)
		}
	}

	var slowProgress, fastProgress models.Progress
	db.Where("competition_id = ? AND registration_id = ?", competition.ID, slow.ID).First(&slowProgress)
	db.Where("competition_id = ? AND registration_id = ?", competition.ID, fast.ID).First(&fastProgress)

	if slowProgress.Rank == nil || *slowProgress.Rank != 1 {
		t.Errorf("first finisher rank: got %+v, want 1", slowProgress.Rank)
	}
	if fastProgress.Rank == nil || *fastProgress.Rank != 2 {
		t.Errorf("second finisher rank: got %+v, want 2", fastProgress.Rank)
	}
	if *slowProgress.TotalTime <= *fastProgress.TotalTime {
		t.Fatalf("test setup broken: slow total %v, fast total %v", *slowProgress.TotalTime, *fastProgress.TotalTime)
	}
}

func TestLastFinisherClosesCompetition(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	for _, p := range players {
		for n := 1; n <= models.ChallengeCount; n++ {
			if _, err := svc.UpdateProgress(competition.ID, p.ID, n, 10); err != nil {
				t.Fatalf("challenge %d: %v", n, err)
			}
		}
	}

	var reloaded models.Competition
	db.First(&reloaded, competition.ID)
	if reloaded.Status != models.CompetitionStatusFinished {
		t.Errorf("competition status: got %s, want %s", reloaded.Status, models.CompetitionStatusFinished)
	}
	if reloaded.FinishedAt == nil {
		t.Error("competition finished_at not stamped")
	}
}

func TestUpdateProgressAfterFinishRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	competition, players := startTestCompetition(t, db, 2)

	for n := 1; n <= models.ChallengeCount; n++ {
		if _, err := svc.UpdateProgress(competition.ID, players[0].ID, n, 10); err != nil {
			t.Fatalf("challenge %d: %v", n, err)
		}
	}
	if _, err := svc.UpdateProgress(competition.ID, players[0].ID, 5, 10); err == nil {
		t.Error("expected update after finish to fail")
	}
}

// Full booth walkthrough: three people book a five-seat session, two of them
// show up, and both race all five challenges at ten seconds each.
func TestFullSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	regSvc := NewRegistrationService(db)
	compSvc := NewCompetitionService(db)
	progSvc := NewProgressService(db)

	session := createTestSession(t, db, 5)

	var regs []*models.Registration
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		reg, err := regSvc.RegisterForSession(session.ID, email, "Player", "Acme")
		if err != nil {
			t.Fatalf("register %s: %v", email, err)
		}
		regs = append(regs, reg)
	}

	var reloaded models.Session
	db.First(&reloaded, session.ID)
	if reloaded.AvailableSeats != 2 {
		t.Fatalf("available seats after 3 registrations: got %d, want 2", reloaded.AvailableSeats)
	}

	for i, icon := range []string{"rocket", "star"} {
		if _, err := regSvc.CheckInPlayer(regs[i].ID, "Racer", icon); err != nil {
			t.Fatalf("check in: %v", err)
		}
	}

	competition, err := compSvc.StartCompetition(session.ID)
	if err != nil {
		t.Fatalf("StartCompetition: %v", err)
	}
	if competition.Status != models.CompetitionStatusCountdown {
		t.Errorf("status: got %s, want countdown", competition.Status)
	}

	var seeded []models.Progress
	db.Where("competition_id = ?", competition.ID).Find(&seeded)
	if len(seeded) != 2 {
		t.Fatalf("expected 2 progress records, got %d", len(seeded))
	}

	for _, reg := range regs[:2] {
		for n := 1; n <= models.ChallengeCount; n++ {
			if _, err := progSvc.UpdateProgress(competition.ID, reg.ID, n, 10); err != nil {
				t.Fatalf("challenge %d: %v", n, err)
			}
		}
	}

	var first, second models.Progress
	db.Where("competition_id = ? AND registration_id = ?", competition.ID, regs[0].ID).First(&first)
	db.Where("competition_id = ? AND registration_id = ?", competition.ID, regs[1].ID).First(&second)

	if first.TotalTime == nil || *first.TotalTime != 50 || first.Rank == nil || *first.Rank != 1 {
		t.Errorf("first finisher: total %+v rank %+v, want 50 and 1", first.TotalTime, first.Rank)
	}
	if second.TotalTime == nil || *second.TotalTime != 50 || second.Rank == nil || *second.Rank != 2 {
		t.Errorf("second finisher: total %+v rank %+v, want 50 and 2", second.TotalTime, second.Rank)
	}
}
