package services

import (
	"testing"

	"github.com/celiarozalenm/fn-quest-live/internal/models"
)

func TestListAvailableSessionsFiltering(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	sessions := []models.Session{
		{Date: "2025-02-09", StartTime: "10:00", TotalSeats: 5, AvailableSeats: 4, IsActive: true, ChallengeSet: "Day1"},
		{Date: "2025-02-09", StartTime: "09:00", TotalSeats: 5, AvailableSeats: 4, IsActive: true, IsReservedForWalkins: true, ChallengeSet: "Day1"},
		{Date: "2025-02-09", StartTime: "11:00", TotalSeats: 5, AvailableSeats: 0, IsActive: true, ChallengeSet: "Day1"},
		{Date: "2025-02-09", StartTime: "12:00", TotalSeats: 5, AvailableSeats: 4, IsActive: false, ChallengeSet: "Day1"},
		{Date: "2025-02-10", StartTime: "10:00", TotalSeats: 5, AvailableSeats: 4, IsActive: true, ChallengeSet: "Day2"},
	}
	for i := range sessions {
		if err := db.Create(&sessions[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	available, err := svc.ListAvailableSessions("2025-02-09")
	if err != nil {
		t.Fatalf("ListAvailableSessions: %v", err)
	}

	if len(available) != 1 {
		t.Fatalf("expected 1 available session, got %d", len(available))
	}
	if available[0].StartTime != "10:00" {
		t.Errorf("expected the 10:00 slot, got %s", available[0].StartTime)
	}
	for _, s := range available {
		if s.AvailableSeats <= 0 {
			t.Errorf("session %d returned with %d seats", s.ID, s.AvailableSeats)
		}
	}
}

func TestListSessionsSortedByStartTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	for _, start := range []string{"14:00", "09:00", "11:00"} {
		s := models.Session{Date: "2025-02-09", StartTime: start, TotalSeats: 5, AvailableSeats: 5, IsActive: true, ChallengeSet: "Day1"}
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sessions, err := svc.ListSessions("2025-02-09")
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	want := []string{"09:00", "11:00", "14:00"}
	for i, s := range sessions {
		if s.StartTime != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], s.StartTime)
		}
	}
}

func TestListSessionsNoDateReturnsAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	for _, date := range []string{"2025-02-09", "2025-02-10"} {
		s := models.Session{Date: date, StartTime: "10:00", TotalSeats: 5, AvailableSeats: 5, IsActive: true, ChallengeSet: "Day1"}
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sessions, err := svc.ListSessions("")
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(sessions))
	}
}

func TestGetSessionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	if _, err := svc.GetSession(42); err == nil {
		t.Error("expected error for missing session")
	}
}
