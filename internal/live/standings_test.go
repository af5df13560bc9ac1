package live

import (
	"testing"

	"github.com/celiarozalenm/fn-quest-live/internal/models"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func TestSortLiveOrdering(t *testing.T) {
	standings := []Standing{
		{Progress: models.Progress{RegistrationID: 1, CurrentChallenge: 2}},
		{Progress: models.Progress{RegistrationID: 2, Finished: true, TotalTime: fptr(80)}},
		{Progress: models.Progress{RegistrationID: 3, CurrentChallenge: 4}},
		{Progress: models.Progress{RegistrationID: 4, Finished: true, TotalTime: fptr(55)}},
	}

	SortLive(standings)

	want := []uint{4, 2, 3, 1}
	for i, id := range want {
		if standings[i].RegistrationID != id {
			t.Fatalf("position %d: got registration %d, want %d", i, standings[i].RegistrationID, id)
		}
	}
}

func TestSortLiveStableForTies(t *testing.T) {
	standings := []Standing{
		{Progress: models.Progress{RegistrationID: 1, CurrentChallenge: 3}},
		{Progress: models.Progress{RegistrationID: 2, CurrentChallenge: 3}},
	}

	SortLive(standings)

	if standings[0].RegistrationID != 1 || standings[1].RegistrationID != 2 {
		t.Errorf("tied players reordered: got %d, %d", standings[0].RegistrationID, standings[1].RegistrationID)
	}
}

func TestSortResultsByRank(t *testing.T) {
	// Finish-order ranks win over raw times: the rank-1 player may have a
	// slower total than the rank-2 player.
	standings := []Standing{
		{Progress: models.Progress{RegistrationID: 1, Finished: true, TotalTime: fptr(40), Rank: iptr(2)}},
		{Progress: models.Progress{RegistrationID: 2, CurrentChallenge: 3}},
		{Progress: models.Progress{RegistrationID: 3, Finished: true, TotalTime: fptr(60), Rank: iptr(1)}},
	}

	SortResults(standings)

	want := []uint{3, 1, 2}
	for i, id := range want {
		if standings[i].RegistrationID != id {
			t.Fatalf("position %d: got registration %d, want %d", i, standings[i].RegistrationID, id)
		}
	}
}

func TestSortResultsUnrankedFallsBackToTime(t *testing.T) {
	standings := []Standing{
		{Progress: models.Progress{RegistrationID: 1, CurrentChallenge: 2}},
		{Progress: models.Progress{RegistrationID: 2, Finished: true, TotalTime: fptr(90)}},
		{Progress: models.Progress{RegistrationID: 3, Finished: true, TotalTime: fptr(45)}},
	}

	SortResults(standings)

	want := []uint{3, 2, 1}
	for i, id := range want {
		if standings[i].RegistrationID != id {
			t.Fatalf("position %d: got registration %d, want %d", i, standings[i].RegistrationID, id)
		}
	}
}

func TestAllFinished(t *testing.T) {
	if AllFinished(nil) {
		t.Error("empty progress should not count as finished")
	}
	if AllFinished([]models.Progress{{Finished: true}, {Finished: false}}) {
		t.Error("one unfinished player should block completion")
	}
	if !AllFinished([]models.Progress{{Finished: true}, {Finished: true}}) {
		t.Error("all finished players should report true")
	}
}

func TestWithPlayers(t *testing.T) {
	registrations := []models.Registration{
		{ID: 10, Name: "Ana"},
		{ID: 11, Name: "Bram"},
	}

	progress := []models.Progress{
		{RegistrationID: 11},
		{RegistrationID: 10},
		{RegistrationID: 99},
	}

	standings := WithPlayers(progress, registrations)
	if len(standings) != 3 {
		t.Fatalf("got %d standings, want 3", len(standings))
	}
	if standings[0].Player == nil || standings[0].Player.Name != "Bram" {
		t.Errorf("standing 0: want player Bram, got %+v", standings[0].Player)
	}
	if standings[1].Player == nil || standings[1].Player.Name != "Ana" {
		t.Errorf("standing 1: want player Ana, got %+v", standings[1].Player)
	}
	if standings[2].Player != nil {
		t.Errorf("standing 2: want nil player for unknown registration, got %+v", standings[2].Player)
	}
}
