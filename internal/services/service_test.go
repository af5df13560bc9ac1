package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Session{},
		&models.Registration{},
		&models.Competition{},
		&models.Progress{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestSession(t *testing.T, db *gorm.DB, seats int) *models.Session {
	t.Helper()

	session := models.Session{
		Date:           "2025-02-09",
		StartTime:      "10:00",
		TotalSeats:     seats,
		AvailableSeats: seats,
		IsActive:       true,
		ChallengeSet:   "Day1",
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &session
}
