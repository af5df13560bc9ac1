package main

import (
	"fmt"
	"log"
	"os"

	"github.com/celiarozalenm/fn-quest-live/internal/config"
	"github.com/celiarozalenm/fn-quest-live/internal/database"
	"github.com/celiarozalenm/fn-quest-live/internal/models"

	"github.com/urfave/cli/v2"
)

// Seeds the event's session matrix: one session per day and start time, five
// seats each with one held back for walk-ins, and the first slot of every day
// reserved for walk-ins entirely.
func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "seed the Quest Live session matrix",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "date",
				Usage: "event dates (YYYY-MM-DD), repeatable; challenge sets are Day1..DayN in order",
				Value: cli.NewStringSlice("2025-02-09", "2025-02-10", "2025-02-11", "2025-02-12"),
			},
			&cli.StringSliceFlag{
				Name:  "time",
				Usage: "start times (HH:MM), repeatable",
				Value: cli.NewStringSlice("09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"),
			},
			&cli.IntFlag{
				Name:  "seats",
				Usage: "total seats per session",
				Value: 5,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()
	db := database.Connect(cfg)
	database.AutoMigrate(db)

	dates := c.StringSlice("date")
	times := c.StringSlice("time")
	seats := c.Int("seats")

	created, failed := 0, 0
	for i, date := range dates {
		challengeSet := fmt.Sprintf("Day%d", i+1)
		for j, startTime := range times {
			session := models.Session{
				Date:                 date,
				StartTime:            startTime,
				TotalSeats:           seats,
				AvailableSeats:       seats - 1, // one seat held for walk-ins
				IsReservedForWalkins: j == 0,
				IsActive:             true,
				ChallengeSet:         challengeSet,
			}

			if err := db.Create(&session).Error; err != nil {
				log.Printf("failed: %s %s: %v", date, startTime, err)
				failed++
				continue
			}
			log.Printf("created: %s %s (%s) - id %d", date, startTime, challengeSet, session.ID)
			created++
		}
	}

	log.Printf("done: %d created, %d failed", created, failed)
	return nil
}
