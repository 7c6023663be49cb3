package jobs

import (
	"context"
	"log"
	"time"

	"hotelflow/utils"

	"github.com/robfig/cron/v3"
)

// TrialExpirer suspends hotels whose trial window has passed.
type TrialExpirer interface {
	ExpireTrials(ctx context.Context, now time.Time) (int64, error)
}

// OverdueSweeper flags open maintenance tickets past their schedule.
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

var (
	trialExpirer   TrialExpirer
	overdueSweeper OverdueSweeper
)

// SetTrialExpirer installs the trial-expiry implementation.
func SetTrialExpirer(e TrialExpirer) {
	trialExpirer = e
}

// SetOverdueSweeper installs the overdue-ticket implementation.
func SetOverdueSweeper(s OverdueSweeper) {
	overdueSweeper = s
}

// InitCronJobs registers the scheduled sweeps and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Trial expiry runs once a day at midnight.
	_, err := c.AddFunc("0 0 * * *", func() {
		if trialExpirer == nil {
			utils.LogError("Trial expiry sweep skipped: no implementation installed")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		suspended, err := trialExpirer.ExpireTrials(ctx, time.Now())
		if err != nil {
			utils.LogError("Trial expiry sweep failed: %v", err)
			return
		}
		if suspended > 0 {
			utils.LogInfo("Trial expiry sweep suspended %d hotels", suspended)
		}
	})
	if err != nil {
		return err
	}

	// Overdue tickets are re-checked hourly.
	_, err = c.AddFunc("0 * * * *", func() {
		if overdueSweeper == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		overdue, err := overdueSweeper.SweepOverdue(ctx, time.Now())
		if err != nil {
			utils.LogError("Overdue ticket sweep failed: %v", err)
			return
		}
		if overdue > 0 {
			utils.LogInfo("Overdue ticket sweep found %d open tickets past schedule", overdue)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
