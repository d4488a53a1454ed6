package scheduler

import (
	"capperRanksBot/core"
	"capperRanksBot/models"
	"capperRanksBot/scheduler/scheduler_jobs"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SetupCron registers the recurring jobs: post scans every half hour and a
// grading pass at the top of every hour.
func SetupCron(s *discordgo.Session, db *gorm.DB, cfg *core.Config) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 */30 * * * *", func() { scheduler_jobs.CheckNewPosts(s, db, cfg) })
	if err != nil {
		db.Create(&models.ErrorLog{Context: "CRON ERR", Message: err.Error()})
	}

	_, err = c.AddFunc("0 0 * * * *", func() { scheduler_jobs.CheckPendingLegs(s, db, cfg) })
	if err != nil {
		db.Create(&models.ErrorLog{Context: "CRON ERR", Message: err.Error()})
	}

	c.Start()
}
