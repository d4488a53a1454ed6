package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"capperRanksBot/core"
	"capperRanksBot/models"
	"capperRanksBot/services/betService"
	"capperRanksBot/services/common"
	"capperRanksBot/services/gradeService"
	"capperRanksBot/services/messageService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// Grades that settle a leg. Anything else leaves it pending for retry.
var terminalStatuses = []string{
	models.StatusWin,
	models.StatusLoss,
	models.StatusPush,
	models.StatusError,
}

// CheckPendingLegs grades every leg still awaiting a result. Only settled
// grades are written back; legs whose games haven't finished, or whose games
// can't be located yet, stay pending and get retried next cycle.
func CheckPendingLegs(s *discordgo.Session, db *gorm.DB, cfg *core.Config) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			common.SendError(db, "GRADE PANIC", fmt.Errorf("recovered: %v", r))
		}
	}()

	legs, err := betService.GetPendingLegs(db)
	if err != nil {
		common.SendError(db, "GRADE ERR", err)
		return
	}

	for i, leg := range legs {
		if i > 0 {
			time.Sleep(time.Second)
		}

		result := gradeService.GradeLeg(leg, leg.Bet.PostTimestamp)
		if !common.Contains(terminalStatuses, result.Status) {
			log.Printf("leg %d still %s: %s", leg.ID, result.Status, result.Details)
			continue
		}

		if err := betService.UpdateLegStatus(db, leg.ID, result.Status); err != nil {
			common.SendError(db, "GRADE ERR", fmt.Errorf("leg %d: %w", leg.ID, err))
			continue
		}
		log.Printf("graded leg %d: %s (%s)", leg.ID, result.Status, result.Details)
		messageService.AnnounceGrade(s, cfg, leg, result.Status, result.Details)
	}
}
