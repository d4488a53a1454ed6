package scheduler_jobs

import (
	"fmt"
	"runtime/debug"

	"capperRanksBot/core"
	"capperRanksBot/services/common"
	"capperRanksBot/services/scanService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// CheckNewPosts runs one scan cycle across every tracked capper.
func CheckNewPosts(s *discordgo.Session, db *gorm.DB, cfg *core.Config) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			common.SendError(db, "SCAN PANIC", fmt.Errorf("recovered: %v", r))
		}
	}()

	scanService.ScanAll(s, db, cfg)
}
