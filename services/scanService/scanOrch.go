package scanService

import (
	"fmt"
	"log"
	"time"

	"capperRanksBot/core"
	"capperRanksBot/models"
	"capperRanksBot/services/betService"
	"capperRanksBot/services/capperService"
	"capperRanksBot/services/common"
	"capperRanksBot/services/extService"
	"capperRanksBot/services/messageService"
	"capperRanksBot/services/ocrService"
	"capperRanksBot/services/pickService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// pollDelay spaces out external API calls so a scan of many cappers stays
// under rate limits.
const pollDelay = time.Second

// ScanAll walks every configured capper in sequence. One capper failing is
// logged and skipped; the rest of the batch still runs.
func ScanAll(s *discordgo.Session, db *gorm.DB, cfg *core.Config) {
	cappers := resolveCappers(db, cfg)
	for i, capper := range cappers {
		if i > 0 {
			time.Sleep(pollDelay)
		}
		if err := scanCapper(s, db, cfg, capper); err != nil {
			common.SendError(db, "SCAN ERR", fmt.Errorf("capper %s: %w", capper.Username, err))
		}
	}
}

// resolveCappers makes sure every configured handle has a tracked capper
// row, resolving unknown handles through the X API.
func resolveCappers(db *gorm.DB, cfg *core.Config) []models.Capper {
	var cappers []models.Capper
	for _, username := range cfg.CapperUsernames {
		capper, err := capperService.GetCapperByUsername(db, username)
		if err != nil {
			common.SendError(db, "SCAN ERR", fmt.Errorf("loading capper %s: %w", username, err))
			continue
		}
		if capper == nil {
			user, err := extService.ResolveUser(cfg, username)
			if err != nil {
				common.SendError(db, "SCAN ERR", fmt.Errorf("resolving capper %s: %w", username, err))
				continue
			}
			capper, err = capperService.AddCapper(db, user.ID, username)
			if err != nil {
				common.SendError(db, "SCAN ERR", fmt.Errorf("adding capper %s: %w", username, err))
				continue
			}
		}
		cappers = append(cappers, *capper)
	}
	return cappers
}

func scanCapper(s *discordgo.Session, db *gorm.DB, cfg *core.Config, capper models.Capper) error {
	posts, err := extService.GetNewPosts(cfg, capper.CapperID, capper.LastSeenPostID)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return nil
	}

	for _, post := range posts {
		detection := pickService.DetectPick(post.Text, extService.LookupPlayer)

		if detection == nil {
			for _, mediaURL := range post.MediaURLs {
				time.Sleep(pollDelay)
				raw, err := ocrService.FetchAndOCR(cfg, mediaURL)
				if err != nil {
					common.SendError(db, "OCR ERR", fmt.Errorf("post %s: %w", post.ID, err))
					continue
				}
				detection = pickService.DetectPick(ocrService.Normalize(raw), extService.LookupPlayer)
				if detection != nil {
					break
				}
			}
		}

		if detection != nil {
			bet, err := betService.StoreBetAndLegs(db, capper.CapperID, post.ID, post.CreatedAt, detection)
			if err != nil {
				common.SendError(db, "SCAN ERR", fmt.Errorf("storing post %s: %w", post.ID, err))
			} else if bet != nil {
				log.Printf("stored %s bet from @%s with %d leg(s)", bet.BetFormat, capper.Username, len(detection.Legs))
				messageService.AnnouncePick(s, cfg, capper.Username, bet, detection.Legs)
			}
		}
	}

	// Checkpoint even when nothing was stored so processed posts aren't
	// refetched next cycle.
	return capperService.UpdateLastSeenPostID(db, capper.ID, posts[len(posts)-1].ID)
}
