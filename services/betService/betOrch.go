package betService

import (
	"errors"
	"log"
	"strings"
	"time"

	"capperRanksBot/models"
	"capperRanksBot/services/pickService"

	"gorm.io/gorm"
)

// StoreBetAndLegs persists one detected pick. Single-leg picks a capper has
// already posted the same day are suppressed; a replayed post hits the
// source-post unique index and is likewise dropped. Returns (nil, nil) in
// both benign cases.
func StoreBetAndLegs(db *gorm.DB, capperID string, postID string, postTime time.Time, detection *pickService.Detection) (*models.Bet, error) {
	if detection == nil || len(detection.Legs) == 0 {
		return nil, nil
	}

	if len(detection.Legs) == 1 {
		dup, err := hasSameDayDuplicate(db, capperID, postTime, detection.Legs[0])
		if err != nil {
			return nil, err
		}
		if dup {
			log.Printf("skipping duplicate pick from capper %s: %s %s", capperID, detection.Legs[0].Subject, detection.Legs[0].BetType)
			return nil, nil
		}
	}

	format := models.FormatSingle
	if detection.IsParlay && len(detection.Legs) > 1 {
		format = models.FormatParlay
	}

	bet := models.Bet{
		CapperID:      capperID,
		SourcePostID:  postID,
		BetFormat:     format,
		Status:        models.StatusPending,
		PostTimestamp: postTime,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bet).Error; err != nil {
			return err
		}
		for i := range detection.Legs {
			leg := detection.Legs[i]
			leg.BetID = bet.ID
			leg.Status = models.StatusPending
			if err := tx.Create(&leg).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			log.Printf("post %s already stored, skipping", postID)
			return nil, nil
		}
		return nil, err
	}
	return &bet, nil
}

// hasSameDayDuplicate checks whether the capper already has a leg with the
// same subject, market, line and qualifier on the same calendar day.
func hasSameDayDuplicate(db *gorm.DB, capperID string, postTime time.Time, leg models.Leg) (bool, error) {
	dayStart := time.Date(postTime.Year(), postTime.Month(), postTime.Day(), 0, 0, 0, 0, postTime.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	query := db.Model(&models.Leg{}).
		Joins("JOIN bets ON bets.id = legs.bet_id").
		Where("bets.capper_id = ?", capperID).
		Where("bets.post_timestamp >= ? AND bets.post_timestamp < ?", dayStart, dayEnd).
		Where("legs.subject = ? AND legs.bet_type = ? AND legs.bet_qualifier = ?", leg.Subject, leg.BetType, leg.BetQualifier)
	if leg.Line == nil {
		query = query.Where("legs.line IS NULL")
	} else {
		query = query.Where("legs.line = ?", *leg.Line)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// GetPendingLegs returns every leg still awaiting a result, with its parent
// bet loaded for the post timestamp.
func GetPendingLegs(db *gorm.DB) ([]models.Leg, error) {
	var legs []models.Leg
	err := db.Preload("Bet").Where("status = ?", models.StatusPending).Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

// UpdateLegStatus writes a leg's final grade and recomputes the parent bet.
func UpdateLegStatus(db *gorm.DB, legID uint, status string) error {
	var leg models.Leg
	if err := db.First(&leg, legID).Error; err != nil {
		return err
	}

	if err := db.Model(&leg).Update("status", status).Error; err != nil {
		return err
	}
	return UpdateBetStatusFromLegs(db, leg.BetID)
}

// UpdateBetStatusFromLegs rolls leg grades up to a Parlay parent. Single
// bets keep their result on the leg and are never recomputed.
func UpdateBetStatusFromLegs(db *gorm.DB, betID uint) error {
	var bet models.Bet
	if err := db.First(&bet, betID).Error; err != nil {
		return err
	}
	if bet.BetFormat != models.FormatParlay {
		return nil
	}

	var legs []models.Leg
	if err := db.Where("bet_id = ?", betID).Find(&legs).Error; err != nil {
		return err
	}

	statuses := make([]string, len(legs))
	for i, leg := range legs {
		statuses[i] = leg.Status
	}

	status, settled := ComputeParlayStatus(statuses)
	if !settled {
		return nil
	}
	return db.Model(&bet).Update("status", status).Error
}

// ComputeParlayStatus aggregates leg grades. Settlement waits until no leg
// is pending; a single loss sinks the ticket, all wins cash it, all pushes
// refund it. Mixed WIN/PUSH grades as a loss, matching the long-standing
// behavior.
func ComputeParlayStatus(statuses []string) (string, bool) {
	if len(statuses) == 0 {
		return "", false
	}

	wins, pushes := 0, 0
	for _, s := range statuses {
		switch s {
		case models.StatusPending, models.StatusGameNotFound:
			return "", false
		case models.StatusLoss, models.StatusError:
			return models.StatusLoss, true
		case models.StatusWin:
			wins++
		case models.StatusPush:
			pushes++
		}
	}

	if pushes == len(statuses) {
		return models.StatusPush, true
	}
	if wins == len(statuses) {
		return models.StatusWin, true
	}
	return models.StatusLoss, true
}
