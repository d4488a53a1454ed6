package models

import "gorm.io/gorm"

const (
	StatusPending      = "PENDING_RESULT"
	StatusWin          = "WIN"
	StatusLoss         = "LOSS"
	StatusPush         = "PUSH"
	StatusError        = "ERROR"
	StatusGameNotFound = "GAME_NOT_FOUND"
	// StatusNeedsGrading is a sentinel for legs we have no grading logic
	// for yet. It is never persisted; the leg stays PENDING_RESULT.
	StatusNeedsGrading = "NEEDS_GRADING_LOGIC"
)

const (
	BetTypeMoneyline  = "Moneyline"
	BetTypeSpread     = "Spread"
	BetTypeTotal      = "Total"
	BetTypePlayerProp = "PlayerProp"
)

const LeagueMLB = "MLB"

// Leg is a single betting proposition. (Subject, BetType, Line, BetQualifier)
// identify a pick's semantic content for same-day duplicate detection.
type Leg struct {
	gorm.Model
	ID           uint `gorm:"primaryKey"`
	BetID        uint
	Bet          Bet      `gorm:"foreignKey:BetID"`
	SportLeague  string   `gorm:"size:8"`
	Subject      string   `gorm:"size:128"`
	BetType      string   `gorm:"size:16"`
	Line         *float64
	Odds         *int
	BetQualifier string `gorm:"size:64"`
	Status       string `gorm:"size:32; default:PENDING_RESULT"`
}
