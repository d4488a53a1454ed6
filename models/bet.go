package models

import (
	"gorm.io/gorm"
	"time"
)

const (
	FormatSingle = "Single"
	FormatParlay = "Parlay"
)

// Bet is the parent grouping of one or more legs extracted from one post.
// A Single-format bet keeps its result on the leg and never has Status
// recomputed; only Parlay bets aggregate. Bets are never deleted.
type Bet struct {
	gorm.Model
	ID            uint   `gorm:"primaryKey"`
	CapperID      string `gorm:"index; size:64"`
	SourcePostID  string `gorm:"uniqueIndex; size:64"`
	BetFormat     string `gorm:"size:16"`
	Status        string `gorm:"size:32; default:PENDING_RESULT"`
	PostTimestamp time.Time
	Legs          []Leg
}
