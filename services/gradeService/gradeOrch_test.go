package gradeService

import (
	"testing"
	"time"

	"capperRanksBot/models"
	"capperRanksBot/models/external"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestCompareOverUnder(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		line     float64
		over     bool
		expected string
	}{
		{"over cashes above the line", 9, 8.5, true, models.StatusWin},
		{"over loses below the line", 8, 8.5, true, models.StatusLoss},
		{"under cashes below the line", 8, 8.5, false, models.StatusWin},
		{"under loses above the line", 9, 8.5, false, models.StatusLoss},
		{"whole line lands exactly for over", 8, 8, true, models.StatusPush},
		{"whole line lands exactly for under", 8, 8, false, models.StatusPush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, compareOverUnder(tt.actual, tt.line, tt.over), tt.name)
		})
	}
}

func TestGradeSpread(t *testing.T) {
	tests := []struct {
		name      string
		subjScore int
		oppScore  int
		line      float64
		expected  string
	}{
		{"favorite covers", 7, 2, -1.5, models.StatusWin},
		{"favorite wins but misses cover", 3, 2, -1.5, models.StatusLoss},
		{"underdog covers in a loss", 3, 4, 1.5, models.StatusWin},
		{"underdog blown out", 1, 6, 1.5, models.StatusLoss},
		{"whole number spread lands exactly", 4, 6, 2, models.StatusPush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gradeSpread(tt.subjScore, tt.oppScore, tt.line)
			assertEqual(t, tt.expected, result.Status, tt.name)
		})
	}
}

func TestGradeMoneyline(t *testing.T) {
	assertEqual(t, models.StatusWin, gradeMoneyline(5, 3).Status, "winner")
	assertEqual(t, models.StatusLoss, gradeMoneyline(3, 5).Status, "loser")
	assertEqual(t, models.StatusPush, gradeMoneyline(3, 3).Status, "tie refunds")
}

func intPtr(n int) *int { return &n }

func TestFirstFiveRuns(t *testing.T) {
	t.Run("fewer than five innings is not gradeable", func(t *testing.T) {
		linescore := external.MLB_Linescore{
			Innings: []external.MLB_Inning{
				{Num: 1, Home: external.MLB_InningHalf{Runs: intPtr(1)}, Away: external.MLB_InningHalf{Runs: intPtr(0)}},
				{Num: 2, Home: external.MLB_InningHalf{Runs: intPtr(0)}, Away: external.MLB_InningHalf{Runs: intPtr(2)}},
			},
		}
		_, _, ok := firstFiveRuns(linescore)
		assertEqual(t, false, ok, "short linescore")
	})

	t.Run("nine inning game sums only the first five", func(t *testing.T) {
		var innings []external.MLB_Inning
		for i := 1; i <= 9; i++ {
			innings = append(innings, external.MLB_Inning{
				Num:  i,
				Home: external.MLB_InningHalf{Runs: intPtr(1)},
				Away: external.MLB_InningHalf{Runs: intPtr(2)},
			})
		}
		home, away, ok := firstFiveRuns(external.MLB_Linescore{Innings: innings})
		assertEqual(t, true, ok, "ok")
		assertEqual(t, 5, home, "home runs through five")
		assertEqual(t, 10, away, "away runs through five")
	})

	t.Run("missing half-inning counts as zero", func(t *testing.T) {
		var innings []external.MLB_Inning
		for i := 1; i <= 5; i++ {
			inning := external.MLB_Inning{Num: i, Away: external.MLB_InningHalf{Runs: intPtr(1)}}
			if i < 5 {
				inning.Home = external.MLB_InningHalf{Runs: intPtr(1)}
			}
			innings = append(innings, inning)
		}
		home, away, ok := firstFiveRuns(external.MLB_Linescore{Innings: innings})
		assertEqual(t, true, ok, "ok")
		assertEqual(t, 4, home, "home skipped the bottom fifth")
		assertEqual(t, 5, away, "away")
	})
}

func TestSplitQualifier(t *testing.T) {
	tests := []struct {
		qualifier      string
		expectedPhrase string
		expectedOver   bool
	}{
		{"Over Total Bases", "Total Bases", true},
		{"Under Home Runs", "Home Runs", false},
		{"Hits", "Hits", true},
	}

	for _, tt := range tests {
		phrase, over := splitQualifier(tt.qualifier)
		assertEqual(t, tt.expectedPhrase, phrase, tt.qualifier)
		assertEqual(t, tt.expectedOver, over, tt.qualifier)
	}
}

func TestStatKeyFor(t *testing.T) {
	tests := []struct {
		phrase      string
		expectedKey string
		expectedOK  bool
	}{
		{"Total Bases", "batting.totalBases", true},
		{"total bases", "batting.totalBases", true},
		{"Home Runs", "batting.homeRuns", true},
		{"Home Run", "batting.homeRuns", true},
		{"RBIs", "batting.rbi", true},
		{"Pitcher Strikeouts", "pitching.strikeOuts", true},
		{"Earned Runs", "pitching.earnedRuns", true},
		{"Triples", "", false},
		{"Outs", "", false},
	}

	for _, tt := range tests {
		key, ok := statKeyFor(tt.phrase)
		assertEqual(t, tt.expectedOK, ok, tt.phrase)
		assertEqual(t, tt.expectedKey, key, tt.phrase)
	}
}

func TestStatValue(t *testing.T) {
	stats := external.MLB_PlayerStats{
		Batting:  external.MLB_BattingStats{TotalBases: 3, HomeRuns: 1, Hits: 2},
		Pitching: external.MLB_PitchingStats{StrikeOuts: 7, EarnedRuns: 2},
	}

	tests := []struct {
		key        string
		expected   float64
		expectedOK bool
	}{
		{"batting.totalBases", 3, true},
		{"batting.homeRuns", 1, true},
		{"batting.hits", 2, true},
		{"pitching.strikeOuts", 7, true},
		{"pitching.earnedRuns", 2, true},
		{"fielding.assists", 0, false},
	}

	for _, tt := range tests {
		val, ok := statValue(stats, tt.key)
		assertEqual(t, tt.expectedOK, ok, tt.key)
		assertEqual(t, tt.expected, val, tt.key)
	}
}

func TestGradeLegUnknownLeague(t *testing.T) {
	leg := models.Leg{SportLeague: "NBA", Subject: "lakers", BetType: models.BetTypeMoneyline}
	result := GradeLeg(leg, time.Now())
	assertEqual(t, models.StatusNeedsGrading, result.Status, "unknown league stays ungraded")
}
