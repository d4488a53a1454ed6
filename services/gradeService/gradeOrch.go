package gradeService

import (
	"fmt"
	"strings"
	"time"

	"capperRanksBot/models"
	"capperRanksBot/models/external"
	"capperRanksBot/services/extService"
	"capperRanksBot/services/lexicon"
)

// GradeResult carries a leg's computed status plus a human-readable note for
// the announcement message.
type GradeResult struct {
	Status  string
	Details string
}

// GradeLeg resolves one leg against the league's official results. The
// schedule window runs from the post date through the next day so late-night
// posts about tomorrow's slate still find their game.
func GradeLeg(leg models.Leg, postTime time.Time) GradeResult {
	if leg.SportLeague != models.LeagueMLB {
		return GradeResult{Status: models.StatusNeedsGrading, Details: fmt.Sprintf("no grading logic for league %s", leg.SportLeague)}
	}

	if leg.BetType == models.BetTypePlayerProp {
		return gradePlayerProp(leg, postTime)
	}
	return gradeTeamLeg(leg, postTime)
}

func scheduleWindow(postTime time.Time) (string, string) {
	start := postTime.Format("2006-01-02")
	end := postTime.Add(24 * time.Hour).Format("2006-01-02")
	return start, end
}

func gradeTeamLeg(leg models.Leg, postTime time.Time) GradeResult {
	start, end := scheduleWindow(postTime)
	games, err := extService.GetSchedule(start, end)
	if err != nil {
		return GradeResult{Status: models.StatusError, Details: fmt.Sprintf("schedule lookup failed: %v", err)}
	}

	var game *external.MLB_Game
	var subjectIsHome bool
	for i := range games {
		if lexicon.TeamMatches(leg.Subject, games[i].Teams.Home.Team.Name) {
			game = &games[i]
			subjectIsHome = true
			break
		}
		if lexicon.TeamMatches(leg.Subject, games[i].Teams.Away.Team.Name) {
			game = &games[i]
			subjectIsHome = false
			break
		}
	}
	if game == nil {
		return GradeResult{Status: models.StatusGameNotFound, Details: fmt.Sprintf("no game found for %s", leg.Subject)}
	}
	if game.Status.AbstractGameState != "Final" {
		return GradeResult{Status: models.StatusPending, Details: fmt.Sprintf("game %d not final (%s)", game.GamePk, game.Status.DetailedState)}
	}

	var subjScore, oppScore int
	if strings.Contains(leg.BetQualifier, "First 5") {
		homeRuns, awayRuns, ok := firstFiveRuns(game.Linescore)
		if !ok {
			return GradeResult{Status: models.StatusPending, Details: fmt.Sprintf("game %d linescore incomplete", game.GamePk)}
		}
		subjScore, oppScore = homeRuns, awayRuns
	} else {
		if game.Teams.Home.Score == nil || game.Teams.Away.Score == nil {
			return GradeResult{Status: models.StatusError, Details: fmt.Sprintf("game %d final but missing scores", game.GamePk)}
		}
		subjScore, oppScore = *game.Teams.Home.Score, *game.Teams.Away.Score
	}
	if !subjectIsHome {
		subjScore, oppScore = oppScore, subjScore
	}

	switch leg.BetType {
	case models.BetTypeMoneyline:
		return gradeMoneyline(subjScore, oppScore)
	case models.BetTypeTotal:
		if leg.Line == nil {
			return GradeResult{Status: models.StatusError, Details: "total bet missing a line"}
		}
		over := strings.HasPrefix(leg.BetQualifier, "Over")
		status := compareOverUnder(float64(subjScore+oppScore), *leg.Line, over)
		return GradeResult{Status: status, Details: fmt.Sprintf("total %d vs line %.1f", subjScore+oppScore, *leg.Line)}
	case models.BetTypeSpread:
		if leg.Line == nil {
			return GradeResult{Status: models.StatusError, Details: "spread bet missing a line"}
		}
		return gradeSpread(subjScore, oppScore, *leg.Line)
	}

	return GradeResult{Status: models.StatusNeedsGrading, Details: fmt.Sprintf("no grading logic for bet type %s", leg.BetType)}
}

func gradeMoneyline(subjScore int, oppScore int) GradeResult {
	details := fmt.Sprintf("final %d-%d", subjScore, oppScore)
	switch {
	case subjScore == oppScore:
		return GradeResult{Status: models.StatusPush, Details: details}
	case subjScore > oppScore:
		return GradeResult{Status: models.StatusWin, Details: details}
	}
	return GradeResult{Status: models.StatusLoss, Details: details}
}

func gradeSpread(subjScore int, oppScore int, line float64) GradeResult {
	diff := float64(subjScore-oppScore) + line
	details := fmt.Sprintf("final %d-%d with line %+.1f", subjScore, oppScore, line)
	switch {
	case diff == 0:
		return GradeResult{Status: models.StatusPush, Details: details}
	case diff > 0:
		return GradeResult{Status: models.StatusWin, Details: details}
	}
	return GradeResult{Status: models.StatusLoss, Details: details}
}

// firstFiveRuns sums innings 1 through 5. A game with fewer than five
// recorded innings is not yet gradeable even if marked final.
func firstFiveRuns(linescore external.MLB_Linescore) (int, int, bool) {
	if len(linescore.Innings) < 5 {
		return 0, 0, false
	}

	var home, away int
	for _, inning := range linescore.Innings {
		if inning.Num < 1 || inning.Num > 5 {
			continue
		}
		if inning.Home.Runs != nil {
			home += *inning.Home.Runs
		}
		if inning.Away.Runs != nil {
			away += *inning.Away.Runs
		}
	}
	return home, away, true
}

func gradePlayerProp(leg models.Leg, postTime time.Time) GradeResult {
	if leg.Line == nil {
		return GradeResult{Status: models.StatusError, Details: "player prop missing a line"}
	}

	person, err := extService.LookupPlayer(leg.Subject)
	if err != nil {
		return GradeResult{Status: models.StatusError, Details: fmt.Sprintf("player lookup failed: %v", err)}
	}
	if person == nil {
		return GradeResult{Status: models.StatusGameNotFound, Details: fmt.Sprintf("player %s not found", leg.Subject)}
	}

	start, end := scheduleWindow(postTime)
	games, err := extService.GetSchedule(start, end)
	if err != nil {
		return GradeResult{Status: models.StatusError, Details: fmt.Sprintf("schedule lookup failed: %v", err)}
	}

	var game *external.MLB_Game
	for i := range games {
		if games[i].Teams.Home.Team.ID == person.CurrentTeam.ID ||
			games[i].Teams.Away.Team.ID == person.CurrentTeam.ID ||
			lexicon.TeamMatches(person.CurrentTeam.Name, games[i].Teams.Home.Team.Name) ||
			lexicon.TeamMatches(person.CurrentTeam.Name, games[i].Teams.Away.Team.Name) {
			game = &games[i]
			break
		}
	}
	if game == nil {
		return GradeResult{Status: models.StatusGameNotFound, Details: fmt.Sprintf("no game found for %s", person.FullName)}
	}
	if game.Status.AbstractGameState != "Final" {
		return GradeResult{Status: models.StatusPending, Details: fmt.Sprintf("game %d not final (%s)", game.GamePk, game.Status.DetailedState)}
	}

	box, err := extService.GetBoxscore(game.GamePk)
	if err != nil {
		return GradeResult{Status: models.StatusError, Details: fmt.Sprintf("boxscore lookup failed: %v", err)}
	}

	statPhrase, over := splitQualifier(leg.BetQualifier)
	key, ok := statKeyFor(statPhrase)
	if !ok {
		return GradeResult{Status: models.StatusNeedsGrading, Details: fmt.Sprintf("no grading logic for stat %q", statPhrase)}
	}

	player, found := findBoxscorePlayer(box, person.ID)
	if !found {
		return GradeResult{Status: models.StatusGameNotFound, Details: fmt.Sprintf("%s not in game %d boxscore", person.FullName, game.GamePk)}
	}

	actual, ok := statValue(player.Stats, key)
	if !ok {
		return GradeResult{Status: models.StatusNeedsGrading, Details: fmt.Sprintf("no grading logic for stat %q", statPhrase)}
	}

	status := compareOverUnder(actual, *leg.Line, over)
	return GradeResult{Status: status, Details: fmt.Sprintf("%s recorded %.0f %s vs line %.1f", person.FullName, actual, statPhrase, *leg.Line)}
}

// splitQualifier separates the direction word from the stat phrase in a
// qualifier like "Over Total Bases".
func splitQualifier(qualifier string) (string, bool) {
	over := true
	phrase := qualifier
	if strings.HasPrefix(qualifier, "Over ") {
		phrase = qualifier[len("Over "):]
	} else if strings.HasPrefix(qualifier, "Under ") {
		phrase = qualifier[len("Under "):]
		over = false
	}
	return strings.TrimSpace(phrase), over
}

// statKeyFor maps a stat phrase to its boxscore field. Anything unmapped
// stays ungraded rather than guessing.
func statKeyFor(phrase string) (string, bool) {
	switch strings.ToLower(phrase) {
	case "total bases":
		return "batting.totalBases", true
	case "hits":
		return "batting.hits", true
	case "home run", "home runs":
		return "batting.homeRuns", true
	case "rbi", "rbis":
		return "batting.rbi", true
	case "runs":
		return "batting.runs", true
	case "stolen bases":
		return "batting.stolenBases", true
	case "walks":
		return "batting.baseOnBalls", true
	case "strikeouts":
		return "batting.strikeOuts", true
	case "pitcher strikeouts":
		return "pitching.strikeOuts", true
	case "pitcher walks":
		return "pitching.baseOnBalls", true
	case "earned runs":
		return "pitching.earnedRuns", true
	case "hits allowed":
		return "pitching.hits", true
	}
	return "", false
}

func statValue(stats external.MLB_PlayerStats, key string) (float64, bool) {
	switch key {
	case "batting.totalBases":
		return float64(stats.Batting.TotalBases), true
	case "batting.hits":
		return float64(stats.Batting.Hits), true
	case "batting.homeRuns":
		return float64(stats.Batting.HomeRuns), true
	case "batting.rbi":
		return float64(stats.Batting.RBI), true
	case "batting.runs":
		return float64(stats.Batting.Runs), true
	case "batting.stolenBases":
		return float64(stats.Batting.StolenBases), true
	case "batting.baseOnBalls":
		return float64(stats.Batting.BaseOnBalls), true
	case "batting.strikeOuts":
		return float64(stats.Batting.StrikeOuts), true
	case "pitching.strikeOuts":
		return float64(stats.Pitching.StrikeOuts), true
	case "pitching.baseOnBalls":
		return float64(stats.Pitching.BaseOnBalls), true
	case "pitching.earnedRuns":
		return float64(stats.Pitching.EarnedRuns), true
	case "pitching.hits":
		return float64(stats.Pitching.Hits), true
	}
	return 0, false
}

func findBoxscorePlayer(box *external.MLB_Boxscore, personID int) (external.MLB_BoxscorePlayer, bool) {
	for _, side := range []external.MLB_BoxscoreTeam{box.Teams.Home, box.Teams.Away} {
		for _, player := range side.Players {
			if player.Person.ID == personID {
				return player, true
			}
		}
	}
	return external.MLB_BoxscorePlayer{}, false
}

// compareOverUnder grades an actual result against a line. Landing exactly
// on the line pushes regardless of direction.
func compareOverUnder(actual float64, line float64, over bool) string {
	if actual == line {
		return models.StatusPush
	}
	if (over && actual > line) || (!over && actual < line) {
		return models.StatusWin
	}
	return models.StatusLoss
}
