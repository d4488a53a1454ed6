package pickService

import (
	"regexp"
	"strconv"
	"strings"

	"capperRanksBot/models"
	"capperRanksBot/services/lexicon"
)

var (
	reFirstFive   = regexp.MustCompile(`(?i)\b(first 5|first five|f5)\b`)
	reSpreadAfter = regexp.MustCompile(`^\s*([+-]\d\.\d)\b`)
	reMLAfter     = regexp.MustCompile(`(?i)^\s*ML\b`)
	reTotalAnchor = regexp.MustCompile(`(?i)\b(over|under|o/u)\s+(\d+(?:\.\d+)?)\b`)
)

// matchTeamBet reads the text after a located team alias for a market. The
// spread and moneyline forms must sit directly after the alias; totals can
// appear anywhere on the line since "Yankees/Red Sox Over 8.5" puts two
// teams before the number.
func matchTeamBet(line string, ctx *lexicon.TeamContext) *models.Leg {
	lowered := strings.ToLower(line)

	// A parenthesized alias is a player's team tag, not a market subject;
	// let the player-prop matchers read the line instead.
	if ctx.Index > 0 && lowered[ctx.Index-1] == '(' {
		return nil
	}

	rest := lowered[ctx.Index+len(ctx.Alias):]

	period := "Full Game"
	if reFirstFive.MatchString(lowered) {
		period = "First 5"
		// The period token can sit between the team and the market, as in
		// "Mets F5 ML".
		rest = reFirstFive.ReplaceAllString(rest, "")
	}

	if m := reSpreadAfter.FindStringSubmatch(rest); m != nil {
		val, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return &models.Leg{
				SportLeague:  ctx.League,
				Subject:      ctx.Alias,
				BetType:      models.BetTypeSpread,
				Line:         &val,
				BetQualifier: period,
				Status:       models.StatusPending,
			}
		}
	}

	if reMLAfter.MatchString(rest) {
		return &models.Leg{
			SportLeague:  ctx.League,
			Subject:      ctx.Alias,
			BetType:      models.BetTypeMoneyline,
			BetQualifier: period,
			Status:       models.StatusPending,
		}
	}

	if m := reTotalAnchor.FindStringSubmatch(lowered); m != nil {
		val, err := strconv.ParseFloat(m[2], 64)
		if err == nil {
			direction := "Over"
			if strings.HasPrefix(strings.ToLower(m[1]), "u") {
				direction = "Under"
			}
			return &models.Leg{
				SportLeague:  ctx.League,
				Subject:      ctx.Alias,
				BetType:      models.BetTypeTotal,
				Line:         &val,
				BetQualifier: direction + " " + period,
				Status:       models.StatusPending,
			}
		}
	}

	return nil
}
