package pickService

import (
	"log"
	"regexp"
	"strings"

	"capperRanksBot/models"
	"capperRanksBot/models/external"
	"capperRanksBot/services/lexicon"
)

// PlayerResolver validates a candidate player name against a roster oracle.
// A nil *MLB_Person with a nil error means no such player.
type PlayerResolver func(name string) (*external.MLB_Person, error)

// Detection is the structured read of one post: every leg found plus whether
// the post as a whole reads as a parlay.
type Detection struct {
	Legs     []models.Leg
	IsParlay bool
}

var reParlayKeyword = regexp.MustCompile(`(?i)\b(parlay|same game parlay|combo|combination|all must hit|multi-leg|leg|legs|bundle|package|set)\b`)

// DetectPick scans post text line by line for bets. Only MLB legs survive;
// picks on other leagues are recognized and dropped so they never pollute a
// capper's record. Returns nil when nothing gradeable is found.
func DetectPick(text string, resolver PlayerResolver) *Detection {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var legs []models.Leg
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		leg := detectLine(line, resolver)
		if leg == nil {
			continue
		}
		if leg.SportLeague != models.LeagueMLB {
			log.Printf("discarding %s pick: %s", leg.SportLeague, line)
			continue
		}
		legs = append(legs, *leg)
	}

	if len(legs) == 0 {
		return nil
	}

	return &Detection{
		Legs:     legs,
		IsParlay: reParlayKeyword.MatchString(text),
	}
}

// detectLine applies the matchers in precedence order. A line containing a
// team alias is read as a team bet first; player props only get a look when
// no team market matches, since stat phrases often name a team in passing.
func detectLine(line string, resolver PlayerResolver) *models.Leg {
	if ctx := lexicon.FindTeamContext(line); ctx != nil {
		if leg := matchTeamBet(line, ctx); leg != nil {
			return leg
		}
	}
	return matchPlayerProp(line, resolver)
}
