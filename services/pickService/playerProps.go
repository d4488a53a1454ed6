package pickService

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"capperRanksBot/models"
)

// statCatalog lists every stat phrase the grader knows how to score, longest
// first so "Total Bases" wins over "Bases" style partial reads.
var statCatalog = []string{
	"Total Bases",
	"Stolen Bases",
	"Strikeouts",
	"Home Runs",
	"Home Run",
	"Walks",
	"Hits",
	"Runs",
	"RBIs",
	"RBI",
}

func init() {
	sort.Slice(statCatalog, func(i, j int) bool {
		return len(statCatalog[i]) > len(statCatalog[j])
	})
}

var (
	rePropAnchor = regexp.MustCompile(`(?i)\b(over|under|o|u)\s+(\d+(?:\.\d+)?)\s+(.*)$`)
	reTeamTag    = regexp.MustCompile(`\s*\([A-Za-z]{2,4}\)\s*$`)
	reAltForm    = regexp.MustCompile(`(?i)^([A-Za-z .'-]+?)\s+1\+\s*(Home Runs?|HR|Hits|Total Bases|RBIs?|Runs|Stolen Bases)\b`)
	reBasesForm  = regexp.MustCompile(`(?i)^([A-Za-z .'-]+?)\s+(\d+)\+\s*TOTAL\s*BASES?\b`)
	reHitHomer   = regexp.MustCompile(`(?i)^(.+?)\s+TO\s+HIT\s+A?\s*HOME\s*RUN[S]?\b`)
	reNoiseTail  = regexp.MustCompile(`\s+[A-Za-z]{1,2}$`)
)

// matchPlayerProp tries each prop form against the line. Every form resolves
// its candidate name through the roster oracle before committing, so random
// capitalized words never become legs.
func matchPlayerProp(line string, resolver PlayerResolver) *models.Leg {
	if resolver == nil {
		return nil
	}
	if leg := matchStandardProp(line, resolver); leg != nil {
		return leg
	}
	if leg := matchAltProp(line, resolver); leg != nil {
		return leg
	}
	if leg := matchBasesProp(line, resolver); leg != nil {
		return leg
	}
	return matchHomerPhraseProp(line, resolver)
}

// matchStandardProp handles "Name Over 1.5 Total Bases". The player name is
// whatever sits before the over/under anchor; trailing windows of up to four
// words are tried against the oracle, widest first.
func matchStandardProp(line string, resolver PlayerResolver) *models.Leg {
	loc := rePropAnchor.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil
	}
	m := rePropAnchor.FindStringSubmatch(line)

	before := strings.TrimSpace(line[:loc[0]])
	before = reTeamTag.ReplaceAllString(before, "")
	words := strings.Fields(before)
	if len(words) == 0 {
		return nil
	}

	val, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	direction := "Over"
	if strings.HasPrefix(strings.ToLower(m[1]), "u") {
		direction = "Under"
	}
	// Uncataloged stats still become legs; the grader surfaces them as
	// needing grading logic rather than detection dropping them.
	statType := matchStatType(m[3])
	if statType == "" {
		fields := strings.Fields(m[3])
		if len(fields) == 0 {
			return nil
		}
		statType = canonicalStat(fields[0])
	}

	for width := 4; width >= 1; width-- {
		if width > len(words) {
			continue
		}
		candidate := strings.Join(words[len(words)-width:], " ")
		person, err := resolver(candidate)
		if err != nil || person == nil {
			continue
		}
		return &models.Leg{
			SportLeague:  models.LeagueMLB,
			Subject:      person.FullName,
			BetType:      models.BetTypePlayerProp,
			Line:         &val,
			BetQualifier: direction + " " + statType,
			Status:       models.StatusPending,
		}
	}
	return nil
}

// matchAltProp handles the alt-line form "Name 1+ Home Runs": one or more of
// the stat, which books price as over 0.5.
func matchAltProp(line string, resolver PlayerResolver) *models.Leg {
	m := reAltForm.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	person, err := resolver(strings.TrimSpace(m[1]))
	if err != nil || person == nil {
		return nil
	}

	half := 0.5
	return &models.Leg{
		SportLeague:  models.LeagueMLB,
		Subject:      person.FullName,
		BetType:      models.BetTypePlayerProp,
		Line:         &half,
		BetQualifier: "Over " + canonicalStat(m[2]),
		Status:       models.StatusPending,
	}
}

// matchBasesProp handles "Name N+ Total Bases", graded as over N-0.5.
func matchBasesProp(line string, resolver PlayerResolver) *models.Leg {
	m := reBasesForm.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	n, err := strconv.Atoi(m[2])
	if err != nil || n < 1 {
		return nil
	}
	person, rerr := resolver(strings.TrimSpace(m[1]))
	if rerr != nil || person == nil {
		return nil
	}

	val := float64(n) - 0.5
	return &models.Leg{
		SportLeague:  models.LeagueMLB,
		Subject:      person.FullName,
		BetType:      models.BetTypePlayerProp,
		Line:         &val,
		BetQualifier: "Over Total Bases",
		Status:       models.StatusPending,
	}
}

// matchHomerPhraseProp handles "Name TO HIT A HOME RUN".
func matchHomerPhraseProp(line string, resolver PlayerResolver) *models.Leg {
	m := reHitHomer.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	name := strings.TrimSpace(reNoiseTail.ReplaceAllString(m[1], ""))
	if name == "" {
		return nil
	}
	person, err := resolver(name)
	if err != nil || person == nil {
		return nil
	}

	half := 0.5
	return &models.Leg{
		SportLeague:  models.LeagueMLB,
		Subject:      person.FullName,
		BetType:      models.BetTypePlayerProp,
		Line:         &half,
		BetQualifier: "Over Home Runs",
		Status:       models.StatusPending,
	}
}

// matchStatType maps the free text after the line number to a catalog stat,
// falling back to empty when nothing matches.
func matchStatType(text string) string {
	text = strings.TrimSpace(text)
	for _, stat := range statCatalog {
		if len(text) >= len(stat) && strings.EqualFold(text[:len(stat)], stat) {
			return canonicalStat(stat)
		}
	}
	return ""
}

func canonicalStat(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hr", "home run", "home runs":
		return "Home Runs"
	case "rbi", "rbis":
		return "RBIs"
	case "total bases":
		return "Total Bases"
	case "stolen bases":
		return "Stolen Bases"
	case "strikeouts":
		return "Strikeouts"
	case "walks":
		return "Walks"
	case "hits":
		return "Hits"
	case "runs":
		return "Runs"
	}
	return strings.TrimSpace(s)
}
