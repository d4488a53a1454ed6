package lexicon

import (
	"regexp"
	"strings"
)

// team groups one canonical franchise name with every alias bettors use for
// it. All aliases are lowercase; lookups lowercase their input.
type team struct {
	Name    string
	League  string
	Aliases []string
}

var teams = []team{
	{"arizona diamondbacks", "MLB", []string{"arizona diamondbacks", "diamondbacks", "d-backs", "ari"}},
	{"atlanta braves", "MLB", []string{"atlanta braves", "braves", "atl"}},
	{"baltimore orioles", "MLB", []string{"baltimore orioles", "orioles", "bal"}},
	{"boston red sox", "MLB", []string{"boston red sox", "red sox", "bos"}},
	{"chicago white sox", "MLB", []string{"chicago white sox", "white sox", "cws"}},
	{"chicago cubs", "MLB", []string{"chicago cubs", "cubs", "chc"}},
	{"cincinnati reds", "MLB", []string{"cincinnati reds", "reds", "cin"}},
	{"cleveland guardians", "MLB", []string{"cleveland guardians", "guardians", "cle"}},
	{"colorado rockies", "MLB", []string{"colorado rockies", "rockies", "col"}},
	{"detroit tigers", "MLB", []string{"detroit tigers", "tigers", "det"}},
	{"houston astros", "MLB", []string{"houston astros", "astros", "hou"}},
	{"kansas city royals", "MLB", []string{"kansas city royals", "royals", "kc"}},
	{"los angeles angels", "MLB", []string{"los angeles angels", "angels", "laa"}},
	{"los angeles dodgers", "MLB", []string{"los angeles dodgers", "dodgers", "lad"}},
	{"miami marlins", "MLB", []string{"miami marlins", "marlins", "mia"}},
	{"milwaukee brewers", "MLB", []string{"milwaukee brewers", "brewers", "mil"}},
	{"minnesota twins", "MLB", []string{"minnesota twins", "twins", "min"}},
	{"new york yankees", "MLB", []string{"new york yankees", "yankees", "nyy"}},
	{"new york mets", "MLB", []string{"new york mets", "mets", "nym"}},
	{"oakland athletics", "MLB", []string{"oakland athletics", "athletics", "oak"}},
	{"philadelphia phillies", "MLB", []string{"philadelphia phillies", "phillies", "phi"}},
	{"pittsburgh pirates", "MLB", []string{"pittsburgh pirates", "pirates", "pit"}},
	{"san diego padres", "MLB", []string{"san diego padres", "padres", "sd"}},
	{"san francisco giants", "MLB", []string{"san francisco giants", "giants", "sf"}},
	{"seattle mariners", "MLB", []string{"seattle mariners", "mariners", "sea"}},
	{"st. louis cardinals", "MLB", []string{"st. louis cardinals", "cardinals", "stl"}},
	{"tampa bay rays", "MLB", []string{"tampa bay rays", "rays", "tb"}},
	{"texas rangers", "MLB", []string{"texas rangers", "rangers", "tex"}},
	{"toronto blue jays", "MLB", []string{"toronto blue jays", "blue jays", "tor"}},
	{"washington nationals", "MLB", []string{"washington nationals", "nationals", "wsh", "was"}},

	// Non-MLB entries are recognized so their picks can be explicitly
	// discarded rather than misread as player names. Kept small: only
	// aliases that don't collide with MLB ones (e.g. "kc" stays Royals).
	{"los angeles lakers", "NBA", []string{"los angeles lakers", "lakers", "lal"}},
	{"boston celtics", "NBA", []string{"boston celtics", "celtics"}},
	{"kansas city chiefs", "NFL", []string{"kansas city chiefs", "chiefs"}},
	{"philadelphia eagles", "NFL", []string{"philadelphia eagles", "eagles"}},
}

// TeamLeagueMap links every alias to its league code.
var TeamLeagueMap = map[string]string{}

var (
	aliasTeam  = map[string]*team{}
	aliasRegex = map[string]*regexp.Regexp{}
)

func init() {
	for i := range teams {
		for _, alias := range teams[i].Aliases {
			TeamLeagueMap[alias] = teams[i].League
			aliasTeam[alias] = &teams[i]
			aliasRegex[alias] = regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
		}
	}
}

// TeamContext is a team alias located inside a line of text.
type TeamContext struct {
	Alias  string
	League string
	Index  int
}

// FindTeamContext returns the earliest whole-word team alias in the text.
// When two aliases start at the same index the longer one wins.
func FindTeamContext(text string) *TeamContext {
	lowered := strings.ToLower(text)

	var best *TeamContext
	for alias, re := range aliasRegex {
		loc := re.FindStringIndex(lowered)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best.Index ||
			(loc[0] == best.Index && len(alias) > len(best.Alias)) {
			best = &TeamContext{Alias: alias, League: TeamLeagueMap[alias], Index: loc[0]}
		}
	}
	return best
}

// TeamMatches reports whether a schedule/API team name refers to the same
// franchise as the stored subject alias.
func TeamMatches(subject string, apiTeamName string) bool {
	name := strings.ToLower(apiTeamName)
	subject = strings.ToLower(strings.TrimSpace(subject))

	if grp, ok := aliasTeam[subject]; ok {
		for _, alias := range grp.Aliases {
			if strings.Contains(name, alias) {
				return true
			}
		}
	}
	return subject != "" && strings.Contains(name, subject)
}
