package pickService

import (
	"testing"

	"capperRanksBot/models"
	"capperRanksBot/models/external"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// stubResolver recognizes a fixed roster and nobody else.
func stubResolver(names ...string) PlayerResolver {
	roster := make(map[string]bool, len(names))
	for _, n := range names {
		roster[n] = true
	}
	return func(name string) (*external.MLB_Person, error) {
		if roster[name] {
			return &external.MLB_Person{ID: 1, FullName: name, Active: true}, nil
		}
		return nil, nil
	}
}

func TestDetectPickTeamBets(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		expectedSubject   string
		expectedBetType   string
		expectedLine      *float64
		expectedQualifier string
	}{
		{
			name:              "moneyline after acronym",
			text:              "NYY ML is a lock",
			expectedSubject:   "nyy",
			expectedBetType:   models.BetTypeMoneyline,
			expectedLine:      nil,
			expectedQualifier: "Full Game",
		},
		{
			name:              "spread after nickname",
			text:              "Astros -1.5 tonight",
			expectedSubject:   "astros",
			expectedBetType:   models.BetTypeSpread,
			expectedLine:      floatPtr(-1.5),
			expectedQualifier: "Full Game",
		},
		{
			name:              "positive spread",
			text:              "Padres +1.5",
			expectedSubject:   "padres",
			expectedBetType:   models.BetTypeSpread,
			expectedLine:      floatPtr(1.5),
			expectedQualifier: "Full Game",
		},
		{
			name:              "first five total with two teams",
			text:              "Yankees/Red Sox F5 Over 4.5",
			expectedSubject:   "yankees",
			expectedBetType:   models.BetTypeTotal,
			expectedLine:      floatPtr(4.5),
			expectedQualifier: "Over First 5",
		},
		{
			name:              "full game under",
			text:              "Dodgers game Under 8.5 runs",
			expectedSubject:   "dodgers",
			expectedBetType:   models.BetTypeTotal,
			expectedLine:      floatPtr(8.5),
			expectedQualifier: "Under Full Game",
		},
		{
			name:              "first five moneyline",
			text:              "Mets F5 ML",
			expectedSubject:   "mets",
			expectedBetType:   models.BetTypeMoneyline,
			expectedLine:      nil,
			expectedQualifier: "First 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detection := DetectPick(tt.text, stubResolver())
			if detection == nil {
				t.Fatal("expected a detection, got nil")
			}
			assertEqual(t, 1, len(detection.Legs), "leg count")

			leg := detection.Legs[0]
			assertEqual(t, tt.expectedSubject, leg.Subject, "subject")
			assertEqual(t, tt.expectedBetType, leg.BetType, "bet type")
			assertEqual(t, models.LeagueMLB, leg.SportLeague, "league")
			assertEqual(t, tt.expectedQualifier, leg.BetQualifier, "qualifier")
			assertEqual(t, models.StatusPending, leg.Status, "status")
			assertLineEqual(t, tt.expectedLine, leg.Line)
		})
	}
}

func TestDetectPickPlayerProps(t *testing.T) {
	resolver := stubResolver("Shohei Ohtani", "Juan Soto", "Vladimir Guerrero", "Aaron Judge", "Yordan Alvarez")

	tests := []struct {
		name              string
		text              string
		expectedSubject   string
		expectedLine      float64
		expectedQualifier string
	}{
		{
			name:              "standard over prop",
			text:              "Shohei Ohtani Over 1.5 Total Bases",
			expectedSubject:   "Shohei Ohtani",
			expectedLine:      1.5,
			expectedQualifier: "Over Total Bases",
		},
		{
			name:              "standard under prop",
			text:              "Juan Soto Under 0.5 Home Runs",
			expectedSubject:   "Juan Soto",
			expectedLine:      0.5,
			expectedQualifier: "Under Home Runs",
		},
		{
			name:              "alt form with HR abbreviation",
			text:              "Juan Soto 1+ HR",
			expectedSubject:   "Juan Soto",
			expectedLine:      0.5,
			expectedQualifier: "Over Home Runs",
		},
		{
			name:              "multi total bases form",
			text:              "Vladimir Guerrero 2+ Total Bases",
			expectedSubject:   "Vladimir Guerrero",
			expectedLine:      1.5,
			expectedQualifier: "Over Total Bases",
		},
		{
			name:              "to hit a home run phrase",
			text:              "Aaron Judge to hit a home run",
			expectedSubject:   "Aaron Judge",
			expectedLine:      0.5,
			expectedQualifier: "Over Home Runs",
		},
		{
			name:              "team tag stripped before lookup",
			text:              "Yordan Alvarez (HOU) Over 1.5 Hits",
			expectedSubject:   "Yordan Alvarez",
			expectedLine:      1.5,
			expectedQualifier: "Over Hits",
		},
		{
			name:              "uncataloged stat falls back to first word",
			text:              "Shohei Ohtani Over 16.5 Outs",
			expectedSubject:   "Shohei Ohtani",
			expectedLine:      16.5,
			expectedQualifier: "Over Outs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detection := DetectPick(tt.text, resolver)
			if detection == nil {
				t.Fatal("expected a detection, got nil")
			}
			assertEqual(t, 1, len(detection.Legs), "leg count")

			leg := detection.Legs[0]
			assertEqual(t, tt.expectedSubject, leg.Subject, "subject")
			assertEqual(t, models.BetTypePlayerProp, leg.BetType, "bet type")
			assertEqual(t, tt.expectedQualifier, leg.BetQualifier, "qualifier")
			if leg.Line == nil {
				t.Fatal("expected a line, got nil")
			}
			assertEqual(t, tt.expectedLine, *leg.Line, "line")
		})
	}
}

func TestDetectPickDiscards(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"non-MLB team bet", "Lakers ML looks good tonight"},
		{"NFL team bet", "Chiefs -3.5 this weekend"},
		{"no pick at all", "What a game last night!"},
		{"unknown player name", "John Notaplayer Over 1.5 Hits"},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if detection := DetectPick(tt.text, stubResolver()); detection != nil {
				t.Errorf("expected nil detection, got %d legs", len(detection.Legs))
			}
		})
	}
}

func TestDetectPickParlayFlag(t *testing.T) {
	resolver := stubResolver()
	body := "NYY ML\nAstros -1.5"

	plain := DetectPick(body, resolver)
	if plain == nil {
		t.Fatal("expected a detection, got nil")
	}
	assertEqual(t, 2, len(plain.Legs), "leg count")
	assertEqual(t, false, plain.IsParlay, "no keyword means no parlay")

	flagged := DetectPick("Parlay of the day:\n"+body, resolver)
	if flagged == nil {
		t.Fatal("expected a detection, got nil")
	}
	assertEqual(t, 2, len(flagged.Legs), "leg count")
	assertEqual(t, true, flagged.IsParlay, "keyword anywhere in post flags a parlay")
}

func TestDetectPickMultipleLegsKeepsOrder(t *testing.T) {
	detection := DetectPick("Yankees ML\nDodgers game Over 8.5\nAstros -1.5", stubResolver())
	if detection == nil {
		t.Fatal("expected a detection, got nil")
	}
	assertEqual(t, 3, len(detection.Legs), "leg count")
	assertEqual(t, "yankees", detection.Legs[0].Subject, "first leg")
	assertEqual(t, "dodgers", detection.Legs[1].Subject, "second leg")
	assertEqual(t, "astros", detection.Legs[2].Subject, "third leg")
}

func assertLineEqual(t *testing.T, expected *float64, actual *float64) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Errorf("expected nil line, got %v", *actual)
		}
		return
	}
	if actual == nil {
		t.Errorf("expected line %v, got nil", *expected)
		return
	}
	assertEqual(t, *expected, *actual, "line")
}

func floatPtr(f float64) *float64 { return &f }
