package lexicon

import "testing"

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestFindTeamContext(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		expectedAlias  string
		expectedLeague string
		expectedIndex  int
		expectNil      bool
	}{
		{
			name:           "acronym at start",
			text:           "NYY ML is a lock",
			expectedAlias:  "nyy",
			expectedLeague: "MLB",
			expectedIndex:  0,
		},
		{
			name:           "earliest of two teams wins",
			text:           "Yankees/Red Sox F5 Over 4.5",
			expectedAlias:  "yankees",
			expectedLeague: "MLB",
			expectedIndex:  0,
		},
		{
			name:           "nickname mid-sentence",
			text:           "hammering the Astros tonight",
			expectedAlias:  "astros",
			expectedLeague: "MLB",
			expectedIndex:  14,
		},
		{
			name:           "non-MLB team is still located",
			text:           "Lakers ML looks good",
			expectedAlias:  "lakers",
			expectedLeague: "NBA",
			expectedIndex:  0,
		},
		{
			name:      "no team present",
			text:      "Shohei Ohtani Over 1.5 Total Bases",
			expectNil: true,
		},
		{
			name:      "alias inside a word does not match",
			text:      "detective work",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := FindTeamContext(tt.text)
			if tt.expectNil {
				if ctx != nil {
					t.Errorf("expected no match, got %q", ctx.Alias)
				}
				return
			}
			if ctx == nil {
				t.Fatalf("expected a match, got nil")
			}
			assertEqual(t, tt.expectedAlias, ctx.Alias, "alias")
			assertEqual(t, tt.expectedLeague, ctx.League, "league")
			assertEqual(t, tt.expectedIndex, ctx.Index, "index")
		})
	}
}

func TestFindTeamContextLongestAtSameIndex(t *testing.T) {
	ctx := FindTeamContext("new york yankees -1.5")
	if ctx == nil {
		t.Fatal("expected a match, got nil")
	}
	assertEqual(t, "new york yankees", ctx.Alias, "full name beats shorter alias at same index")
}

func TestTeamMatches(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		apiName  string
		expected bool
	}{
		{"acronym matches full API name", "nyy", "New York Yankees", true},
		{"nickname matches full API name", "astros", "Houston Astros", true},
		{"full name matches itself", "boston red sox", "Boston Red Sox", true},
		{"wrong franchise", "nyy", "Boston Red Sox", false},
		{"unknown subject falls back to substring", "yankee stadium", "New York Yankees", false},
		{"empty subject never matches", "", "New York Yankees", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, TeamMatches(tt.subject, tt.apiName), tt.name)
		})
	}
}
