package ocrService

import (
	"regexp"
	"strings"
)

// Ordered literal repairs for OCR confusions seen on bet-slip screenshots.
// Order matters: later entries assume earlier ones have already fired.
var charRepairs = []struct{ old, new string }{
	{"|", "I"},
	{"0", "O"},
	{"5I", "5"},
	{"9I", "5"},
	{"1.9", "1.5"},
	{"1.9 5", "1.5"},
	{"1.9 5I", "1.5"},
	{"AHOME RUN", "A HOME RUN"},
	{"AHOME RUNS", "A HOME RUNS"},
	{"TOTALBASES", "TOTAL BASES"},
	{"~", ""},
}

var (
	rePlusUpper    = regexp.MustCompile(`(\d+)\+([A-Z]+)`)
	reTrailingFe   = regexp.MustCompile(`\s+fe\s*$`)
	reTrailingCaps = regexp.MustCompile(`\s+[A-Z]{1,2}\s*$`)
	reTrailingSyms = regexp.MustCompile(`\s+[^A-Za-z0-9\s.]+$`)
	reDupNumeral   = regexp.MustCompile(`(\d+\.\d+)\s+\d+`)
	reDecimalI     = regexp.MustCompile(`(\d+\.\d+)I`)
)

// Combine rules: OCR stacks a player's name above their bet description, so
// a conservative forward pass rejoins the two lines.
var (
	reAltOddsName   = regexp.MustCompile(`^[A-Za-z .'-]+\s+1\+\s*\+?\d+`)
	reOddsSuffix    = regexp.MustCompile(`\s*\+[\dO]+$`)
	reOverUnderStat = regexp.MustCompile(`(?i)(over|under|o|u)\s+\d+\.?\d*\s+[a-zA-Z\s]+`)
	reToHitHomer    = regexp.MustCompile(`(?i)[A-Z]\s+TO\s+HIT\s+A?\s*HOME RUN`)
	reBasesStrict   = regexp.MustCompile(`(?i)\d+\+\s*TOTAL BASES`)
	reBasesLoose    = regexp.MustCompile(`(?i)\d+\+\s*TOTAL\s*BASES?`)
	reTrailingLower = regexp.MustCompile(`\s+[a-z]{1,2}\s*$`)
)

// Normalize cleans raw OCR output: line filtering, character repair, pattern
// repair, then cross-line recombination. Pure; normalizing already-normalized
// text is a no-op.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	text := strings.Join(lines, "\n")
	for _, repair := range charRepairs {
		text = strings.ReplaceAll(text, repair.old, repair.new)
	}
	text = rePlusUpper.ReplaceAllString(text, "$1+ $2")

	lines = strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = reDupNumeral.ReplaceAllString(line, "$1")
		line = reDecimalI.ReplaceAllString(line, "$1")
		line = stripTrailingArtifacts(line)
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(combineSplitLines(cleaned), "\n")
}

// stripTrailingArtifacts removes line-end OCR noise ("fe", 1-2 letter tokens,
// stray symbols) until the line stops changing, so repeated normalization is
// a fixed point even when artifacts stack.
func stripTrailingArtifacts(line string) string {
	for {
		before := line
		line = reTrailingFe.ReplaceAllString(line, "")
		line = reTrailingCaps.ReplaceAllString(line, "")
		line = reTrailingSyms.ReplaceAllString(line, "")
		if line == before {
			return line
		}
	}
}

func combineSplitLines(lines []string) []string {
	var out []string
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) {
			if merged, ok := tryCombine(lines[i], lines[i+1]); ok {
				out = append(out, merged)
				i++
				continue
			}
		}
		out = append(out, lines[i])
	}
	return out
}

// tryCombine tests the rules in priority order; the first match consumes both
// lines.
func tryCombine(cur, next string) (string, bool) {
	// "Player 1+ +125" stacked above an "ALT HOME RUN(S)" label.
	if reAltOddsName.MatchString(cur) {
		label := strings.ToUpper(strings.TrimSpace(next))
		if label == "ALT HOME RUNS" || label == "ALT HOME RUN" {
			name := reOddsSuffix.ReplaceAllString(cur, "")
			return name + " Home Runs", true
		}
	}

	words := len(strings.Fields(cur))

	// Name line above an "over/under N <stat>" line.
	if isUpperLine(cur) && !hasDigit(cur) && words <= 3 && reOverUnderStat.MatchString(next) {
		return cur + " " + next, true
	}

	// Name line above "X TO HIT A HOME RUN".
	if isUpperLine(cur) && words <= 3 && !strings.ContainsAny(cur, "+-$%") && reToHitHomer.MatchString(next) {
		return cur + " " + next, true
	}

	// Name line above "N+ TOTAL BASES".
	if isUpperLine(cur) && words <= 3 && !strings.ContainsAny(cur, `+-$%\/`) && reBasesStrict.MatchString(next) {
		return cur + " " + next, true
	}

	// Looser variant: slightly longer names, "TOTALBASES" spacing optional,
	// trailing lowercase noise removed from the name first.
	if isUpperLine(cur) && words <= 4 && !strings.ContainsAny(cur, `+-$%\/`) && reBasesLoose.MatchString(next) {
		name := strings.TrimSpace(reTrailingLower.ReplaceAllString(cur, ""))
		return name + " " + next, true
	}

	return "", false
}

func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
