package messageService

import (
	"fmt"
	"log"
	"strings"

	"capperRanksBot/core"
	"capperRanksBot/models"

	"github.com/bwmarrin/discordgo"
)

var statusColors = map[string]int{
	models.StatusWin:  0x2ecc71,
	models.StatusLoss: 0xe74c3c,
	models.StatusPush: 0x95a5a6,
}

// AnnouncePick posts a newly stored pick to the picks channel. A nil session
// or missing channel config disables announcements without failing the scan.
func AnnouncePick(s *discordgo.Session, cfg *core.Config, username string, bet *models.Bet, legs []models.Leg) {
	if s == nil || cfg.PicksChannelID == "" {
		return
	}

	var lines []string
	for _, leg := range legs {
		lines = append(lines, FormatLeg(leg))
	}

	title := fmt.Sprintf("New pick from @%s", username)
	if bet.BetFormat == models.FormatParlay {
		title = fmt.Sprintf("New %d-leg parlay from @%s", len(legs), username)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       0x3498db,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Post %s", bet.SourcePostID)},
	}

	_, err := s.ChannelMessageSendComplex(cfg.PicksChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Printf("failed to announce pick: %v", err)
	}
}

// AnnounceGrade posts a leg's final result.
func AnnounceGrade(s *discordgo.Session, cfg *core.Config, leg models.Leg, status string, details string) {
	if s == nil || cfg.PicksChannelID == "" {
		return
	}

	color, ok := statusColors[status]
	if !ok {
		color = 0xf39c12
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s", status, FormatLeg(leg)),
		Description: details,
		Color:       color,
	}

	_, err := s.ChannelMessageSendComplex(cfg.PicksChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Printf("failed to announce grade: %v", err)
	}
}

// FormatLeg renders a leg the way a bettor would write it.
func FormatLeg(leg models.Leg) string {
	var b strings.Builder
	b.WriteString(titleCase(leg.Subject))

	switch leg.BetType {
	case models.BetTypeMoneyline:
		b.WriteString(" ML")
	case models.BetTypeSpread:
		if leg.Line != nil {
			b.WriteString(fmt.Sprintf(" %+.1f", *leg.Line))
		}
	case models.BetTypeTotal, models.BetTypePlayerProp:
		if leg.Line != nil {
			b.WriteString(fmt.Sprintf(" %.1f", *leg.Line))
		}
	}

	if leg.BetQualifier != "" {
		b.WriteString(" (" + leg.BetQualifier + ")")
	}
	if leg.Odds != nil {
		b.WriteString(fmt.Sprintf(" %+d", *leg.Odds))
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
