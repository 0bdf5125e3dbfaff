package discord

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
)

// Casers and printers keep per-call state, so each render gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

func sprintf(format string, args ...interface{}) string {
	return message.NewPrinter(language.English).Sprintf(format, args...)
}

const barWidth = 10

// formatMoney renders an amount with thousands separators, e.g. $1,234.50
func formatMoney(v float64) string {
	if v < 0 {
		return sprintf("-$%.2f", -v)
	}
	return sprintf("$%.2f", v)
}

// humanize turns snake_case or camelCase identifiers into title-cased words
func humanize(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return title(b.String())
}

// needBar draws a [0,100] need as a fixed-width bar
func needBar(v float64) string {
	filled := int(math.Round(v / 100 * barWidth))
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func formatNeeds(needs map[domain.Need]float64) string {
	names := make([]domain.Need, 0, len(needs))
	for n := range needs {
		names = append(names, n)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "`%-11s %s %3.0f`\n", n, needBar(needs[n]), needs[n])
	}
	return b.String()
}

func formatActor(a actor.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)", title(a.Name), a.Status)
	if a.Baby != nil {
		if a.Baby.Personality != "" {
			fmt.Fprintf(&b, " · %s", humanize(string(a.Baby.Personality)))
		}
		if a.Baby.Crying {
			b.WriteString(" · 😭")
		}
		if a.Baby.Sleeping {
			b.WriteString(" · 💤")
		}
	}
	b.WriteString("\n")
	b.WriteString(formatNeeds(a.Needs))
	return b.String()
}

// formatStatus renders a snapshot as embed fields
func formatStatus(snap *game.Snapshot) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{Name: "🕒 Time", Value: fmt.Sprintf("Day %d, %s", snap.Day, snap.TimeOfDay), Inline: true},
		{Name: "💰 Money", Value: formatMoney(snap.Financial.Money), Inline: true},
		{Name: "⭐ Level", Value: fmt.Sprintf("%d (%d XP to next)", snap.Progress.Level, snap.Progress.XPToNext), Inline: true},
	}
	if snap.Loan.TotalDebt > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🏦 Debt",
			Value:  fmt.Sprintf("%s (interest %s/day)", formatMoney(snap.Loan.TotalDebt), formatMoney(snap.Loan.DailyInterest)),
			Inline: true,
		})
	}
	if snap.OnLeave {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "🌴 On Leave", Value: "Work is off limits", Inline: true})
	}

	for _, a := range snap.Actors {
		if a.Kind == domain.ActorFeedingStation {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: humanize(string(a.Kind)), Value: formatActor(a)})
	}

	fields = append(fields, &discordgo.MessageEmbedField{Name: "📦 Supplies", Value: formatResources(snap)})
	return fields
}

func formatResources(snap *game.Snapshot) string {
	var b strings.Builder
	for _, r := range domain.AllResources() {
		if r == domain.ResourceMoney {
			continue
		}
		v, ok := snap.Resources[r]
		if !ok {
			continue
		}
		marker := ""
		if slices.Contains(snap.Critical, r) {
			marker = " ⚠️"
		}
		b.WriteString(sprintf("%s: %.0f%s\n", humanize(string(r)), v, marker))
	}
	return b.String()
}

func formatOutcome(o *domain.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result: **%s**\n", title(string(o.Result)))
	fmt.Fprintf(&b, "Days survived: %d\n", o.DaysSurvived)
	fmt.Fprintf(&b, "Level: %d · Tasks: %d · Babies: %d\n", o.Level, o.TasksCompleted, o.Babies)
	fmt.Fprintf(&b, "Money: %s · Debt: %s\n", formatMoney(o.Money), formatMoney(o.TotalDebt))
	if len(o.Achievements) > 0 {
		names := make([]string, 0, len(o.Achievements))
		for _, a := range o.Achievements {
			names = append(names, humanize(a))
		}
		fmt.Fprintf(&b, "Achievements: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

func formatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return MsgLeaderboardEmpty
	}
	var b strings.Builder
	for _, e := range entries {
		medal := ""
		switch e.Rank {
		case 1:
			medal = "🥇 "
		case 2:
			medal = "🥈 "
		case 3:
			medal = "🥉 "
		}
		name := e.PlayerName
		if name == "" {
			name = "Anonymous"
		}
		b.WriteString(sprintf("%s**%d.** %s · %s · %d days · level %d\n",
			medal, e.Rank, name, e.Result, e.DaysSurvived, e.Level))
	}
	return b.String()
}
