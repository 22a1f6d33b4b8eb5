package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/leaderboard"
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top players",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "metric",
				Description: "What to rank by (default: currency)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Coins", Value: string(leaderboard.MetricCurrency)},
					{Name: "Catches", Value: string(leaderboard.MetricCatches)},
					{Name: "Rod Tier", Value: string(leaderboard.MetricRodTier)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		metric := leaderboard.MetricCurrency
		if opts := getOptions(i); len(opts) > 0 {
			if m, ok := leaderboard.ParseMetric(opts[0].StringValue()); ok {
				metric = m
			}
		}

		entries, err := svc.Leaderboard.Rank(commandContext(), metric, leaderboard.DefaultLimit)
		if err != nil {
			slog.Error("Failed to rank leaderboard", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		if len(entries) == 0 {
			sendEmbed(s, i, createEmbed("🏆 Leaderboard", "Nobody has played yet!", colorInfo, ""))
			return
		}

		medals := []string{"🥇", "🥈", "🥉"}
		var b strings.Builder
		for idx, e := range entries {
			rank := fmt.Sprintf("%d.", idx+1)
			if idx < len(medals) {
				rank = medals[idx]
			}
			if e.Label != "" {
				fmt.Fprintf(&b, "%s **%s** — %s\n", rank, e.Username, e.Label)
			} else {
				fmt.Fprintf(&b, "%s **%s** — %d\n", rank, e.Username, e.Value)
			}
		}

		title := fmt.Sprintf("🏆 Leaderboard — %s", metric)
		sendEmbed(s, i, createEmbed(title, b.String(), colorGold, ""))
	}

	return cmd, handler
}
