package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
)

var adminPermission = int64(discordgo.PermissionAdministrator)

// SetCooldownCommand returns the cooldown tuning command (admin only)
func SetCooldownCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "setcooldown",
		Description: "[ADMIN] Set an activity's cooldown and bonus chance",
		Options: []*discordgo.ApplicationCommandOption{
			activityOption(),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seconds",
				Description: "Cooldown in seconds (1-3600)",
				Required:    true,
				MinValue:    &[]float64{1}[0],
				MaxValue:    3600,
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "bonus-chance",
				Description: "Bonus event chance in percent (0-100, unchanged if omitted)",
				Required:    false,
				MinValue:    &[]float64{0}[0],
				MaxValue:    100,
			},
		},
		DefaultMemberPermissions: &adminPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		var (
			act     domain.Activity
			seconds int
			chance  *float64
		)
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "activity":
				act = domain.Activity(opt.StringValue())
			case "seconds":
				seconds = int(opt.IntValue())
			case "bonus-chance":
				v := opt.FloatValue()
				chance = &v
			}
		}

		settings := svc.Config.Snapshot().Settings
		if act == domain.ActivityWoodcutting {
			settings.ChopCooldownSeconds = seconds
			if chance != nil {
				settings.TimberBiteChance = *chance
			}
		} else {
			settings.FishCooldownSeconds = seconds
			if chance != nil {
				settings.GoldenBiteChance = *chance
			}
		}

		if err := svc.Config.ReplaceSettings(settings); err != nil {
			slog.Error("Failed to update settings", "error", err)
			respondError(s, i, fmt.Sprintf("Failed to update settings: %v", err))
			return
		}

		desc := fmt.Sprintf("Cooldown for **%s** set to **%ds**.", act, seconds)
		if chance != nil {
			desc += fmt.Sprintf("\nBonus chance set to **%.2f%%**.", *chance)
		}
		sendEmbed(s, i, createEmbed("⚙️ Settings Updated", desc, colorInfo, FooterGatherBotAdmin))
	}

	return cmd, handler
}

// SetRatesCommand returns the rarity weight tuning command (admin only)
func SetRatesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "setrates",
		Description: "[ADMIN] Set a gear tier's rarity weights",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "gear",
				Description: "Which tool line the tier belongs to",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Rod", Value: string(domain.LineRod)},
					{Name: "Axe", Value: string(domain.LineAxe)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tier",
				Description: "Tier name, e.g. Starter Rod",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "weights",
				Description: "Six weights common..mythic, e.g. 50,30,15,4,0.9,0.1",
				Required:    true,
			},
		},
		DefaultMemberPermissions: &adminPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := getOptions(i)
		line := domain.EquipmentLine(opts[0].StringValue())
		tier := opts[1].StringValue()

		weights, err := parseWeights(opts[2].StringValue())
		if err != nil {
			respondError(s, i, fmt.Sprintf("Bad weights: %v", err))
			return
		}

		rates := cloneRates(svc.Config.Snapshot().Rates)
		if line == domain.LineAxe {
			rates.AxeTiers[tier] = weights
		} else {
			rates.RodTiers[tier] = weights
		}

		if err := svc.Config.ReplaceRates(rates); err != nil {
			slog.Error("Failed to update rates", "error", err)
			respondError(s, i, fmt.Sprintf("Failed to update rates: %v", err))
			return
		}

		desc := fmt.Sprintf("Weights for **%s** (%s) updated.", tier, line)
		sendEmbed(s, i, createEmbed("⚙️ Rates Updated", desc, colorInfo, FooterGatherBotAdmin))
	}

	return cmd, handler
}

// cloneRates deep-copies a rates blob so the live snapshot stays untouched.
func cloneRates(rates gameconfig.Rates) gameconfig.Rates {
	out := gameconfig.Rates{
		RodTiers: make(map[string]gameconfig.Weights, len(rates.RodTiers)),
		AxeTiers: make(map[string]gameconfig.Weights, len(rates.AxeTiers)),
	}
	for tier, w := range rates.RodTiers {
		out.RodTiers[tier] = copyWeights(w)
	}
	for tier, w := range rates.AxeTiers {
		out.AxeTiers[tier] = copyWeights(w)
	}
	return out
}

func copyWeights(w gameconfig.Weights) gameconfig.Weights {
	out := make(gameconfig.Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// parseWeights parses a comma-separated weight list in rarity order.
func parseWeights(raw string) (gameconfig.Weights, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != len(domain.Rarities) {
		return nil, fmt.Errorf("expected %d weights, got %d", len(domain.Rarities), len(parts))
	}

	weights := make(gameconfig.Weights, len(domain.Rarities))
	for idx, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q is not a number", strings.TrimSpace(part))
		}
		weights[domain.Rarities[idx]] = v
	}
	return weights, nil
}

// SetEmojisCommand returns the emoji table command (admin only)
func SetEmojisCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "setemojis",
		Description: "[ADMIN] Set a display emoji, e.g. coin or rarity.Rare",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "key",
				Description: "Emoji key (coin, rarity.Common .. rarity.Mythic)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "value",
				Description: "Emoji to display (empty clears the override)",
				Required:    true,
			},
		},
		DefaultMemberPermissions: &adminPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := getOptions(i)
		key := opts[0].StringValue()
		value := opts[1].StringValue()

		emoji := svc.Config.EmojiTable()
		if value == "" {
			delete(emoji, key)
		} else {
			emoji[key] = value
		}

		if err := svc.Config.ReplaceEmoji(emoji); err != nil {
			slog.Error("Failed to update emoji table", "error", err)
			respondError(s, i, fmt.Sprintf("Failed to update emojis: %v", err))
			return
		}

		desc := fmt.Sprintf("`%s` now renders as %s", key, value)
		if value == "" {
			desc = fmt.Sprintf("`%s` override cleared", key)
		}
		sendEmbed(s, i, createEmbed("⚙️ Emojis Updated", desc, colorInfo, FooterGatherBotAdmin))
	}

	return cmd, handler
}
