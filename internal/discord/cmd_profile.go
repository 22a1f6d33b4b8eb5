package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/domain"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show your coins, gear and lifetime stats",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		rec, err := svc.Economy.Profile(commandContext(), user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to load profile", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		emoji := svc.Config.EmojiTable()
		coin := glyph(emoji, "coin", "🪙")

		var b strings.Builder
		fmt.Fprintf(&b, "%s **%d** coins\n\n", coin, rec.Currency)
		fmt.Fprintf(&b, "🎣 **%s** (level %d)\n", rec.Rod.Tier, rec.Rod.Level)
		fmt.Fprintf(&b, "🪓 **%s** (level %d)\n", rec.Axe.Tier, rec.Axe.Level)

		if len(rec.Upgrades) > 0 {
			b.WriteString("\n**Upgrades**\n")
			for _, key := range []string{
				domain.UpgradeHookSharpness,
				domain.UpgradeLineStrength,
				domain.UpgradeBladeSharpness,
				domain.UpgradeHandleStrength,
			} {
				if lvl := rec.Upgrades[key]; lvl > 0 {
					fmt.Fprintf(&b, "• %s: level %d\n", key, lvl)
				}
			}
		}

		fmt.Fprintf(&b, "\n🐟 %d catches | 🪵 %d chops", rec.Stats.TotalCatches, rec.Stats.TotalChops)

		sendEmbed(s, i, createEmbed(fmt.Sprintf("Profile: %s", rec.Username), b.String(), colorInfo, ""))
	}

	return cmd, handler
}

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show everything you've caught and chopped",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		ctx := commandContext()
		rec, err := svc.Economy.Profile(ctx, user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to load inventory", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		total, err := svc.Economy.InventoryValue(ctx, user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to value inventory", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		emoji := svc.Config.EmojiTable()
		var b strings.Builder
		empty := true
		for _, act := range []domain.Activity{domain.ActivityFishing, domain.ActivityWoodcutting} {
			section := renderInventorySection(emoji, rec.Inventory, act)
			if section == "" {
				continue
			}
			empty = false
			b.WriteString(section)
		}

		if empty {
			b.WriteString("Your pack is empty. Try `/fish` or `/chop`!")
		} else {
			coin := glyph(emoji, "coin", "🪙")
			fmt.Fprintf(&b, "\nSell value: **%d** %s", total, coin)
		}

		sendEmbed(s, i, createEmbed("🎒 Inventory", b.String(), colorInfo, ""))
	}

	return cmd, handler
}

// renderInventorySection lists one activity's holdings from rarest to most
// common, skipping empty rarities. Returns "" when nothing is held.
func renderInventorySection(emoji map[string]string, inv domain.Inventory, act domain.Activity) string {
	byRarity := inv[act]
	if len(byRarity) == 0 {
		return ""
	}

	header := "🐟 **Fish**\n"
	if act == domain.ActivityWoodcutting {
		header = "🪵 **Logs**\n"
	}

	var b strings.Builder
	b.WriteString(header)
	for idx := len(domain.Rarities) - 1; idx >= 0; idx-- {
		rarity := domain.Rarities[idx]
		items := byRarity[rarity]
		if len(items) == 0 {
			continue
		}
		for _, name := range domain.ItemsByRarity(act)[rarity] {
			if count := items[name]; count > 0 {
				fmt.Fprintf(&b, "%s %s x%d\n", rarityGlyph(emoji, rarity), name, count)
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}
