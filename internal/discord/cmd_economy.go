package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/economy"
)

func activityOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "activity",
		Description: "Which inventory to act on",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Fishing", Value: string(domain.ActivityFishing)},
			{Name: "Woodcutting", Value: string(domain.ActivityWoodcutting)},
		},
	}
}

// SellCommand returns the sell command definition and handler
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	rarityChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Rarities))
	for _, r := range domain.Rarities {
		rarityChoices = append(rarityChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(r),
			Value: string(r),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell from your inventory: one item, a whole rarity, or everything",
		Options: []*discordgo.ApplicationCommandOption{
			activityOption(),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Specific item to sell (omit to sell wider)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "rarity",
				Description: "Sell every item of this rarity",
				Required:    false,
				Choices:     rarityChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many to sell (default: all held)",
				Required:    false,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		var (
			act domain.Activity
			sel economy.SellSelection
		)
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "activity":
				act = domain.Activity(opt.StringValue())
			case "item":
				sel.Item = opt.StringValue()
			case "rarity":
				sel.Rarity = domain.Rarity(opt.StringValue())
			case "amount":
				sel.Amount = int(opt.IntValue())
			}
		}

		receipt, err := svc.Economy.Sell(commandContext(), user.ID, user.Username, act, sel)
		if err != nil {
			slog.Error("Failed to sell", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		coin := glyph(svc.Config.EmojiTable(), "coin", "🪙")
		desc := fmt.Sprintf("Sold **%d** items for **%d** %s", receipt.ItemsSold, receipt.TotalValue, coin)
		sendEmbed(s, i, createEmbed("💰 Sale Complete", desc, colorSell, ""))
	}

	return cmd, handler
}

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse available upgrades and your next gear tier",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		rec, err := svc.Economy.Profile(commandContext(), user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to load profile for shop", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		coin := glyph(svc.Config.EmojiTable(), "coin", "🪙")
		var b strings.Builder

		b.WriteString("**Gear** (buy with `/buy`)\n")
		for _, line := range []domain.EquipmentLine{domain.LineRod, domain.LineAxe} {
			current := rec.EquipmentFor(line).Tier
			if name, cost, ok := economy.NextTier(line, current); ok {
				fmt.Fprintf(&b, "• %s: **%s** for %d %s\n", line, name, cost, coin)
			} else {
				fmt.Fprintf(&b, "• %s: max tier reached\n", line)
			}
		}

		b.WriteString("\n**Upgrades** (buy with `/upgrade`)\n")
		for _, item := range economy.ShopCatalog() {
			level := rec.UpgradeLevel(item.Key)
			cost, ok, err := economy.UpgradeCost(item.Key, level)
			if err != nil {
				continue
			}
			if !ok {
				fmt.Fprintf(&b, "• **%s** — max level\n", item.Name)
				continue
			}
			fmt.Fprintf(&b, "• **%s** (level %d) — next for %d %s\n  %s\n", item.Name, level, cost, coin, item.Description)
		}

		fmt.Fprintf(&b, "\nYour balance: **%d** %s", rec.Currency, coin)
		sendEmbed(s, i, createEmbed("🏪 Shop", b.String(), colorInfo, ""))
	}

	return cmd, handler
}

// BuyCommand returns the gear tier purchase command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy the next tier of your rod or axe",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "gear",
				Description: "Which tool line to upgrade",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Rod", Value: string(domain.LineRod)},
					{Name: "Axe", Value: string(domain.LineAxe)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		line := domain.EquipmentLine(getOptions(i)[0].StringValue())

		receipt, err := svc.Economy.PurchaseTierUpgrade(commandContext(), user.ID, user.Username, line)
		if err != nil {
			slog.Error("Failed to buy tier", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		coin := glyph(svc.Config.EmojiTable(), "coin", "🪙")
		desc := fmt.Sprintf("You now wield the **%s**!\nPaid %d %s, %d %s left.",
			receipt.NewTier, receipt.Cost, coin, receipt.Balance, coin)
		sendEmbed(s, i, createEmbed("⬆️ Gear Upgraded", desc, colorGold, ""))
	}

	return cmd, handler
}

// UpgradeCommand returns the leveled upgrade purchase command definition and handler
func UpgradeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 4)
	for _, item := range economy.ShopCatalog() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.Name,
			Value: item.Key,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "upgrade",
		Description: "Level up a tool upgrade",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "upgrade",
				Description: "Upgrade to level",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		key := getOptions(i)[0].StringValue()

		receipt, err := svc.Economy.PurchaseLeveledUpgrade(commandContext(), user.ID, user.Username, key)
		if err != nil {
			slog.Error("Failed to buy upgrade", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		coin := glyph(svc.Config.EmojiTable(), "coin", "🪙")
		desc := fmt.Sprintf("**%s** is now level **%d**.\nPaid %d %s, %d %s left.",
			receipt.Name, receipt.NewLevel, receipt.Cost, coin, receipt.Balance, coin)
		sendEmbed(s, i, createEmbed("⬆️ Upgrade Purchased", desc, colorGold, ""))
	}

	return cmd, handler
}
