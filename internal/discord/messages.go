package discord

import (
	"fmt"
	"time"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
)

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYou don't have enough coins for this purchase."
	MsgMaxTier           = "🏆 **Top Tier!**\nYour gear is already the best available."
	MsgMaxLevel          = "🏆 **Maxed Out!**\nThat upgrade is already at its highest level."

	// Items & Inventory
	MsgItemNotFound   = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgNothingToSell  = "🎒 **Nothing To Sell**\nYou don't have anything matching that."
	MsgNotEnoughItems = "🎒 **Not Enough Items**\nYou don't have enough of that item."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors per activity and result family.
const (
	colorFishing = 0x3498db
	colorWood    = 0x27ae60
	colorGold    = 0xf1c40f
	colorSell    = 0xf39c12
	colorInfo    = 0x95a5a6
	colorError   = 0xe74c3c
)

// glyph looks up a cosmetic emoji by key, falling back when the admin
// table has no entry.
func glyph(emoji gameconfig.Emoji, key, fallback string) string {
	if g, ok := emoji[key]; ok && g != "" {
		return g
	}
	return fallback
}

// rarityGlyph returns the display glyph for a rarity.
func rarityGlyph(emoji gameconfig.Emoji, rarity domain.Rarity) string {
	fallbacks := map[domain.Rarity]string{
		domain.RarityCommon:    "⚪",
		domain.RarityUncommon:  "🟢",
		domain.RarityRare:      "🔵",
		domain.RarityEpic:      "🟣",
		domain.RarityLegendary: "🟠",
		domain.RarityMythic:    "🔴",
	}
	return glyph(emoji, "rarity."+string(rarity), fallbacks[rarity])
}

// formatDuration renders a remaining cooldown as "4m 3s" / "42s".
func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// renderActionResult builds the embed body for a fish or chop outcome.
func renderActionResult(emoji gameconfig.Emoji, res domain.ActionResult) (string, int) {
	if res.OnCooldown {
		return fmt.Sprintf("⏳ **Whoa there!**\nWait for: **%s**", formatDuration(res.RemainingSeconds)), colorError
	}

	verb := "caught"
	coin := glyph(emoji, "coin", "🪙")
	color := colorFishing
	if res.Activity == domain.ActivityWoodcutting {
		verb = "chopped"
		color = colorWood
	}

	desc := fmt.Sprintf("You %s a %s **%s** (%s)!\nEarned **%d** %s",
		verb, rarityGlyph(emoji, res.Rarity), res.Item, res.Rarity, res.Value, coin)

	if res.BonusEvent {
		bonus := "✨ **Golden Bite!** Your haul was doubled!"
		if res.Activity == domain.ActivityWoodcutting {
			bonus = "✨ **Timber Bite!** Your haul was doubled!"
		}
		desc += "\n\n" + bonus
		color = colorGold
	}

	return desc, color
}
