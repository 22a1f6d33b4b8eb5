package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/domain"
)

// FishCommand returns the fish command definition and handler
func FishCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fish",
		Description: "Cast your rod and try to catch something",
	}
	return cmd, actionHandler("🎣 Gone Fishing", func(svc *Services) attemptFunc {
		return svc.Activity.AttemptFish
	})
}

// ChopCommand returns the chop command definition and handler
func ChopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "chop",
		Description: "Swing your axe and fell some timber",
	}
	return cmd, actionHandler("🪓 Timber!", func(svc *Services) attemptFunc {
		return svc.Activity.AttemptChop
	})
}

type attemptFunc func(ctx context.Context, userKey, username string) (domain.ActionResult, error)

// actionHandler builds the shared fish/chop handler: defer, attempt,
// render the outcome. Cooldown rejections render as a normal embed.
func actionHandler(title string, pick func(svc *Services) attemptFunc) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		res, err := pick(svc)(commandContext(), user.ID, user.Username)
		if err != nil {
			slog.Error("Action failed", "command", title, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		desc, color := renderActionResult(svc.Config.EmojiTable(), res)
		sendEmbed(s, i, createEmbed(title, desc, color, ""))
	}
}
