package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/brinepool/gatherbot/internal/activity"
	"github.com/brinepool/gatherbot/internal/concurrency"
	"github.com/brinepool/gatherbot/internal/config"
	"github.com/brinepool/gatherbot/internal/discord"
	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/leaderboard"
	"github.com/brinepool/gatherbot/internal/logger"
	"github.com/brinepool/gatherbot/internal/store"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "gatherbot-discord",
		Environment: cfg.Environment,
	})

	botCfg, err := loadBotConfig()
	if err != nil {
		slog.Error("Discord configuration failed", "error", err)
		os.Exit(1)
	}

	svc, cleanup, err := buildServices(cfg)
	if err != nil {
		slog.Error("Failed to build game services", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	bot, err := discord.New(botCfg, svc)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	for _, factory := range getCommandFactories() {
		bot.Registry.Register(factory())
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadBotConfig loads and validates Discord bot configuration from
// environment variables.
func loadBotConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	return discord.Config{
		Token: token,
		AppID: appID,
	}, nil
}

// buildServices wires the in-process game core the bot commands call.
func buildServices(cfg *config.Config) (*discord.Services, func(), error) {
	var (
		st      store.Store
		cleanup = func() {}
	)
	if cfg.StoreBackend == config.BackendPostgres {
		pg, err := store.NewPGStore(context.Background(), cfg.GetDBConnString())
		if err != nil {
			return nil, nil, err
		}
		st = pg
		cleanup = pg.Close
	} else {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		st = fs
	}

	tables, err := gameconfig.Load(cfg.ConfigDir)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	locks := concurrency.NewKeyedLocks()
	return &discord.Services{
		Activity:    activity.NewService(st, locks, tables),
		Economy:     economy.NewService(st, locks, tables),
		Leaderboard: leaderboard.NewService(st),
		Config:      tables,
	}, cleanup, nil
}

// getCommandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		// Core commands
		discord.FishCommand,
		discord.ChopCommand,
		discord.BalanceCommand,
		discord.InventoryCommand,

		// Economy commands
		discord.SellCommand,
		discord.ShopCommand,
		discord.BuyCommand,
		discord.UpgradeCommand,

		// Stats commands
		discord.LeaderboardCommand,

		// Admin commands
		discord.SetCooldownCommand,
		discord.SetRatesCommand,
		discord.SetEmojisCommand,
	}
}
