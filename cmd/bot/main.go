package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/config"
	"github.com/quarm-tools/craftbot/internal/discord"
	"github.com/quarm-tools/craftbot/internal/eqdb"
	"github.com/quarm-tools/craftbot/internal/logger"
	"github.com/quarm-tools/craftbot/internal/request"
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

	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})

	catalog := eqdb.NewClient(cfg.EQDBBaseURL, cfg.HTTPTimeout, cfg.LookupConcurrency)
	pipeline := request.NewPipeline(catalog)

	bot, err := discord.New(discord.Config{
		Token:          cfg.DiscordToken,
		AppID:          cfg.DiscordAppID,
		WatchedForumID: cfg.WatchedForumID,
	}, pipeline)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories(bot))

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// getCommandFactories returns all Discord commands in one place.
// Note: ForumInfoCommand needs the bot instance, so it is wrapped here.
func getCommandFactories(bot *discord.Bot) []CommandFactory {
	return []CommandFactory{
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.RequestCommand, discord.HandleRequest
		},
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.RequestIDCommand, discord.HandleRequestID
		},
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.ForumInfoCommand, bot.HandleForumInfo
		},
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.CraftHelpCommand, discord.HandleCraftHelp
		},
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
