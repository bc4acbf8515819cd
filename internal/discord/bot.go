package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/request"
)

// Bot represents the Discord bot
type Bot struct {
	Session        *discordgo.Session
	Pipeline       *request.Pipeline
	AppID          string
	WatchedForumID string
	Registry       *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token          string
	AppID          string
	WatchedForumID string
}

// New creates a new Discord bot wired to the given resolution pipeline.
func New(cfg Config, pipeline *request.Pipeline) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Guild intent is required for thread-create events from the watched forum.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Bot{
		Session:        s,
		Pipeline:       pipeline,
		AppID:          cfg.AppID,
		WatchedForumID: cfg.WatchedForumID,
		Registry:       NewCommandRegistry(),
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.threadCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.WatchedForumID == "" {
		slog.Warn("WATCHED_FORUM_ID not set, forum auto-scan disabled; manual commands still work")
	} else {
		slog.Info("Watching forum for crafting requests", "forum_id", b.WatchedForumID)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Pipeline)
	}
}
