package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/domain"
	"github.com/quarm-tools/craftbot/internal/logger"
	"github.com/quarm-tools/craftbot/internal/metrics"
	"github.com/quarm-tools/craftbot/internal/request"
)

// threadCreate receives every new thread in the guild and filters down to
// freshly created posts in the watched forum.
func (b *Bot) threadCreate(s *discordgo.Session, t *discordgo.ThreadCreate) {
	if b.WatchedForumID == "" || t.ParentID != b.WatchedForumID {
		return
	}
	if !t.NewlyCreated {
		return
	}

	go b.processForumPost(s, t.Channel)
}

// processForumPost runs the full pipeline for one forum post: parse the
// title, send the processing placeholder, resolve, then edit in the result.
// A title that is not a crafting request is silently ignored; most forum
// posts are unrelated and must not draw an error reply.
func (b *Bot) processForumPost(s *discordgo.Session, thread *discordgo.Channel) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while processing forum post", "panic", r)
			// Best effort; if even this fails there is nothing left to do.
			_, _ = s.ChannelMessageSendEmbed(thread.ID, errorEmbed(TitleProcessingError, MsgProcessingError))
		}
	}()

	item, character, ok := request.ParseTitle(thread.Name)
	if !ok {
		log.Debug("thread title is not a crafting request", "title", thread.Name)
		return
	}

	metrics.RequestsTotal.WithLabelValues(metrics.SourceForum).Inc()

	req := domain.CraftingRequest{
		Requester: thread.OwnerID,
		Item:      item,
		Character: character,
		Timestamp: time.Now().UTC(),
	}
	log.Info("processing forum crafting request",
		"item", req.Item, "character", req.Character, "requester", req.Requester)

	placeholder, err := s.ChannelMessageSendEmbed(thread.ID, processingEmbed(item, character))
	if err != nil {
		log.Error("failed to send processing message", "error", err)
		return
	}

	recipe, err := b.Pipeline.ResolveByName(ctx, item)
	if err != nil {
		metrics.RequestFailures.WithLabelValues(request.FailureStage(err).String()).Inc()
		b.editMessage(s, thread.ID, placeholder.ID, failureReply(err, item))
		return
	}

	b.editMessage(s, thread.ID, placeholder.ID, recipeEmbed(recipe, character))
	log.Info("forum recipe request fulfilled", "item", item, "character", character)
}

func (b *Bot) editMessage(s *discordgo.Session, channelID, messageID string, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageEditEmbed(channelID, messageID, embed); err != nil {
		slog.Error("Failed to edit message", "channel_id", channelID, "error", err)
	}
}
