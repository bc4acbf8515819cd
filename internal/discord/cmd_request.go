package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/logger"
	"github.com/quarm-tools/craftbot/internal/metrics"
	"github.com/quarm-tools/craftbot/internal/request"
)

// RequestCommand defines the /request slash command.
var RequestCommand = &discordgo.ApplicationCommand{
	Name:        "request",
	Description: "Look up a crafting recipe, e.g. 'Fine Plate Vambraces for Koada'",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: "The request text, same format as a forum post title",
			Required:    true,
		},
	},
}

// HandleRequest handles the /request command.
func HandleRequest(s *discordgo.Session, i *discordgo.InteractionCreate, pipeline *request.Pipeline) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	var text string
	for _, opt := range getOptions(i) {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}

	item, character, ok := request.ParseTitle(text)
	if !ok {
		respondEmbed(s, i, errorEmbed(TitleInvalidCommand, MsgRequestUsage))
		return
	}

	metrics.RequestsTotal.WithLabelValues(metrics.SourceCommand).Inc()
	log.Info("processing request command",
		"item", item, "character", character, "user", getInteractionUser(i).ID)

	if !respondEmbed(s, i, processingEmbed(item, character)) {
		return
	}

	recipe, err := pipeline.ResolveByName(ctx, item)
	if err != nil {
		metrics.RequestFailures.WithLabelValues(request.FailureStage(err).String()).Inc()
		editResponse(s, i, failureReply(err, item))
		return
	}

	editResponse(s, i, recipeEmbed(recipe, character))
}
