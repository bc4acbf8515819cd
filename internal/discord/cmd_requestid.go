package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/logger"
	"github.com/quarm-tools/craftbot/internal/metrics"
	"github.com/quarm-tools/craftbot/internal/request"
)

// RequestIDCommand defines the /requestid slash command for direct item-ID lookups.
var RequestIDCommand = &discordgo.ApplicationCommand{
	Name:        "requestid",
	Description: "Look up a crafting recipe by item ID",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "character",
			Description: "The character the item is for",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "item_id",
			Description: "The numeric item ID",
			Required:    true,
		},
	},
}

// HandleRequestID handles the /requestid command. The ID is validated before
// anything is sent so a bad ID never produces a processing placeholder.
func HandleRequestID(s *discordgo.Session, i *discordgo.InteractionCreate, pipeline *request.Pipeline) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	var character, itemID string
	for _, opt := range getOptions(i) {
		switch opt.Name {
		case "character":
			character = opt.StringValue()
		case "item_id":
			itemID = opt.StringValue()
		}
	}

	if !request.IsNumericID(itemID) {
		respondEmbed(s, i, errorEmbed(TitleInvalidItemID,
			fmt.Sprintf("'%s' is not a valid item ID. %s", itemID, MsgRequestIDUsage)))
		return
	}

	metrics.RequestsTotal.WithLabelValues(metrics.SourceCommand).Inc()
	log.Info("processing requestid command",
		"item_id", itemID, "character", character, "user", getInteractionUser(i).ID)

	label := "Item " + itemID
	if !respondEmbed(s, i, processingEmbed(label, character)) {
		return
	}

	recipe, err := pipeline.ResolveByID(ctx, itemID)
	if err != nil {
		metrics.RequestFailures.WithLabelValues(request.FailureStage(err).String()).Inc()
		editResponse(s, i, failureReply(err, label))
		return
	}

	editResponse(s, i, recipeEmbed(recipe, character))
}
