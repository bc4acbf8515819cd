package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/domain"
)

// Embed titles for the fixed set of user-facing replies
const (
	TitleProcessing      = "Processing Request"
	TitleItemNotFound    = "Item Not Found"
	TitleRecipeError     = "Recipe Error"
	TitleRecipeNotFound  = "Recipe Not Found"
	TitleInvalidItemID   = "Invalid Item ID"
	TitleInvalidCommand  = "Invalid Command"
	TitleProcessingError = "Processing Error"
)

// Fixed user-facing message bodies
const (
	MsgProcessingError = "An error occurred while processing your request. Please try again later."

	MsgRequestUsage = "Usage: `/request <item name> for <character>`\n" +
		"Example: `/request Black Acrylia Pick for Gandalf`\n" +
		"Also accepted: `<character> needs <item>` and `Request: <item> - <character>`"

	MsgRequestIDUsage = "Usage: `/requestid <character> <item_id>`\n" +
		"Example: `/requestid Mychar 3675`"
)

// failureReply maps a pipeline failure to its fixed user-facing embed.
// The reply depends only on the stage the request failed at, never on the
// underlying cause.
func failureReply(err error, item string) *discordgo.MessageEmbed {
	switch {
	case errors.Is(err, domain.ErrInvalidItemID):
		return errorEmbed(TitleInvalidItemID,
			fmt.Sprintf("Item ID must be a number.\nReceived: **%s**", item))
	case errors.Is(err, domain.ErrItemNotFound):
		return errorEmbed(TitleItemNotFound,
			fmt.Sprintf("Could not find item: **%s**\nPlease check the spelling and try again.", item))
	case errors.Is(err, domain.ErrItemIDMissing):
		return errorEmbed(TitleRecipeError,
			fmt.Sprintf("Could not retrieve item ID from search results for: **%s**", item))
	case errors.Is(err, domain.ErrRecipeNotFound):
		return errorEmbed(TitleRecipeNotFound,
			fmt.Sprintf("No crafting recipe found for: **%s**\nThis item may not be craftable.", item))
	default:
		return errorEmbed(TitleProcessingError, MsgProcessingError)
	}
}
