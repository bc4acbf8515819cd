package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/request"
)

// CraftHelpCommand defines the /crafthelp slash command.
var CraftHelpCommand = &discordgo.ApplicationCommand{
	Name:        "crafthelp",
	Description: "Show how to use the crafting request bot",
}

// HandleCraftHelp handles the /crafthelp command.
func HandleCraftHelp(s *discordgo.Session, i *discordgo.InteractionCreate, _ *request.Pipeline) {
	description := "I look up EverQuest crafting recipes from eqdb.net.\n\n" +
		"**Commands**\n" +
		"• `/request <text>` — look up a recipe by item name, e.g. `/request Fine Plate Vambraces for Koada`\n" +
		"• `/requestid <character> <item_id>` — look up a recipe by numeric item ID\n" +
		"• `/foruminfo` — show the forum auto-scan configuration\n" +
		"• `/crafthelp` — this message\n\n" +
		"**Forum posts**\n" +
		"Posting in the watched forum with a title like `Fine Plate Vambraces for Koada` " +
		"gets an automatic recipe reply in the thread."

	respondEmbed(s, i, infoEmbed("Crafting Request Bot", description))
}
