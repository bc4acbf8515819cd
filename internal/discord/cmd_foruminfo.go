package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/request"
)

// ForumInfoCommand defines the /foruminfo slash command.
var ForumInfoCommand = &discordgo.ApplicationCommand{
	Name:        "foruminfo",
	Description: "Show the forum auto-scan configuration and supported title formats",
}

// HandleForumInfo needs access to the bot configuration, so it is built as a
// closure over the Bot rather than a plain CommandHandler.
func (b *Bot) HandleForumInfo(s *discordgo.Session, i *discordgo.InteractionCreate, _ *request.Pipeline) {
	var status string
	if b.WatchedForumID == "" {
		status = "Auto-scan is **disabled** (no forum configured)."
	} else {
		status = fmt.Sprintf("Watching forum channel <#%s> for new posts.", b.WatchedForumID)
	}

	description := status + "\n\n" +
		"New posts with these title formats are answered automatically:\n" +
		"• `<item name> for <character>` — e.g. `Fine Plate Vambraces for Koada`\n" +
		"• `<character> needs <item name>` — e.g. `Koada needs Fine Plate Vambraces`\n" +
		"• `request: <item name> - <character>` — e.g. `request: Fine Plate Vambraces - Koada`\n\n" +
		"Anything else in the forum is ignored."

	respondEmbed(s, i, infoEmbed("Forum Auto-Scan", description))
}
