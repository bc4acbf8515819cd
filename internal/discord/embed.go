package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/domain"
)

// Embed colors
const (
	colorBlue  = 0x3498db
	colorRed   = 0xe74c3c
	colorGreen = 0x2ecc71
)

// FooterCraftbot is the standard footer for embeds, crediting the data source.
const FooterCraftbot = "Data from eqdb.net"

// componentFieldLimit is the ceiling Discord imposes on an embed field value.
// The components list is truncated to fit under it.
const componentFieldLimit = 1000

const truncationMarker = "..."

// recipeEmbed projects a resolved recipe into its display form.
func recipeEmbed(recipe *domain.Recipe, character string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔨 Recipe: %s", recipe.Name),
		Description: fmt.Sprintf("Requested for character: **%s**", character),
		Color:       colorBlue,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterCraftbot,
		},
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "📊 Details",
		Value: fmt.Sprintf("**Profession:** %s\n**Skill Level:** %d\n**Crafting Station:** %s",
			recipe.Profession, recipe.SkillLevel, recipe.CraftingStation),
		Inline: true,
	})

	if recipe.TrivialLevel != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎯 Trivial Level",
			Value:  strconv.Itoa(*recipe.TrivialLevel),
			Inline: true,
		})
	}

	if recipe.SuccessRate != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📈 Success Rate",
			Value:  recipe.SuccessRate,
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "📦 Required Components",
		Value:  componentsField(recipe.Components),
		Inline: false,
	})

	return embed
}

// componentsField renders the component list one "quantity x name" entry per
// line, truncated with a marker when it would exceed the field limit.
func componentsField(components []domain.Component) string {
	if len(components) == 0 {
		return "No components listed"
	}

	var sb strings.Builder
	for _, comp := range components {
		fmt.Fprintf(&sb, "• %dx %s\n", comp.Quantity, comp.Name)
	}

	text := sb.String()
	if len(text) <= componentFieldLimit {
		return text
	}

	cut := componentFieldLimit - len(truncationMarker)
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationMarker
}

// processingEmbed is the placeholder shown while a request is being resolved.
func processingEmbed(item, character string) *discordgo.MessageEmbed {
	return infoEmbed(TitleProcessing,
		fmt.Sprintf("Searching for recipe: **%s**\nFor character: **%s**", item, character))
}

// infoEmbed creates an informational embed
func infoEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "ℹ️ " + title,
		Description: description,
		Color:       colorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterCraftbot,
		},
	}
}

// errorEmbed creates an error embed
func errorEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ " + title,
		Description: description,
		Color:       colorRed,
	}
}
