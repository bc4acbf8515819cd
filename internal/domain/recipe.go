package domain

import "fmt"

// Component represents a single consumed ingredient of a recipe
type Component struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	ItemID   string `json:"item_id"`
}

// Recipe represents a fully resolved crafting recipe.
// A Recipe is constructed once per fetch and never mutated afterwards.
type Recipe struct {
	Name            string      `json:"name"`
	SkillLevel      int         `json:"skill_level"`
	Profession      string      `json:"profession"`
	CraftingStation string      `json:"crafting_station"`
	Components      []Component `json:"components"`
	SuccessRate     string      `json:"success_rate,omitempty"`
	TrivialLevel    *int        `json:"trivial_level,omitempty"`
}

// Fallback display values when upstream omits or garbles a field
const (
	UnknownRecipeName  = "Unknown Recipe"
	UnknownProfession  = "Unknown"
	UnknownStation     = "Unknown"
	SentinelRecipeName = "Error parsing recipe"
)

// tradeskillNames maps EverQuest tradeskill IDs to production skill names.
// Only crafting/production skills are listed; combat skills never appear in
// recipe payloads.
var tradeskillNames = map[int]string{
	55: "Fishing",
	56: "Make Poison",
	57: "Tinkering",
	58: "Research",
	59: "Alchemy",
	60: "Baking",
	61: "Tailoring",
	63: "Blacksmithing",
	64: "Fletching",
	65: "Brewing",
	68: "Jewelry Making",
	69: "Pottery",
}

// ProfessionName resolves a tradeskill ID to its display name.
// A nil ID renders "Unknown", an unmapped ID renders "Unknown Skill (<id>)".
func ProfessionName(tradeskillID *int) string {
	if tradeskillID == nil {
		return UnknownProfession
	}
	if name, ok := tradeskillNames[*tradeskillID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Skill (%d)", *tradeskillID)
}

// SentinelRecipe returns the placeholder recipe used when a recipe payload
// cannot be parsed at all. It keeps the reply path uniform: the user sees a
// recipe-shaped answer naming the failure instead of a crash.
func SentinelRecipe() *Recipe {
	return &Recipe{
		Name:            SentinelRecipeName,
		SkillLevel:      0,
		Profession:      UnknownProfession,
		CraftingStation: UnknownStation,
		Components:      []Component{},
	}
}
