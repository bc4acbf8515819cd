package eqdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/quarm-tools/craftbot/internal/domain"
	"github.com/quarm-tools/craftbot/internal/logger"
)

// rawRecipe mirrors one recipe object from the trades endpoint. Numeric
// fields arrive as numbers or strings depending on the upstream mood, so the
// coercible ones stay raw until parsed.
type rawRecipe struct {
	Name        string          `json:"name"`
	Trivial     json.RawMessage `json:"trivial"`
	SkillNeeded json.RawMessage `json:"skillneeded"`
	Tradeskill  *int            `json:"tradeskill"`
	Entries     []rawEntry      `json:"tradeskill_entries"`
}

// rawEntry is one row of a recipe's tradeskill_entries list.
type rawEntry struct {
	ItemID         domain.FlexID `json:"item_id"`
	IsContainer    int           `json:"iscontainer"`
	ComponentCount int           `json:"componentcount"`
}

// GetRecipe fetches and fully resolves the crafting recipe for an item ID.
// It returns domain.ErrRecipeNotFound when the item has no recipe (an
// expected outcome) and domain.ErrRecipeParse when the payload exists but
// cannot be understood.
func (c *Client) GetRecipe(ctx context.Context, itemID string) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)
	log.Info("fetching recipe", "item_id", itemID)

	body, ok := c.get(ctx, endpointTrades, map[string]string{"id": itemID})
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}

	data := bytes.TrimSpace(body)
	switch {
	case len(data) == 0:
		return nil, domain.ErrRecipeNotFound

	case data[0] == '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			log.Error("undecodable recipe list", "item_id", itemID, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrRecipeParse, err)
		}
		if len(list) == 0 {
			log.Info("empty recipe list", "item_id", itemID)
			return nil, domain.ErrRecipeNotFound
		}
		// The trades endpoint yields one recipe per item in practice;
		// later elements are discarded.
		return c.parseRecipe(ctx, list[0])

	case data[0] == '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			log.Error("undecodable recipe object", "item_id", itemID, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrRecipeParse, err)
		}
		if len(fields) == 0 || markedNoRecipe(fields) {
			log.Info("api indicates no recipe", "item_id", itemID)
			return nil, domain.ErrRecipeNotFound
		}
		return c.parseRecipe(ctx, data)

	default:
		log.Warn("unexpected recipe payload shape", "item_id", itemID)
		return nil, domain.ErrRecipeNotFound
	}
}

// markedNoRecipe reports whether the payload carries an explicit "no recipe"
// marker: a truthy error field or success set to false.
func markedNoRecipe(fields map[string]json.RawMessage) bool {
	if raw, ok := fields["error"]; ok && truthy(raw) {
		return true
	}
	if raw, ok := fields["success"]; ok && string(bytes.TrimSpace(raw)) == "false" {
		return true
	}
	return false
}

func truthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}

// parseRecipe expands one raw recipe object into a resolved Recipe,
// looking up component and container names along the way.
func (c *Client) parseRecipe(ctx context.Context, data []byte) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	var raw rawRecipe
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error("failed to parse recipe payload", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRecipeParse, err)
	}

	name := raw.Name
	if name == "" {
		name = domain.UnknownRecipeName
	}

	skillLevel := 0
	if len(raw.SkillNeeded) > 0 {
		if lvl, ok := coerceInt(raw.SkillNeeded); ok {
			skillLevel = lvl
		} else {
			log.Warn("invalid skillneeded value, defaulting to 0", "value", string(raw.SkillNeeded))
		}
	}

	var trivial *int
	if len(raw.Trivial) > 0 {
		if lvl, ok := coerceInt(raw.Trivial); ok {
			trivial = &lvl
		} else {
			log.Warn("invalid trivial value, dropping", "value", string(raw.Trivial))
		}
	}

	station, components := c.resolveEntries(ctx, raw.Entries)

	recipe := &domain.Recipe{
		Name:            name,
		SkillLevel:      skillLevel,
		Profession:      domain.ProfessionName(raw.Tradeskill),
		CraftingStation: station,
		Components:      components,
		// The trades payload has no success-rate field.
		TrivialLevel: trivial,
	}

	log.Debug("parsed recipe", "name", recipe.Name, "profession", recipe.Profession, "components", len(recipe.Components))
	return recipe, nil
}

// resolveEntries classifies tradeskill entries and resolves their item names.
// Each entry is exactly one of: the crafting container (iscontainer set), a
// consumed component (componentcount > 0), or metadata that is skipped.
// Name lookups fan out concurrently; component order follows entry order.
// Repeated item IDs are looked up repeatedly, matching upstream semantics.
func (c *Client) resolveEntries(ctx context.Context, entries []rawEntry) (string, []domain.Component) {
	type lookup struct {
		itemID    string
		quantity  int
		container bool
	}

	lookups := make([]lookup, 0, len(entries))
	for _, entry := range entries {
		switch {
		case entry.IsContainer == 1:
			lookups = append(lookups, lookup{itemID: string(entry.ItemID), container: true})
		case entry.ComponentCount > 0:
			lookups = append(lookups, lookup{itemID: string(entry.ItemID), quantity: entry.ComponentCount})
		}
	}

	// Each goroutine writes only its own slot, so no lock is needed.
	names := make([]string, len(lookups))
	p := pool.New().WithMaxGoroutines(c.concurrency)
	for idx, lk := range lookups {
		idx, lk := idx, lk
		p.Go(func() {
			if ref, ok := c.GetByID(ctx, lk.itemID); ok && ref.Name != "" {
				names[idx] = ref.Name
			}
		})
	}
	p.Wait()

	station := domain.UnknownStation
	components := make([]domain.Component, 0, len(lookups))
	for idx, lk := range lookups {
		if lk.container {
			if names[idx] != "" {
				station = names[idx]
			} else {
				station = fmt.Sprintf("Container ID: %s", lk.itemID)
			}
			continue
		}
		name := names[idx]
		if name == "" {
			name = fmt.Sprintf("Item ID: %s", lk.itemID)
		}
		components = append(components, domain.Component{
			Name:     name,
			Quantity: lk.quantity,
			ItemID:   lk.itemID,
		})
	}

	return station, components
}

// coerceInt converts a numeric or numeric-string JSON value to an int.
func coerceInt(raw json.RawMessage) (int, bool) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
