package request

import (
	"context"
	"errors"

	"github.com/quarm-tools/craftbot/internal/domain"
	"github.com/quarm-tools/craftbot/internal/logger"
)

// Stage identifies how far a crafting request progressed. A request moves
// through the stages in order and stops at the first failure; the failing
// stage alone determines the user-facing reply.
type Stage int

const (
	StageReceived Stage = iota
	StageParsed
	StageItemResolved
	StageRecipeFetched
	StageFormatted
)

func (s Stage) String() string {
	switch s {
	case StageReceived:
		return "received"
	case StageParsed:
		return "parsed"
	case StageItemResolved:
		return "item_resolved"
	case StageRecipeFetched:
		return "recipe_fetched"
	case StageFormatted:
		return "formatted"
	default:
		return "unknown"
	}
}

// FailureStage maps a pipeline error to the stage it occurred at.
func FailureStage(err error) Stage {
	switch {
	case errors.Is(err, domain.ErrInvalidItemID):
		return StageReceived
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrItemIDMissing):
		return StageParsed
	case errors.Is(err, domain.ErrRecipeNotFound):
		return StageItemResolved
	default:
		return StageRecipeFetched
	}
}

// Catalog is the upstream lookup surface the pipeline depends on.
type Catalog interface {
	SearchByName(ctx context.Context, name string) (*domain.ItemRef, bool)
	GetByID(ctx context.Context, itemID string) (*domain.ItemRef, bool)
	GetRecipe(ctx context.Context, itemID string) (*domain.Recipe, error)
}

// Pipeline resolves crafting requests end to end: item text to catalog ID to
// fully expanded recipe. It holds no per-request state; one Pipeline serves
// all in-flight requests.
type Pipeline struct {
	catalog Catalog
}

// NewPipeline creates a resolution pipeline backed by the given catalog.
func NewPipeline(catalog Catalog) *Pipeline {
	return &Pipeline{catalog: catalog}
}

// ResolveByName resolves free-text item name to a recipe: catalog search,
// ID extraction, then recipe fetch.
func (p *Pipeline) ResolveByName(ctx context.Context, item string) (*domain.Recipe, error) {
	ref, ok := p.catalog.SearchByName(ctx, item)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	itemID, ok := ref.ResolvedID()
	if !ok {
		logger.FromContext(ctx).Warn("search hit carries no usable id", "item", item)
		return nil, domain.ErrItemIDMissing
	}

	return p.fetchRecipe(ctx, itemID)
}

// ResolveByID resolves a user-supplied numeric item ID to a recipe. The ID
// is validated as all-digits before any network call is made.
func (p *Pipeline) ResolveByID(ctx context.Context, itemID string) (*domain.Recipe, error) {
	if !IsNumericID(itemID) {
		return nil, domain.ErrInvalidItemID
	}
	return p.fetchRecipe(ctx, itemID)
}

// fetchRecipe fetches the recipe, degrading an unparseable payload to the
// sentinel recipe. This is the single point where a parse fault turns into a
// reportable, recipe-shaped answer instead of an error.
func (p *Pipeline) fetchRecipe(ctx context.Context, itemID string) (*domain.Recipe, error) {
	recipe, err := p.catalog.GetRecipe(ctx, itemID)
	if errors.Is(err, domain.ErrRecipeParse) {
		logger.FromContext(ctx).Error("recipe parse failed, degrading to sentinel", "item_id", itemID, "error", err)
		return domain.SentinelRecipe(), nil
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// IsNumericID reports whether s is a plausible item ID: one or more ASCII
// digits and nothing else.
func IsNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
