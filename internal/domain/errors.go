package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgItemNotFound   = "item not found"
	ErrMsgItemIDMissing  = "item id missing from search result"
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgRecipeParse    = "failed to parse recipe payload"
	ErrMsgInvalidItemID  = "item id must be numeric"
)

// Pipeline errors. Each maps to exactly one user-facing reply, chosen by the
// stage at which the request failed.
// Wrap these with fmt.Errorf("%w: ...", domain.ErrXxx) for additional context.
var (
	// ErrItemNotFound: the catalog search returned no usable item.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrItemIDMissing: the search hit carried none of the known ID fields.
	ErrItemIDMissing = errors.New(ErrMsgItemIDMissing)

	// ErrRecipeNotFound: the trades endpoint has no recipe for the item.
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// ErrRecipeParse: the recipe payload could not be parsed at all.
	ErrRecipeParse = errors.New(ErrMsgRecipeParse)

	// ErrInvalidItemID: user-supplied item ID contains non-digit characters.
	ErrInvalidItemID = errors.New(ErrMsgInvalidItemID)
)
