package domain

import "time"

// CraftingRequest captures one inbound crafting request for the duration of
// its handling. It is never persisted.
type CraftingRequest struct {
	Requester string
	Item      string
	Character string
	Timestamp time.Time
}
