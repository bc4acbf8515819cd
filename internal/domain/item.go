package domain

import (
	"bytes"
	"encoding/json"
)

// FlexID is an item identifier that upstream may encode as a JSON number,
// a string, or null. It normalizes to its string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// ItemRef is a single item row from the upstream catalog. The API is not
// consistent about which field carries the identifier, so all three known
// spellings are kept and resolved through ResolvedID.
type ItemRef struct {
	ID     FlexID `json:"id"`
	ItemID FlexID `json:"item_id"`
	DBID   FlexID `json:"dbid"`
	Name   string `json:"name"`
}

// ResolvedID returns the item identifier, trying id, then item_id, then dbid.
// The second return is false when none of the three fields is populated.
func (r ItemRef) ResolvedID() (string, bool) {
	for _, id := range []FlexID{r.ID, r.ItemID, r.DBID} {
		if id != "" {
			return string(id), true
		}
	}
	return "", false
}
