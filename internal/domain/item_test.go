package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want FlexID
	}{
		{"number", `1287`, "1287"},
		{"string", `"1287"`, "1287"},
		{"null", `null`, ""},
		{"large number stays exact", `1234567890123`, "1234567890123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			require.NoError(t, json.Unmarshal([]byte(tt.data), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	t.Run("rejects non-scalar", func(t *testing.T) {
		var id FlexID
		assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &id))
	})
}

func TestItemRefResolvedID(t *testing.T) {
	t.Run("id wins over the rest", func(t *testing.T) {
		ref := ItemRef{ID: "1", ItemID: "2", DBID: "3"}
		id, ok := ref.ResolvedID()
		assert.True(t, ok)
		assert.Equal(t, "1", id)
	})

	t.Run("falls back to item_id then dbid", func(t *testing.T) {
		id, ok := ItemRef{ItemID: "2", DBID: "3"}.ResolvedID()
		assert.True(t, ok)
		assert.Equal(t, "2", id)

		id, ok = ItemRef{DBID: "3"}.ResolvedID()
		assert.True(t, ok)
		assert.Equal(t, "3", id)
	})

	t.Run("no id at all", func(t *testing.T) {
		_, ok := ItemRef{Name: "Ghost Item"}.ResolvedID()
		assert.False(t, ok)
	})
}
