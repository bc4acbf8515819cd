package discord

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRequestID(t *testing.T) {
	t.Run("non-numeric id gets a fixed reply and no lookup", func(t *testing.T) {
		ctx := SetupTestContext(t)
		capture := &discordCapture{}
		capture.install(ctx)

		i := newTestInteraction("requestid", map[string]string{
			"character": "Mychar",
			"item_id":   "not-a-number",
		})
		HandleRequestID(ctx.Session, i, ctx.Pipeline)

		calls := capture.all()
		require.Len(t, calls, 1, "exactly one reply, no processing placeholder")
		assert.Contains(t, embedTitles(t, calls[0].Body), "❌ "+TitleInvalidItemID)
		assert.Zero(t, ctx.EQDBCalls(), "invalid id must never reach the catalog")
	})

	t.Run("numeric id resolves to recipe", func(t *testing.T) {
		ctx := SetupTestContext(t)
		capture := &discordCapture{}
		capture.install(ctx)

		ctx.Mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3675", r.URL.Query().Get("id"))
			w.Write([]byte(`{"name": "Words of Crippling Force", "tradeskill": 58, "tradeskill_entries": []}`))
		})

		i := newTestInteraction("requestid", map[string]string{
			"character": "Jonlin",
			"item_id":   "3675",
		})
		HandleRequestID(ctx.Session, i, ctx.Pipeline)

		calls := capture.all()
		require.Len(t, calls, 2)
		assert.Contains(t, embedTitles(t, calls[0].Body), "ℹ️ "+TitleProcessing)
		assert.Contains(t, embedTitles(t, calls[1].Body), "🔨 Recipe: Words of Crippling Force")
	})

	t.Run("recipe not found", func(t *testing.T) {
		ctx := SetupTestContext(t)
		capture := &discordCapture{}
		capture.install(ctx)

		ctx.Mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "no recipe found"}`))
		})

		i := newTestInteraction("requestid", map[string]string{
			"character": "Jonlin",
			"item_id":   "42",
		})
		HandleRequestID(ctx.Session, i, ctx.Pipeline)

		calls := capture.all()
		require.Len(t, calls, 2)
		assert.Contains(t, embedTitles(t, calls[1].Body), "❌ "+TitleRecipeNotFound)
	})
}
