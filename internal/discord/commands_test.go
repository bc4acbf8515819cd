package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/request"
)

// discordCapture records every Discord API call a handler makes.
type discordCapture struct {
	mu    sync.Mutex
	calls []capturedCall
}

type capturedCall struct {
	Method string
	Path   string
	Body   string
}

func (c *discordCapture) install(ctx *TestContext) {
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		var body string
		if req.Body != nil {
			raw, _ := io.ReadAll(req.Body)
			body = string(raw)
		}
		c.mu.Lock()
		c.calls = append(c.calls, capturedCall{Method: req.Method, Path: req.URL.Path, Body: body})
		c.mu.Unlock()

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"id": "msg-1"}`)),
			Header:     make(http.Header),
		}, nil
	}
}

func (c *discordCapture) all() []capturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]capturedCall(nil), c.calls...)
}

// embedTitles extracts every embed title present in a captured call body.
func embedTitles(t *testing.T, body string) []string {
	t.Helper()

	var payload struct {
		Data *struct {
			Embeds []struct {
				Title string `json:"title"`
			} `json:"embeds"`
		} `json:"data"`
		Embeds []struct {
			Title string `json:"title"`
		} `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	var titles []string
	if payload.Data != nil {
		for _, e := range payload.Data.Embeds {
			titles = append(titles, e.Title)
		}
	}
	for _, e := range payload.Embeds {
		titles = append(titles, e.Title)
	}
	return titles
}

func TestRegistryHandle(t *testing.T) {
	ctx := SetupTestContext(t)

	registry := NewCommandRegistry()
	var handled int32
	registry.Register(CraftHelpCommand, func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *request.Pipeline) {
		atomic.AddInt32(&handled, 1)
	})

	t.Run("dispatches known command", func(t *testing.T) {
		registry.Handle(ctx.Session, newTestInteraction("crafthelp", nil), ctx.Pipeline)
		assert.Equal(t, int32(1), atomic.LoadInt32(&handled))
	})

	t.Run("ignores unknown command", func(t *testing.T) {
		registry.Handle(ctx.Session, newTestInteraction("nosuch", nil), ctx.Pipeline)
		assert.Equal(t, int32(1), atomic.LoadInt32(&handled))
	})

	t.Run("ignores non-command interaction", func(t *testing.T) {
		i := &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{Type: discordgo.InteractionMessageComponent},
		}
		registry.Handle(ctx.Session, i, ctx.Pipeline)
		assert.Equal(t, int32(1), atomic.LoadInt32(&handled))
	})
}

func TestRegistryHandlePanicRecovery(t *testing.T) {
	ctx := SetupTestContext(t)
	capture := &discordCapture{}
	capture.install(ctx)

	registry := NewCommandRegistry()
	registry.Register(CraftHelpCommand, func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *request.Pipeline) {
		panic("handler fault")
	})

	assert.NotPanics(t, func() {
		registry.Handle(ctx.Session, newTestInteraction("crafthelp", nil), ctx.Pipeline)
	})

	calls := capture.all()
	require.Len(t, calls, 1)
	assert.Contains(t, embedTitles(t, calls[0].Body), "❌ "+TitleProcessingError)
}

func TestRecordCommand(t *testing.T) {
	before := atomic.LoadInt64(&commandCounter)
	RecordCommand()
	RecordCommand()
	assert.Equal(t, before+2, atomic.LoadInt64(&commandCounter))
}

func TestCommandsEqual(t *testing.T) {
	base := []*discordgo.ApplicationCommand{RequestCommand, RequestIDCommand}

	t.Run("identical sets", func(t *testing.T) {
		assert.True(t, commandsEqual(base, []*discordgo.ApplicationCommand{RequestIDCommand, RequestCommand}))
	})

	t.Run("different length", func(t *testing.T) {
		assert.False(t, commandsEqual(base, []*discordgo.ApplicationCommand{RequestCommand}))
	})

	t.Run("changed description", func(t *testing.T) {
		changed := *RequestCommand
		changed.Description = "something else"
		assert.False(t, commandsEqual(base, []*discordgo.ApplicationCommand{&changed, RequestIDCommand}))
	})

	t.Run("changed option", func(t *testing.T) {
		opt := *RequestCommand.Options[0]
		opt.Required = false
		changed := *RequestCommand
		changed.Options = []*discordgo.ApplicationCommandOption{&opt}
		assert.False(t, commandsEqual(base, []*discordgo.ApplicationCommand{&changed, RequestIDCommand}))
	})
}
