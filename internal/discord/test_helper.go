package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/quarm-tools/craftbot/internal/eqdb"
	"github.com/quarm-tools/craftbot/internal/request"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake eqdb backend with a Discord session whose HTTP
// client is intercepted, so handlers can run end to end without the network.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	Pipeline     *request.Pipeline
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	eqdbCalls int64
}

// EQDBCalls reports how many requests reached the fake eqdb backend.
func (c *TestContext) EQDBCalls() int64 {
	return atomic.LoadInt64(&c.eqdbCalls)
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	ctx := &TestContext{Mux: http.NewServeMux()}

	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&ctx.eqdbCalls, 1)
		ctx.Mux.ServeHTTP(w, r)
	})
	ctx.Server = httptest.NewServer(counting)

	client := eqdb.NewClient(ctx.Server.URL, 5*time.Second, 2)
	ctx.Pipeline = request.NewPipeline(client)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}
	ctx.Session = session

	t.Cleanup(func() {
		ctx.Server.Close()
	})

	return ctx
}

// WriteJSON writes data as a JSON response body.
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// newTestInteraction builds an application-command interaction with string options.
func newTestInteraction(command string, opts map[string]string) *discordgo.InteractionCreate {
	var options []*discordgo.ApplicationCommandInteractionDataOption
	for name, value := range opts {
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			ID:   "test-interaction",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    command,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "tester"},
			},
		},
	}
}
