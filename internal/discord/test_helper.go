package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// CapturedRequest is one intercepted Discord API call
type CapturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// capturedEdit is the subset of a webhook edit the tests inspect
type capturedEdit struct {
	Content *string                   `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
	Rows    []struct {
		Buttons []struct {
			Label    string `json:"label"`
			CustomID string `json:"custom_id"`
		} `json:"components"`
	} `json:"components"`
}

// customIDs flattens the buttons of an edit
func (e capturedEdit) customIDs() []string {
	var ids []string
	for _, row := range e.Rows {
		for _, b := range row.Buttons {
			ids = append(ids, b.CustomID)
		}
	}
	return ids
}

// capturedCallback is the subset of an interaction callback the tests inspect
type capturedCallback struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data *struct {
		Content string `json:"content"`
		Flags   int    `json:"flags"`
	} `json:"data"`
}

// TestContext holds a Discord session whose HTTP calls are intercepted
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu       sync.Mutex
	requests []CapturedRequest
	// Respond overrides the reply for a request; nil means 200 with "{}"
	Respond func(req *http.Request) (int, string)
}

// SetupTestContext creates a session that records every Discord API call
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	tc := &TestContext{Session: session}
	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}

			tc.mu.Lock()
			tc.requests = append(tc.requests, CapturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
			respond := tc.Respond
			tc.mu.Unlock()

			status, payload := http.StatusOK, "{}"
			if respond != nil {
				status, payload = respond(req)
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(payload)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Request:    req,
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	return tc
}

// Requests returns a copy of the captured calls
func (tc *TestContext) Requests() []CapturedRequest {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]CapturedRequest(nil), tc.requests...)
}

// Reset forgets captured calls
func (tc *TestContext) Reset() {
	tc.mu.Lock()
	tc.requests = nil
	tc.mu.Unlock()
}

// Edits decodes every PATCH of an original interaction response, in order
func (tc *TestContext) Edits(t *testing.T) []capturedEdit {
	t.Helper()
	var edits []capturedEdit
	for _, r := range tc.Requests() {
		if r.Method != http.MethodPatch || !strings.HasSuffix(r.Path, "/messages/@original") {
			continue
		}
		var e capturedEdit
		if err := json.Unmarshal(r.Body, &e); err != nil {
			t.Fatalf("decode edit: %v", err)
		}
		edits = append(edits, e)
	}
	return edits
}

// LastEdit returns the most recent response edit
func (tc *TestContext) LastEdit(t *testing.T) capturedEdit {
	t.Helper()
	edits := tc.Edits(t)
	if len(edits) == 0 {
		t.Fatal("no interaction response edits captured")
	}
	return edits[len(edits)-1]
}

// Callbacks decodes every interaction callback, in order
func (tc *TestContext) Callbacks(t *testing.T) []capturedCallback {
	t.Helper()
	var cbs []capturedCallback
	for _, r := range tc.Requests() {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.Path, "/callback") {
			continue
		}
		var cb capturedCallback
		if err := json.Unmarshal(r.Body, &cb); err != nil {
			t.Fatalf("decode callback: %v", err)
		}
		cbs = append(cbs, cb)
	}
	return cbs
}

// newCommandInteraction creates a slash command interaction from userID
func newCommandInteraction(commandName, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-" + commandName,
			AppID: "test-app",
			Token: "token-" + commandName,
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: commandName,
			},
			User: &discordgo.User{
				ID:       userID,
				Username: "TestUser",
			},
		},
	}
}

// newComponentInteraction creates a button press from userID
func newComponentInteraction(id, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-" + id,
			AppID: "test-app",
			Token: "token-" + id,
			Type:  discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      id,
				ComponentType: discordgo.ButtonComponent,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "TestUser"},
			},
		},
	}
}
