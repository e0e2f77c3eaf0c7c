// Package gemini calls the Gemini generateContent endpoint to suggest
// improvements to a client briefing. It is deliberately failure-proof
// toward its callers: configuration gaps and service errors come back as
// human-readable strings, never as errors.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Messages returned in place of suggestions when the collaborator
	// cannot deliver.
	msgNoAPIKey     = "AI suggestions are not configured: set GEMINI_API_KEY to enable them."
	msgUnavailable  = "Could not reach the AI service. Check your connection and API key, then try again."
	msgNoSuggestion = "The AI service returned no suggestions for this briefing."
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	cfg Config
	c   *http.Client
	log zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	const timeout = 30 * time.Second

	return &Client{
		cfg: cfg,
		c:   &http.Client{Timeout: timeout},
		log: log,
	}
}

// Configured reports whether an API key is present; the readiness probe
// surfaces this as a degraded (but healthy) dependency.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// BriefingSuggestions asks the model for three strategic improvements to
// the current briefing. Whatever goes wrong, the caller gets a message
// string with ok=false and the console stays usable.
func (c *Client) BriefingSuggestions(ctx context.Context, clientName, currentBriefing string) (string, bool) {
	if !c.Configured() {
		return msgNoAPIKey, false
	}

	prompt := fmt.Sprintf(
		"You are a senior digital marketing strategist.\n"+
			"We are writing a briefing for the client: %s.\n"+
			"The current briefing is: %q.\n\n"+
			"Suggest 3 strategic improvements or expansions to this briefing, focused on results. "+
			"Keep the tone professional and direct. Use Markdown formatting.",
		clientName, currentBriefing,
	)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("gemini: encode request")
		return msgUnavailable, false
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Msg("gemini: build request")
		return msgUnavailable, false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.c.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("gemini: request failed")
		return msgUnavailable, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn().Int("status", resp.StatusCode).Bytes("body", raw).Msg("gemini: non-200 response")
		return msgUnavailable, false
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Warn().Err(err).Msg("gemini: decode response")
		return msgUnavailable, false
	}

	text := extractText(out)
	if text == "" {
		return msgNoSuggestion, false
	}
	return text, true
}

func extractText(resp generateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break // only the first candidate is used
	}
	return strings.TrimSpace(b.String())
}
