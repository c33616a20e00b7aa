// Package ai calls the external generative text API that produces AI post
// drafts. The API is treated as an opaque collaborator behind a plain HTTP
// client; only the draft or a rejection crosses into the domain.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultRequestTimeout = 30 * time.Second

// generator implements service.TextGenerator against a Gemini-style
// generateContent endpoint.
type generator struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	logger   *slog.Logger
}

// NewGenerator is the constructor for the generative text client.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (service.TextGenerator, error) {
	if cfg.AI == nil || cfg.AI.Endpoint == "" {
		return nil, errors.New("ai endpoint must be configured")
	}

	return &generator{
		endpoint: strings.TrimSuffix(cfg.AI.Endpoint, "/"),
		apiKey:   cfg.AI.APIKey,
		model:    cfg.AI.Model,
		client:   &http.Client{Timeout: defaultRequestTimeout},
		logger:   logger,
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GeneratePost asks the collaborator for a short post draft. The first line of
// the returned text becomes the title, the remainder the content.
func (g *generator) GeneratePost(ctx context.Context, prompt string) (*service.GeneratedPost, error) {
	instruction := "Write a short social feed post about food. First line is the title, the rest is the body. Topic: " + prompt

	body, err := json.Marshal(&generateRequest{
		Contents: []content{{Parts: []part{{Text: instruction}}}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal generation request")
	}

	url := g.endpoint + "/v1beta/models/" + g.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build generation request")
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("x-goog-api-key", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "generation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("Generative API rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)))

		return nil, errors.Errorf("generative API returned status %d", resp.StatusCode)
	}

	decoded := &generateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode generation response")
	}

	text := firstCandidateText(decoded)
	if text == "" {
		return nil, errors.New("generative API returned no candidates")
	}

	return splitDraft(text), nil
}

func firstCandidateText(resp *generateResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return strings.TrimSpace(p.Text)
			}
		}
	}

	return ""
}

func splitDraft(text string) *service.GeneratedPost {
	title, body, found := strings.Cut(text, "\n")
	if !found {
		return &service.GeneratedPost{Title: strings.TrimSpace(text)}
	}

	return &service.GeneratedPost{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(body),
	}
}
