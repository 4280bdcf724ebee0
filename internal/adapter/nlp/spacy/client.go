package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const maxResponseBytes = 32 << 20

// Client talks to an HTTP service wrapping spaCy pipelines.
// One Client serves every language; the model is chosen per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "spacy"),
	}
}

// Tokenizer returns an analysis.Tokenizer bound to the given model,
// e.g. "fr_core_news_sm".
func (c *Client) Tokenizer(model string) analysis.Tokenizer {
	return analysis.TokenizerFunc(func(ctx context.Context, text string) ([]analysis.Token, error) {
		return c.Parse(ctx, text, model)
	})
}

// Parse runs the model over text and returns its tokens in document order.
// There is no retry: a failed call means the text cannot be analysed now.
func (c *Client) Parse(ctx context.Context, text, model string) ([]analysis.Token, error) {
	payload, err := json.Marshal(parseRequest{Text: text, Model: model})
	if err != nil {
		return nil, fmt.Errorf("spacy: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("spacy: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "spacy request", slog.String("model", model), slog.Int("chars", len(text)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "spacy request failed", slog.String("model", model), slog.String("error", err.Error()))
		return nil, fmt.Errorf("spacy: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("spacy: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
			return nil, fmt.Errorf("spacy: status %d: %s", resp.StatusCode, apiErr.Detail)
		}
		return nil, fmt.Errorf("spacy: unexpected status %d", resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("spacy: decode json: %w", err)
	}

	tokens := make([]analysis.Token, 0, len(parsed.Tokens))
	for _, t := range parsed.Tokens {
		tokens = append(tokens, analysis.Token{
			Surface: t.Text,
			Lemma:   t.Lemma,
			POS:     domain.PartOfSpeech(t.POS),
			IsAlpha: t.IsAlpha,
		})
	}

	c.log.DebugContext(ctx, "spacy response", slog.String("model", model), slog.Int("tokens", len(tokens)))

	return tokens, nil
}

// Ping checks that the service answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("spacy: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spacy: ping: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spacy: ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}
