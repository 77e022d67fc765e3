package langmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ClaudeProvider implements Provider against the Anthropic Messages API.
// All capabilities are available when an API key is configured.
type ClaudeProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	// Stats records call latencies for the stats endpoint. May be nil.
	Stats *CallStats
}

func NewClaudeProvider(apiKey, model string) *ClaudeProvider {
	return &ClaudeProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.anthropic.com/v1/messages",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		Stats: NewCallStats(time.Hour),
	}
}

// Model returns the configured model identifier.
func (p *ClaudeProvider) Model() string { return p.model }

// Available reports true for every capability once an API key is set.
func (p *ClaudeProvider) Available(Capability) bool { return p.apiKey != "" }

func (p *ClaudeProvider) Keywords(ctx context.Context, text string, topN int) ([]string, error) {
	prompt := fmt.Sprintf(
		"Extract the %d most salient keywords from the text below. "+
			"Respond with only a JSON array of lowercase strings.\n\n%s",
		topN, text)
	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return nil, fmt.Errorf("parse keywords json: %w (raw: %s)", err, truncate(raw, 200))
	}
	if len(words) > topN {
		words = words[:topN]
	}
	return words, nil
}

func (p *ClaudeProvider) Entities(ctx context.Context, text string) (map[string][]string, error) {
	prompt := "Extract named entities from the text below. Respond with only a JSON object " +
		`mapping entity types ("organization", "person", "place") to arrays of strings.` +
		"\n\n" + text
	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var ents map[string][]string
	if err := json.Unmarshal([]byte(raw), &ents); err != nil {
		return nil, fmt.Errorf("parse entities json: %w (raw: %s)", err, truncate(raw, 200))
	}
	return ents, nil
}

func (p *ClaudeProvider) Verbs(ctx context.Context, text string) ([]string, error) {
	prompt := "List the action verbs (base form, lowercase) in the text below. " +
		"Respond with only a JSON array of strings.\n\n" + text
	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var verbs []string
	if err := json.Unmarshal([]byte(raw), &verbs); err != nil {
		return nil, fmt.Errorf("parse verbs json: %w (raw: %s)", err, truncate(raw, 200))
	}
	return verbs, nil
}

func (p *ClaudeProvider) Similarity(ctx context.Context, a, b string) (float64, error) {
	prompt := fmt.Sprintf(
		"Rate the semantic similarity of the two texts below from 0.0 to 1.0. "+
			"Respond with only the number.\n\nText A:\n%s\n\nText B:\n%s",
		truncate(a, 4000), truncate(b, 4000))
	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseScore(raw)
}

func (p *ClaudeProvider) ClassifyHeading(ctx context.Context, text string) (float64, error) {
	prompt := "Rate from 0.0 to 1.0 how likely the following line is a section heading " +
		"of a document (not body text, not a list item). Respond with only the number.\n\n" + text
	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseScore(raw)
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// complete performs one Messages API round trip, retrying transient failures.
func (p *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		start := time.Now()
		text, err := p.completeOnce(ctx, prompt)
		if p.Stats != nil {
			p.Stats.Record(time.Since(start).Milliseconds())
		}
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return "", err
		}
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

func (p *ClaudeProvider) completeOnce(ctx context.Context, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     p.model,
		MaxTokens: 1024,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anthropic api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &RetryableError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic api status %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("anthropic error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return stripCodeBlock(apiResp.Content[0].Text), nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func parseScore(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", truncate(raw, 40), err)
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases idle connections.
func (p *ClaudeProvider) Close() {
	p.httpClient.CloseIdleConnections()
}
