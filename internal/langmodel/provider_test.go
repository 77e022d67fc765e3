package langmodel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNoneProviderReportsUnavailable(t *testing.T) {
	p := None()
	caps := []Capability{CapKeywords, CapEntities, CapVerbs, CapSimilarity, CapClassify}
	for _, c := range caps {
		if p.Available(c) {
			t.Errorf("expected %s unavailable on none provider", c)
		}
	}

	ctx := context.Background()
	if _, err := p.Keywords(ctx, "text", 5); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Keywords: expected ErrUnavailable, got %v", err)
	}
	if _, err := p.Entities(ctx, "text"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Entities: expected ErrUnavailable, got %v", err)
	}
	if _, err := p.Verbs(ctx, "text"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Verbs: expected ErrUnavailable, got %v", err)
	}
	if _, err := p.Similarity(ctx, "a", "b"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Similarity: expected ErrUnavailable, got %v", err)
	}
	if _, err := p.ClassifyHeading(ctx, "Heading"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ClassifyHeading: expected ErrUnavailable, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	retryErr := &RetryableError{StatusCode: 529, Message: "overloaded"}
	if !IsRetryable(retryErr) {
		t.Error("expected RetryableError to be retryable")
	}
	if !IsRetryable(fmt.Errorf("call failed: %w", retryErr)) {
		t.Error("expected wrapped RetryableError to be retryable")
	}
	if IsRetryable(errors.New("bad request")) {
		t.Error("expected plain error to not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("expected nil to not be retryable")
	}
}

func TestBackoffGrowsAndStaysBounded(t *testing.T) {
	for attempt := 0; attempt < 8; attempt++ {
		base := time.Duration(1<<uint(attempt)) * time.Second
		if base > 30*time.Second {
			base = 30 * time.Second
		}
		d := Backoff(attempt)
		if d < base {
			t.Errorf("attempt %d: backoff %v below base %v", attempt, d, base)
		}
		if d >= base+base/2 {
			t.Errorf("attempt %d: backoff %v exceeds base plus jitter bound %v", attempt, d, base+base/2)
		}
	}
}

func TestStripCodeBlock(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"```json\n[\"a\",\"b\"]\n```", `["a","b"]`},
		{"```\n0.75\n```", "0.75"},
		{"  ```json\n{\"k\":1}\n```  ", `{"k":1}`},
		{"before ``` not a fence", "before ``` not a fence"},
	}
	for _, tt := range tests {
		if got := stripCodeBlock(tt.in); got != tt.want {
			t.Errorf("stripCodeBlock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseScore(t *testing.T) {
	if v, err := parseScore("0.82"); err != nil || v != 0.82 {
		t.Errorf("expected 0.82, got %v (err %v)", v, err)
	}
	if v, err := parseScore("  0.5\n"); err != nil || v != 0.5 {
		t.Errorf("expected trimmed parse 0.5, got %v (err %v)", v, err)
	}
	if v, err := parseScore("1.7"); err != nil || v != 1 {
		t.Errorf("expected clamp to 1, got %v (err %v)", v, err)
	}
	if v, err := parseScore("-0.3"); err != nil || v != 0 {
		t.Errorf("expected clamp to 0, got %v (err %v)", v, err)
	}
	if _, err := parseScore("high"); err == nil {
		t.Error("expected error for non-numeric score")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected untouched string, got %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("expected truncated string with ellipsis, got %q", got)
	}
}
