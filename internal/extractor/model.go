package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

var errModelNotConfigured = errors.New("extraction model not configured")

// ModelStrategy calls a remote named-entity extraction service. The HTTP
// client is built lazily on first use; a missing base URL or any call
// failure makes the chain fall through to the keyword strategy.
type ModelStrategy struct {
	baseURL string
	timeout time.Duration

	once   sync.Once
	client *http.Client
}

func NewModelStrategy(baseURL string, timeout time.Duration) *ModelStrategy {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ModelStrategy{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"), timeout: timeout}
}

func (s *ModelStrategy) Name() string { return "model" }

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Entities []string `json:"entities"`
}

func (s *ModelStrategy) Extract(ctx context.Context, text string) ([]string, error) {
	if s == nil || s.baseURL == "" {
		return nil, errModelNotConfigured
	}

	s.once.Do(func() {
		s.client = &http.Client{Timeout: s.timeout}
	})

	b, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/extract", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("extraction service status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Entities, nil
}
