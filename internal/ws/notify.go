package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type CorpusUpdatedEvent struct {
	Type      string `json:"type"`
	Query     string `json:"query"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyCorpusUpdated tells listeners that a refresh landed new listings.
func NotifyCorpusUpdated(query string, source string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	query = strings.ToLower(strings.TrimSpace(query))

	evt := CorpusUpdatedEvent{
		Type:      "corpus_updated",
		Query:     query,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
