package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Broadcast([]byte("hello"))

	select {
	case msg := <-c.send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast not delivered")
	}

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHub_BroadcastDropsManySlowClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	// Unbuffered send channels with no reader: every client is slow, and
	// there are more of them than the unregister buffer holds.
	for i := 0; i < 80; i++ {
		hub.Register(&Client{hub: hub, send: make(chan []byte)})
	}
	waitFor(t, func() bool { return hub.ClientCount() == 80 })

	hub.Broadcast([]byte("corpus"))
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	// The loop must still service registrations and deliveries.
	live := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(live)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Broadcast([]byte("again"))
	select {
	case msg := <-live.send:
		if string(msg) != "again" {
			t.Fatalf("unexpected message %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("hub loop wedged after mass drop")
	}
}

func TestNotifyCorpusUpdated_Event(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	SetDefaultHub(hub)
	defer SetDefaultHub(nil)

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	NotifyCorpusUpdated("  Backend Engineer ", "paging_api")

	select {
	case msg := <-c.send:
		var evt CorpusUpdatedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if evt.Type != "corpus_updated" || evt.Query != "backend engineer" || evt.Source != "paging_api" {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event not delivered")
	}
}
