package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/DamDam98/robocall-your-rep/internal/calls"
)

func startHub(t *testing.T, allowedOrigins ...string) (*Hub, *httptest.Server) {
	t.Helper()
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(allowedOrigins)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubDeliversCallOutcome(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Publish(calls.Outcome{
		DispatchID: "d-1",
		Provider:   "bland",
		Status:     calls.StatusPlaced,
		CallID:     "call-1",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event struct {
		Type string        `json:"type"`
		Data calls.Outcome `json:"data"`
	}
	if err := json.Unmarshal(message, &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.Type != EventCallOutcome {
		t.Errorf("type = %q, want %q", event.Type, EventCallOutcome)
	}
	if event.Data.DispatchID != "d-1" || event.Data.Status != calls.StatusPlaced {
		t.Errorf("unexpected data %+v", event.Data)
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHubRejectsDisallowedOrigin(t *testing.T) {
	hub, srv := startHub(t, "https://form.example")
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	header := http.Header{"Origin": []string{"https://evil.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %v, want 403", resp)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("client count = %d, want 0", hub.ClientCount())
	}

	header.Set("Origin", "https://form.example")
	conn, _, err = websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial allowed origin: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"https://evil.example", []string{"*"}, true},
		{"https://form.example", []string{"https://form.example"}, true},
		{"https://FORM.example", []string{"https://form.example"}, true},
		{"https://evil.example", []string{"https://form.example"}, false},
		{"https://evil.example", nil, false},
		{"", []string{"https://form.example"}, true},
	}
	for _, tt := range tests {
		if got := originAllowed(tt.origin, tt.allowed); got != tt.want {
			t.Errorf("originAllowed(%q, %v) = %v, want %v", tt.origin, tt.allowed, got, tt.want)
		}
	}
}

func TestPublishWithoutRunnerDoesNotBlock(t *testing.T) {
	hub := NewHub([]string{"*"})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(calls.Outcome{DispatchID: "d"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked")
	}
}
