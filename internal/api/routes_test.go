package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/DamDam98/robocall-your-rep/internal/calls"
	"github.com/DamDam98/robocall-your-rep/internal/config"
	"github.com/DamDam98/robocall-your-rep/internal/events"
)

func testConfig(directoryURL, blandURL string) *config.Config {
	return &config.Config{
		Port:                  "0",
		Environment:           "test",
		RepresentativesAPIURL: directoryURL,
		CallProvider:          config.ProviderBland,
		BlandAPIKey:           "test-key",
		BlandAPIURL:           blandURL,
		CORSAllowedOrigins:    []string{"*"},
	}
}

type testEnv struct {
	server *httptest.Server
	hub    *events.Hub
}

func newTestEnv(t *testing.T, allowedOrigins ...string) *testEnv {
	t.Helper()

	directory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"Adam Schiff","party":"Democrat","state":"CA"}]}`))
	}))
	t.Cleanup(directory.Close)

	bland := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","call_id":"call-42"}`))
	}))
	t.Cleanup(bland.Close)

	cfg := testConfig(directory.URL, bland.URL)
	if len(allowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = allowedOrigins
	}

	ctx, cancel := context.WithCancel(context.Background())
	hub := events.NewHub(cfg.CORSAllowedOrigins)
	go hub.Run(ctx)

	dispatcher := calls.NewDispatcher(NewProvider(cfg), calls.WithPublisher(hub), calls.WithLogger(zap.NewNop()))
	srv := httptest.NewServer(NewRouter(cfg, dispatcher, hub))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return &testEnv{server: srv, hub: hub}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/up")
	if err != nil {
		t.Fatalf("GET /up: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRouteExistence(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/representatives?zip=90210", "", http.StatusOK},
		{http.MethodGet, "/api/representatives?zip=1234", "", http.StatusBadRequest},
		{http.MethodPost, "/api/representatives?zip=90210", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/calls", `{"phoneNumber":"+12025550123","prompt":"Hello","gender":"male"}`, http.StatusOK},
		{http.MethodPost, "/api/calls", `{"prompt":"Hello"}`, http.StatusInternalServerError},
		{http.MethodGet, "/api/calls", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/prompts/unknown", `{}`, http.StatusNotFound},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, env.server.URL+tt.path, strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestCallOutcomeStreamsOverWebsocket(t *testing.T) {
	env := newTestEnv(t)

	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/api/calls/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial events: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for env.hub.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("websocket client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Post(env.server.URL+"/api/calls", "application/json",
		strings.NewReader(`{"phoneNumber":"+12025550123","prompt":"Hello Representative","gender":"female"}`))
	if err != nil {
		t.Fatalf("POST /api/calls: %v", err)
	}
	var ack struct {
		DispatchID string `json:"dispatchId"`
	}
	json.NewDecoder(resp.Body).Decode(&ack)
	resp.Body.Close()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read event: %v", err)
	}

	var event struct {
		Type string        `json:"type"`
		Data calls.Outcome `json:"data"`
	}
	if err := json.Unmarshal(message, &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.Data.DispatchID != ack.DispatchID {
		t.Errorf("event dispatch id = %q, want %q", event.Data.DispatchID, ack.DispatchID)
	}
	if event.Data.Status != calls.StatusPlaced || event.Data.CallID != "call-42" {
		t.Errorf("unexpected outcome %+v", event.Data)
	}
}

func TestCallEventsRejectsDisallowedOrigin(t *testing.T) {
	env := newTestEnv(t, "https://form.example")
	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/api/calls/events"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": []string{"https://evil.example"}})
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %v, want 403", resp)
	}
}

func TestNewProvider(t *testing.T) {
	cfg := testConfig("", "https://api.bland.ai/v1/calls")
	if name := NewProvider(cfg).Name(); name != "bland" {
		t.Errorf("provider = %q, want bland", name)
	}

	cfg.CallProvider = config.ProviderTwilio
	cfg.TwilioAccountSID = "AC123"
	cfg.TwilioAuthToken = "secret"
	cfg.TwilioPhoneNumber = "+15550001111"
	if name := NewProvider(cfg).Name(); name != "twilio" {
		t.Errorf("provider = %q, want twilio", name)
	}
}
