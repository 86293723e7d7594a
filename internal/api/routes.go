package api

import (
	"net/http"

	h "github.com/DamDam98/robocall-your-rep/internal/api/handlers"
	"github.com/DamDam98/robocall-your-rep/internal/calls"
	"github.com/DamDam98/robocall-your-rep/internal/config"
	"github.com/DamDam98/robocall-your-rep/internal/events"
	"github.com/DamDam98/robocall-your-rep/internal/middleware"
	"github.com/DamDam98/robocall-your-rep/internal/representatives"
)

func NewRouter(cfg *config.Config, dispatcher *calls.Dispatcher, hub *events.Hub) http.Handler {
	mux := http.NewServeMux()

	lookup := representatives.NewClient(cfg.RepresentativesAPIURL, nil)

	mux.HandleFunc("GET /up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Representatives
	mux.Handle("GET /api/representatives", h.HandleLookupRepresentatives(lookup))

	// Calls
	mux.Handle("POST /api/calls", h.HandleOutboundCall(dispatcher))
	mux.Handle("GET /api/calls/events", h.HandleCallEvents(hub))

	// Prompts
	mux.HandleFunc("POST /api/prompts/{name}", h.HandleGetPromptByNameParam)

	var handler http.Handler = mux
	handler = middleware.Recover(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, !cfg.IsProduction())(handler)

	return handler
}

// NewProvider builds the call provider selected by CALL_PROVIDER.
func NewProvider(cfg *config.Config) calls.Provider {
	if cfg.CallProvider == config.ProviderTwilio {
		return calls.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	}
	return calls.NewBlandProvider(cfg.BlandAPIKey, cfg.BlandAPIURL, nil)
}
