package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/DamDam98/robocall-your-rep/internal/calls"
)

type callDispatcher interface {
	Dispatch(ctx context.Context, req calls.CallRequest) (*calls.Handle, error)
}

type OutboundCallResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DispatchID string `json:"dispatchId"`
}

// HandleOutboundCall acknowledges as soon as the call is handed to the
// provider. A 200 means dispatch was attempted, not that the call connected.
func HandleOutboundCall(dispatcher callDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req calls.CallRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			zap.L().Error("Invalid call request body", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to dispatch call")
			return
		}

		handle, err := dispatcher.Dispatch(r.Context(), req)
		if err != nil {
			zap.L().Error("Failed to dispatch call", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to dispatch call")
			return
		}

		zap.L().Info("Call dispatched",
			zap.String("dispatch_id", handle.ID),
			zap.String("provider", handle.Provider),
		)

		writeJSON(w, http.StatusOK, OutboundCallResponse{
			Success:    true,
			Message:    "Call dispatched",
			DispatchID: handle.ID,
		})
	})
}
