package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/DamDam98/robocall-your-rep/internal/profile"
)

type representativeLookup interface {
	Lookup(ctx context.Context, zip string) (json.RawMessage, error)
}

func HandleLookupRepresentatives(lookup representativeLookup) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zip := r.URL.Query().Get("zip")
		if !profile.ValidZip(zip) {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid ZIP code")
			return
		}

		data, err := lookup.Lookup(r.Context(), zip)
		if err != nil {
			zap.L().Error("Error fetching representatives", zap.String("zip", zip), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch representatives")
			return
		}

		// relay the directory's body as is
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})
}
