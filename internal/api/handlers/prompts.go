package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/DamDam98/robocall-your-rep/internal/ai"
	"github.com/DamDam98/robocall-your-rep/internal/profile"
)

type CallScriptPromptParams struct {
	profile.UserProfile
	RepresentativeName string `json:"representativeName"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

func HandleGetPromptByNameParam(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("name") {
	case "call-script":
		var params CallScriptPromptParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(params.RepresentativeName) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Representative name is required")
			return
		}
		if err := params.UserProfile.Validate(); err != nil {
			zap.L().Info("Rejected call script profile", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, "Invalid profile")
			return
		}

		prompt, err := ai.GenerateCallScriptPrompt(ai.CallScriptParamsFrom(params.UserProfile, params.RepresentativeName))
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, PromptResponse{Prompt: prompt})
	default:
		writeErrorResponse(w, http.StatusNotFound, "Unknown prompt")
	}
}
