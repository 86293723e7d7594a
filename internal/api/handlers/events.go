package handlers

import (
	"net/http"

	"github.com/DamDam98/robocall-your-rep/internal/events"
)

func HandleCallEvents(hub *events.Hub) http.Handler {
	return http.HandlerFunc(hub.ServeWs)
}
