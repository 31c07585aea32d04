package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"codesaathi_server/services"
)

// AppController exposes the screen state machine over HTTP. The client
// reads the active screen and posts navigation events; all cross-screen
// state changes flow through Dispatch.
type AppController struct {
	App *services.AppService
}

// NewAppController creates a new instance of AppController
func NewAppController(app *services.AppService) *AppController {
	return &AppController{App: app}
}

// GetState returns the active screen for the caller's session.
func (c *AppController) GetState(w http.ResponseWriter, r *http.Request) {
	screen := c.App.Screen(sessionToken(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{"screen": screen})
}

// HandleEvent dispatches one navigation event.
func (c *AppController) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Event   string `json:"event"`
		MatchID string `json:"matchId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	event, err := services.ParseEvent(request.Event, request.MatchID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	screen, err := c.App.Dispatch(r.Context(), sessionToken(r), event)
	if err != nil {
		log.Printf("Event %q rejected: %v", request.Event, err)
		writeJSON(w, serviceErrorStatus(err), map[string]interface{}{
			"screen": screen,
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"screen": screen})
}
