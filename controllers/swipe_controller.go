package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"codesaathi_server/models"
	"codesaathi_server/services"
)

// SwipeController serves the candidate feed.
type SwipeController struct {
	App *services.AppService
}

// NewSwipeController creates a new instance of SwipeController
func NewSwipeController(app *services.AppService) *SwipeController {
	return &SwipeController{App: app}
}

// GetCurrent returns the candidate under the cursor. An exhausted feed
// answers with exhausted=true and no profile; the client's only path from
// there is the matches screen.
func (c *SwipeController) GetCurrent(w http.ResponseWriter, r *http.Request) {
	candidate, err := c.App.CurrentCandidate(sessionToken(r))
	if err != nil {
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	if candidate == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"exhausted": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": candidate})
}

// Decide records a swipe on the current candidate.
func (c *SwipeController) Decide(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Direction != models.SwipeAccept && request.Direction != models.SwipeReject {
		http.Error(w, "Direction must be 'accept' or 'reject'", http.StatusBadRequest)
		return
	}

	matched, err := c.App.DecideSwipe(sessionToken(r), request.Direction)
	if err != nil {
		log.Println("Swipe rejected:", err)
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	response := map[string]interface{}{"matched": matched != nil}
	if matched != nil {
		response["profile"] = matched
	}
	writeJSON(w, http.StatusOK, response)
}
