package controllers

import (
	"net/http"

	"codesaathi_server/services"
)

// MatchController serves the accumulated match list.
type MatchController struct {
	App *services.AppService
}

// NewMatchController creates a new instance of MatchController
func NewMatchController(app *services.AppService) *MatchController {
	return &MatchController{App: app}
}

// GetMatches returns the session's matches in the order they were accepted.
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches := c.App.MatchList(sessionToken(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
