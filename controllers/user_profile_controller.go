package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"codesaathi_server/models"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	Auth     *services.AuthService
	Profiles *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(auth *services.AuthService, profiles *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Auth: auth, Profiles: profiles}
}

// SaveProfile upserts the caller's profile. The profile is always stored
// under the session's user ID, whatever the payload claims.
func (c *UserProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	session := c.Auth.CurrentSession(sessionToken(r))
	if session == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Printf("Failed to decode request body: %v\n", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	profile.UserID = session.UserID

	if err := c.Profiles.SaveProfile(r.Context(), profile); err != nil {
		log.Printf("Failed to save profile: %v\n", err)
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile saved successfully",
		"profile": profile,
	})
}

// GetProfileByID handles fetching a user profile by ID
func (c *UserProfileController) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.Profiles.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
