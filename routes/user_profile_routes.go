package routes

import (
	"codesaathi_server/controllers"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for user profile operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, auth *services.AuthService, profiles *services.UserProfileService) {
	controller := controllers.NewUserProfileController(auth, profiles)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.SaveProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetProfileByID).Methods("GET")
}
