package routes

import (
	"codesaathi_server/controllers"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for authentication under /api/auth
func RegisterAuthRoutes(r *mux.Router, auth *services.AuthService) {
	controller := controllers.NewAuthController(auth)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.SignUp).Methods("POST")
	authRouter.HandleFunc("/signin", controller.SignIn).Methods("POST")
	authRouter.HandleFunc("/signout", controller.SignOut).Methods("POST")
	authRouter.HandleFunc("/session", controller.GetSession).Methods("GET")
}
