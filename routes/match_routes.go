package routes

import (
	"codesaathi_server/controllers"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the match list routes under /api/matches
func RegisterMatchRoutes(r *mux.Router, app *services.AppService) {
	controller := controllers.NewMatchController(app)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
}
