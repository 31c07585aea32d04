package routes

import (
	"codesaathi_server/controllers"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// RegisterAppRoutes sets up the screen state machine routes under /api/app
func RegisterAppRoutes(r *mux.Router, app *services.AppService) {
	controller := controllers.NewAppController(app)

	appRouter := r.PathPrefix("/api/app").Subrouter()
	appRouter.HandleFunc("/state", controller.GetState).Methods("GET")
	appRouter.HandleFunc("/event", controller.HandleEvent).Methods("POST")
}
