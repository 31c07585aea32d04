package routes

import (
	"codesaathi_server/controllers"
	"codesaathi_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up the candidate feed routes under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, app *services.AppService) {
	controller := controllers.NewSwipeController(app)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()
	swipeRouter.HandleFunc("/current", controller.GetCurrent).Methods("GET")
	swipeRouter.HandleFunc("/decide", controller.Decide).Methods("POST")
}
