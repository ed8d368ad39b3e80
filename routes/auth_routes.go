package routes

import (
	"encuestas-api/configs"
	"encuestas-api/controllers"
	"encuestas-api/store"

	"github.com/gorilla/mux"
)

func AuthRoutes(api *mux.Router, cfg configs.Config, usuarios store.Usuarios) {
	api.HandleFunc("/login", controllers.Login(cfg, usuarios)).Methods("POST")
	api.HandleFunc("/register", controllers.Register(cfg, usuarios)).Methods("POST")
}
