package routes

import (
	"encuestas-api/configs"
	"encuestas-api/controllers"
	"encuestas-api/store"

	"github.com/gorilla/mux"
)

func RespuestaRoutes(api *mux.Router, cfg configs.Config, respuestas store.Respuestas) {
	api.HandleFunc("/respuestas", controllers.SubmitRespuesta(cfg, respuestas)).Methods("POST")
	api.HandleFunc("/respuestas", controllers.GetRespuestas(cfg, respuestas)).Methods("GET")
	api.HandleFunc("/respuestas", controllers.DeleteRespuestas(cfg, respuestas)).Methods("DELETE")
	api.HandleFunc("/respuestas/{id}", controllers.DeleteRespuesta(cfg, respuestas)).Methods("DELETE")
	api.HandleFunc("/estadisticas", controllers.GetEstadisticas(cfg, respuestas)).Methods("GET")
}
