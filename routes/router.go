package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"encuestas-api/configs"
	"encuestas-api/controllers"
	"encuestas-api/middleware"
	"encuestas-api/store"

	"github.com/gorilla/mux"
)

// NewRouter assembles the full handler tree: the /api subrouter with
// its catch-all 404, and the static fallback for everything else.
func NewRouter(cfg configs.Config, respuestas store.Respuestas, usuarios store.Usuarios, db store.Pinger) http.Handler {
	root := mux.NewRouter()
	root.Use(middleware.Recovery)
	root.Use(middleware.Logging)
	root.Use(middleware.CORS(cfg.CORSOrigins()))

	api := root.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", controllers.Health(cfg, db)).Methods("GET")
	RespuestaRoutes(api, cfg, respuestas)
	AuthRoutes(api, cfg, usuarios)

	// Anything else under /api is an unknown route.
	api.PathPrefix("/").HandlerFunc(apiNotFound)

	root.PathPrefix("/").HandlerFunc(staticFallback(cfg)).Methods("GET")

	return root
}

func apiNotFound(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusNotFound)
	json.NewEncoder(rw).Encode(map[string]string{
		"message": "Ruta no encontrada",
		"path":    r.URL.Path,
	})
}

// staticFallback serves a pre-built frontend asset when one exists
// under the configured static directory, and otherwise answers with a
// JSON description of the API.
func staticFallback(cfg configs.Config) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			reqPath = "/index.html"
		}

		// Clean keeps the path rooted, so traversal sequences cannot
		// escape the static directory.
		file := filepath.Join(cfg.StaticDir, filepath.FromSlash(strings.TrimPrefix(reqPath, "/")))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			http.ServeFile(rw, r, file)
			return
		}

		rw.Header().Set("Content-Type", "application/json")
		json.NewEncoder(rw).Encode(map[string]interface{}{
			"message": "API de encuestas de seguridad",
			"endpoints": map[string]string{
				"GET /api/health":             "Estado del servicio",
				"POST /api/respuestas":        "Enviar una respuesta",
				"GET /api/respuestas":         "Listar respuestas",
				"GET /api/estadisticas":       "Totales de respuestas",
				"POST /api/login":             "Inicio de sesión de administrador",
				"POST /api/register":          "Registro de administrador",
				"DELETE /api/respuestas/{id}": "Eliminar una respuesta",
				"DELETE /api/respuestas":      "Eliminar todas las respuestas",
			},
		})
	}
}
