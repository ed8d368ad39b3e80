package controllers

import (
	"context"
	"net/http"
	"time"

	"encuestas-api/configs"
	"encuestas-api/responses"
	"encuestas-api/store"
)

// Health reports service status and store connectivity. It answers 200
// even when the store is down; the body carries the database state.
func Health(cfg configs.Config, db store.Pinger) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		database := "conectada"
		if err := db.Ping(ctx); err != nil {
			database = "desconectada"
		}

		writeJSON(rw, http.StatusOK, responses.HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now(),
			Environment: cfg.AppEnv,
			Database:    database,
		})
	}
}
