package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"encuestas-api/configs"
	"encuestas-api/models"
	"encuestas-api/responses"
	"encuestas-api/store"

	"github.com/gorilla/mux"
)

const requestTimeout = 10 * time.Second

// SubmitRespuesta handles POST /api/respuestas. The handler only checks
// nombre and puesto itself; the remaining required fields are enforced
// by the record schema, which rejects the whole write with per-field
// messages.
func SubmitRespuesta(cfg configs.Config, respuestas store.Respuestas) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var respuesta models.Respuesta
		if err := json.NewDecoder(r.Body).Decode(&respuesta); err != nil {
			badRequest(rw, "Cuerpo de la petición inválido")
			return
		}

		if strings.TrimSpace(respuesta.Nombre) == "" || strings.TrimSpace(respuesta.Puesto) == "" {
			badRequest(rw, "Nombre y puesto son obligatorios")
			return
		}

		if err := respuesta.Validate(); err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		id, err := respuestas.Insert(ctx, respuesta)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		configs.LogWithContext("respuestas", "submit").WithField("id", id).Info("Respuesta guardada")
		writeJSON(rw, http.StatusCreated, responses.CreatedResponse{
			Message: "Respuesta guardada exitosamente",
			ID:      id,
		})
	}
}

// GetRespuestas handles GET /api/respuestas, newest first.
func GetRespuestas(cfg configs.Config, respuestas store.Respuestas) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		all, err := respuestas.FindAll(ctx)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		writeJSON(rw, http.StatusOK, all)
	}
}

// GetEstadisticas handles GET /api/estadisticas: total count plus the
// count of records created within the trailing 7x24h window.
func GetEstadisticas(cfg configs.Config, respuestas store.Respuestas) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		total, err := respuestas.Count(ctx)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		since := time.Now().Add(-7 * 24 * time.Hour)
		recientes, err := respuestas.CountSince(ctx, since)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		writeJSON(rw, http.StatusOK, responses.StatsResponse{
			Total:        total,
			Ultimos7Dias: recientes,
			Timestamp:    time.Now(),
		})
	}
}

// DeleteRespuesta handles DELETE /api/respuestas/{id}.
func DeleteRespuesta(cfg configs.Config, respuestas store.Respuestas) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		id := mux.Vars(r)["id"]

		if _, err := respuestas.FindByID(ctx, id); err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		deleted, err := respuestas.DeleteByID(ctx, id)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}
		if !deleted {
			errorResponse(rw, cfg, store.ErrNotFound)
			return
		}

		configs.LogWithContext("respuestas", "delete").WithField("id", id).Info("Respuesta eliminada")
		writeJSON(rw, http.StatusOK, responses.MessageResponse{Message: "Respuesta eliminada"})
	}
}

// DeleteRespuestas handles DELETE /api/respuestas, removing every
// record. The endpoint is intentionally unauthenticated; this tool runs
// behind an internal network boundary.
func DeleteRespuestas(cfg configs.Config, respuestas store.Respuestas) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		count, err := respuestas.DeleteAll(ctx)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		configs.LogWithContext("respuestas", "delete-all").WithField("count", count).Warn("Todas las respuestas eliminadas")
		writeJSON(rw, http.StatusOK, responses.DeleteAllResponse{
			Message: "Respuestas eliminadas",
			Count:   count,
		})
	}
}
