package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"encuestas-api/configs"
	"encuestas-api/models"
	"encuestas-api/responses"
	"encuestas-api/store"
)

func writeJSON(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		configs.Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func badRequest(rw http.ResponseWriter, message string) {
	writeJSON(rw, http.StatusBadRequest, responses.ErrorResponse{Message: message})
}

// errorResponse is the single failure funnel: every controller hands its
// errors here and the mapper picks the status. Internal detail is only
// echoed outside production mode; the policy lives in Config and nothing
// else overrides it.
func errorResponse(rw http.ResponseWriter, cfg configs.Config, err error) {
	var verr *models.ValidationError
	var dup *store.DuplicateKeyError

	switch {
	case errors.As(err, &verr):
		writeJSON(rw, http.StatusBadRequest, responses.ErrorResponse{
			Message: "Datos inválidos",
			Errores: verr.Errores,
		})
	case errors.As(err, &dup):
		writeJSON(rw, http.StatusConflict, responses.ErrorResponse{
			Message: dup.Error(),
			Campo:   dup.Field,
		})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(rw, http.StatusNotFound, responses.ErrorResponse{
			Message: "Registro no encontrado",
		})
	default:
		configs.Logger.WithError(err).Error("Unhandled request error")
		body := responses.ErrorResponse{Message: "Error interno del servidor"}
		if !cfg.Production() {
			body.Detalle = err.Error()
		}
		writeJSON(rw, http.StatusInternalServerError, body)
	}
}
