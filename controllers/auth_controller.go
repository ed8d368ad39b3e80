package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"encuestas-api/configs"
	"encuestas-api/models"
	"encuestas-api/responses"
	"encuestas-api/store"

	"golang.org/x/crypto/bcrypt"
)

// Login handles POST /api/login. Unknown user and wrong password answer
// with the exact same body, so the response does not reveal which one
// failed.
func Login(cfg configs.Config, usuarios store.Usuarios) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(rw, "Cuerpo de la petición inválido")
			return
		}

		if strings.TrimSpace(req.Usuario) == "" || req.Password == "" {
			badRequest(rw, "Usuario y password son obligatorios")
			return
		}

		usuario, err := usuarios.FindByUsuario(ctx, req.Usuario)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				invalidCredentials(rw)
				return
			}
			errorResponse(rw, cfg, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)) != nil {
			invalidCredentials(rw)
			return
		}

		configs.LogWithContext("auth", "login").WithField("usuario", usuario.Usuario).Info("Inicio de sesión")
		writeJSON(rw, http.StatusOK, responses.LoginResponse{
			Message: "Inicio de sesión exitoso",
			User: responses.UserInfo{
				Usuario:       usuario.Usuario,
				Email:         usuario.Email,
				FechaRegistro: usuario.FechaRegistro,
			},
		})
	}
}

func invalidCredentials(rw http.ResponseWriter) {
	writeJSON(rw, http.StatusUnauthorized, responses.ErrorResponse{
		Message: "Credenciales inválidas",
	})
}

// Register handles POST /api/register. Checks run in a fixed order: the
// shared secret first, then field presence, then the length rules. The
// password is stored as a bcrypt hash, never as received.
func Register(cfg configs.Config, usuarios store.Usuarios) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(rw, "Cuerpo de la petición inválido")
			return
		}

		if req.CodigoAdmin != cfg.AdminCode {
			writeJSON(rw, http.StatusForbidden, responses.ErrorResponse{
				Message: "Código de autorización inválido",
			})
			return
		}

		if strings.TrimSpace(req.Usuario) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			badRequest(rw, "Usuario, email y password son obligatorios")
			return
		}
		if len(req.Usuario) < 4 {
			badRequest(rw, "El usuario debe tener al menos 4 caracteres")
			return
		}
		if len(req.Password) < 8 {
			badRequest(rw, "El password debe tener al menos 8 caracteres")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		id, err := usuarios.Insert(ctx, models.Usuario{
			Usuario:  req.Usuario,
			Email:    req.Email,
			Password: string(hash),
		})
		if err != nil {
			errorResponse(rw, cfg, err)
			return
		}

		configs.LogWithContext("auth", "register").WithField("usuario", req.Usuario).Info("Administrador registrado")
		writeJSON(rw, http.StatusCreated, responses.CreatedResponse{
			Message: "Administrador registrado exitosamente",
			ID:      id,
		})
	}
}
