package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Usuario is an administrator account. Password holds a bcrypt hash,
// never the raw secret, and is excluded from every JSON response.
type Usuario struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Usuario       string             `json:"usuario" bson:"usuario"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	FechaRegistro time.Time          `json:"fechaRegistro" bson:"fechaRegistro"`
}

// RegisterRequest is the body of POST /api/register. CodigoAdmin is the
// shared secret that authorizes creating new administrator accounts.
type RegisterRequest struct {
	CodigoAdmin string `json:"codigoAdmin"`
	Usuario     string `json:"usuario"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}
