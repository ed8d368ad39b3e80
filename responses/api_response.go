package responses

import "time"

// CreatedResponse confirms a successful insert and carries the id the
// store assigned.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Errores carries per-field
// schema messages, Campo names a unique-index collision, and Detalle is
// only populated outside production mode.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errores []string `json:"errores,omitempty"`
	Campo   string   `json:"campo,omitempty"`
	Detalle string   `json:"detalle,omitempty"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
}

type StatsResponse struct {
	Total        int64     `json:"total"`
	Ultimos7Dias int64     `json:"ultimos7dias"`
	Timestamp    time.Time `json:"timestamp"`
}

// UserInfo is the administrator profile returned on login. It never
// includes the password field.
type UserInfo struct {
	Usuario       string    `json:"usuario"`
	Email         string    `json:"email"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

type DeleteAllResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
