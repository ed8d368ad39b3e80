package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// Respuesta is one submitted security-survey questionnaire. Clients send
// every field except the identifier and the timestamps, which are
// assigned at persistence time and never touched again.
type Respuesta struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	Nombre   string `json:"nombre" bson:"nombre" validate:"required"`
	Puesto   string `json:"puesto" bson:"puesto" validate:"required"`
	Telefono string `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Fecha    string `json:"fecha,omitempty" bson:"fecha,omitempty"`
	Hora     string `json:"hora,omitempty" bson:"hora,omitempty"`

	SeguridadGeneral      string `json:"seguridadGeneral" bson:"seguridadGeneral" validate:"required"`
	PresenciaGuardias     string `json:"presenciaGuardias" bson:"presenciaGuardias" validate:"required"`
	Iluminacion           string `json:"iluminacion" bson:"iluminacion" validate:"required"`
	CamarasFuncionan      string `json:"camarasFuncionan" bson:"camarasFuncionan" validate:"required"`
	TiempoRespuesta       string `json:"tiempoRespuesta" bson:"tiempoRespuesta" validate:"required"`
	CapacitacionSeguridad string `json:"capacitacionSeguridad" bson:"capacitacionSeguridad" validate:"required"`

	ZonasOscuras         []string `json:"zonasOscuras,omitempty" bson:"zonasOscuras,omitempty"`
	ProblemasEspecificos []string `json:"problemasEspecificos,omitempty" bson:"problemasEspecificos,omitempty"`

	UbicacionCamaras       string `json:"ubicacionCamaras,omitempty" bson:"ubicacionCamaras,omitempty"`
	IncidentesReportados   string `json:"incidentesReportados,omitempty" bson:"incidentesReportados,omitempty"`
	SugerenciasMejora      string `json:"sugerenciasMejora,omitempty" bson:"sugerenciasMejora,omitempty"`
	ComentariosAdicionales string `json:"comentariosAdicionales,omitempty" bson:"comentariosAdicionales,omitempty"`

	CalificacionGeneral       string `json:"calificacionGeneral" bson:"calificacionGeneral" validate:"required"`
	ConfianzaAdministracion   string `json:"confianzaAdministracion" bson:"confianzaAdministracion" validate:"required"`
	ParticipacionComerciantes string `json:"participacionComerciantes" bson:"participacionComerciantes" validate:"required"`

	FechaCreacion      time.Time `json:"fechaCreacion,omitempty" bson:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitempty" bson:"fechaActualizacion,omitempty"`
}

// ValidationError collects the per-field messages produced when a record
// fails schema validation before it is written.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	if len(e.Errores) == 0 {
		return "datos inválidos"
	}
	return e.Errores[0]
}

// jsonFieldNames maps struct field names back to the wire names used in
// requests, so validation messages point at the field the client sent.
var jsonFieldNames = map[string]string{
	"Nombre":                    "nombre",
	"Puesto":                    "puesto",
	"SeguridadGeneral":          "seguridadGeneral",
	"PresenciaGuardias":         "presenciaGuardias",
	"Iluminacion":               "iluminacion",
	"CamarasFuncionan":          "camarasFuncionan",
	"TiempoRespuesta":           "tiempoRespuesta",
	"CapacitacionSeguridad":     "capacitacionSeguridad",
	"CalificacionGeneral":       "calificacionGeneral",
	"ConfianzaAdministracion":   "confianzaAdministracion",
	"ParticipacionComerciantes": "participacionComerciantes",
}

// Validate checks the record against its schema tags and returns a
// *ValidationError naming each missing field.
func (r Respuesta) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := jsonFieldNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		msgs = append(msgs, "El campo "+name+" es obligatorio")
	}
	return &ValidationError{Errores: msgs}
}
