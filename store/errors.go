package store

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no stored record.
var ErrNotFound = errors.New("registro no encontrado")

// DuplicateKeyError reports a unique-index collision, naming the field
// the store rejected.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "valor duplicado"
	}
	return "el valor de " + e.Field + " ya está registrado"
}

// Unique index names follow the driver default <field>_1.
var dupIndexPattern = regexp.MustCompile(`index: ([0-9A-Za-z]+)_1`)

// mapWriteError converts driver write failures into the store's error
// taxonomy. Duplicate-key violations come back from the server as
// E11000 write errors carrying the index name.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: duplicateField(err)}
	}
	return err
}

func duplicateField(err error) string {
	var wex mongo.WriteException
	if errors.As(err, &wex) {
		for _, we := range wex.WriteErrors {
			if m := dupIndexPattern.FindStringSubmatch(we.Message); m != nil {
				return m[1]
			}
		}
	}
	var bwex mongo.BulkWriteException
	if errors.As(err, &bwex) {
		for _, we := range bwex.WriteErrors {
			if m := dupIndexPattern.FindStringSubmatch(we.Message); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
