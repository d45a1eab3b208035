package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrConfiguration = errors.New("configuración incompleta")
	ErrDependency    = errors.New("falla en dependencia externa")
	ErrForbidden     = errors.New("acceso denegado")
)

// ValidationError indica campos obligatorios ausentes en la petición.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Message string
	Fields  []string
}

// NewValidationError construye el error con el mensaje que verá el cliente y los campos faltantes.
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (faltantes: " + strings.Join(e.Fields, ", ") + ")"
}

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
