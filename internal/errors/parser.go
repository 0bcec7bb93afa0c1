package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the parsed form of a low-level persistence error.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a database error into a user-facing code/message.
// Uniqueness and foreign keys are checked proactively in the services,
// so this parser is only a secondary defense against races that slip
// past those lookups.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Error interno del servidor"}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// Postgres 23505
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Postgres 23503
	if strings.Contains(errStr, "foreign key constraint") {
		if strings.Contains(errStr, "still referenced") {
			return ErrorInfo{Code: ResourceConflict, Message: "Existen registros asociados, no se puede eliminar"}
		}
		return ErrorInfo{Code: ResourceNotFound, Message: "El registro referenciado no existe"}
	}

	return ErrorInfo{Code: InternalDatabaseError, Message: "Error interno del servidor"}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	switch {
	case strings.Contains(errStr, "rut_persona"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "rut_persona ya está registrado"}
	case strings.Contains(errStr, "email"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "Email ya está registrado"}
	case strings.Contains(errStr, "roles") || strings.Contains(errStr, "rol"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "El rol ya existe"}
	default:
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "El registro ya existe"}
	}
}

func notFoundMessage(context string) string {
	switch strings.ToLower(context) {
	case "persona":
		return "Persona no encontrada"
	case "producto":
		return "Producto no encontrado"
	case "cliente":
		return "Cliente no encontrado"
	case "pedido":
		return "Pedido no encontrado"
	default:
		return "Registro no encontrado"
	}
}
