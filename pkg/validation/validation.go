package validation

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/somap/somap-backend/pkg/util"
)

// Layouts accepted by the API. Finance endpoints use the Chilean
// dd-mm-yyyy convention; orders use ISO dates.
const (
	LayoutFechaChilena = "02-01-2006"
	LayoutFechaISO     = "2006-01-02"
)

// nombrePattern allows letters (including Spanish accents) and spaces only.
var nombrePattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)

// CleanText trims and HTML-escapes free-form string input before it is
// validated or persisted.
func CleanText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// ParseFechaChilena parses a dd-mm-yyyy date.
func ParseFechaChilena(s string) (time.Time, error) {
	return time.Parse(LayoutFechaChilena, s)
}

// ParseFechaISO parses a yyyy-mm-dd date.
func ParseFechaISO(s string) (time.Time, error) {
	return time.Parse(LayoutFechaISO, s)
}

// RegisterCustomValidators wires the domain validators into gin's
// binding engine. Call once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return util.ValidateRut(fl.Field().String())
	})
	_ = v.RegisterValidation("nombre_es", func(fl validator.FieldLevel) bool {
		return nombrePattern.MatchString(fl.Field().String())
	})
}

// FieldErrors flattens a binding error into a field→message map for the
// standard validation envelope. Non-validator errors (malformed JSON)
// map to a single "body" entry.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["body"] = "cuerpo de la solicitud inválido"
		return fields
	}

	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "email":
		return "correo electrónico inválido"
	case "rut":
		return "RUT inválido"
	case "nombre_es":
		return "solo se permiten letras y espacios"
	case "min":
		return "valor demasiado corto o pequeño (mínimo " + fe.Param() + ")"
	case "max":
		return "valor demasiado largo o grande (máximo " + fe.Param() + ")"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "lte":
		return "debe ser menor o igual que " + fe.Param()
	case "oneof":
		return "valor fuera del conjunto permitido: " + fe.Param()
	case "datetime":
		return "fecha inválida, formato esperado " + strings.NewReplacer(
			"2006", "yyyy", "01", "mm", "02", "dd").Replace(fe.Param())
	case "alphanum":
		return "solo se permiten letras y números"
	default:
		return "valor inválido"
	}
}
