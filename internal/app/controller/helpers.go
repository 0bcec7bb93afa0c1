package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/somap/somap-backend/internal/errors"
)

// parseIDParam reads a positive numeric URL parameter. On failure it
// writes the 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "El identificador debe ser un número positivo")
		return 0, false
	}
	return uint(id), true
}

// parseOptionalUintQuery reads an optional numeric query parameter.
func parseOptionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Parámetro "+name+" inválido")
		return nil, false
	}
	v := uint(value)
	return &v, true
}
