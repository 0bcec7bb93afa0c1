package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type LoginRequest struct {
	Rut         string `json:"rut" binding:"required,rut"`
	Contrasenia string `json:"contrasenia" binding:"required"`
}

// Login authenticates a usuario and issues a JWT.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	token, usuario, err := ctrl.authService.Login(req.Rut, req.Contrasenia)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.AuthInvalidCredentials, "Rut o contraseña incorrectos")
			return
		}
		log.Error("Login failed", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"usuario": usuario,
	})
}
