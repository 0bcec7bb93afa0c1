package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/pkg/util"
)

// Context keys for the authenticated usuario.
const (
	UsuarioIDKey    = "id_usuario"
	UsuarioRutKey   = "rut_usuario"
	UsuarioRolesKey = "roles_usuario"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// Authenticate requires a valid Bearer token and stores the claims in
// the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			apperrors.Unauthorized(c, "Se requiere iniciar sesión")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			apperrors.RespondWithError(c, 401, apperrors.AuthTokenInvalid, "Formato de autorización inválido")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				apperrors.RespondWithError(c, 401, apperrors.AuthTokenExpired, "La sesión ha expirado")
			} else {
				apperrors.RespondWithError(c, 401, apperrors.AuthTokenInvalid, "Token de autenticación inválido")
			}
			c.Abort()
			return
		}

		c.Set(UsuarioIDKey, claims.IDUsuario)
		c.Set(UsuarioRutKey, claims.Rut)
		c.Set(UsuarioRolesKey, claims.Roles)

		c.Next()
	}
}

// RequireRole allows the request through only when the token carries at
// least one of the given roles. Run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		value, exists := c.Get(UsuarioRolesKey)
		if !exists {
			apperrors.Unauthorized(c, "Se requiere iniciar sesión")
			c.Abort()
			return
		}

		usuarioRoles, ok := value.([]string)
		if !ok {
			apperrors.Forbidden(c, "")
			c.Abort()
			return
		}

		for _, have := range usuarioRoles {
			for _, want := range roles {
				if have == want {
					c.Next()
					return
				}
			}
		}

		log.Warn("Usuario lacks required role", map[string]interface{}{
			"path":           c.Request.URL.Path,
			"roles_usuario":  usuarioRoles,
			"roles_required": roles,
		})
		apperrors.Forbidden(c, "No tiene permisos para esta operación")
		c.Abort()
	}
}

// GetUsuarioID returns the authenticated usuario id from context.
func GetUsuarioID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UsuarioIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUsuarioRut returns the authenticated rut from context.
func GetUsuarioRut(c *gin.Context) string {
	return c.GetString(UsuarioRutKey)
}
