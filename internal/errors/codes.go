package errors

// Error code constants, format CATEGORY_SPECIFIC_DETAIL.
// The admin frontend maps these codes to display messages.

const (
	// ==================== Autenticación (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login requerido
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // RUT o contraseña incorrectos
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token vencido
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // token inválido

	// ==================== Autorización (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // sin permisos
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // sin información de roles

	// ==================== Validación (VALIDACION_) ====================
	ValidationInvalidInput = "VALIDACION_ENTRADA_INVALIDA"
	ValidationInvalidID    = "VALIDACION_ID_INVALIDO"

	// ==================== Recursos (RECURSO_) ====================
	ResourceNotFound      = "RECURSO_NO_ENCONTRADO"
	ResourceAlreadyExists = "RECURSO_YA_EXISTE"
	ResourceConflict      = "RECURSO_EN_CONFLICTO"

	// ==================== Reglas de negocio (NEGOCIO_) ====================
	BusinessCategoryInUse = "NEGOCIO_CATEGORIA_EN_USO" // categoría con productos asociados
	BusinessInvalidEstado = "NEGOCIO_ESTADO_INVALIDO"  // estado de pedido fuera del conjunto

	// ==================== Carga de archivos (CARGA_) ====================
	UploadInvalidFileType = "CARGA_TIPO_INVALIDO" // solo JPEG/PNG
	UploadFileTooLarge    = "CARGA_ARCHIVO_MUY_GRANDE"
	UploadFailed          = "CARGA_FALLIDA"

	// ==================== Errores internos (INTERNO_) ====================
	InternalServerError   = "INTERNO_ERROR_SERVIDOR"
	InternalDatabaseError = "INTERNO_ERROR_BD"
)
