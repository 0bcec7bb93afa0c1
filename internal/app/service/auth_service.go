package service

import (
	"errors"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
	"github.com/somap/somap-backend/pkg/util"
)

var ErrCredencialesInvalidas = errors.New("rut o contraseña incorrectos")

// dummyHash is a bcrypt digest of a random string. Comparing against it
// when the account does not exist keeps the response time of a failed
// login independent of whether the rut is registered.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type AuthService interface {
	Login(rut, contrasenia string) (string, *model.Usuario, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	jwtConfig   *config.JWTConfig
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, jwtConfig *config.JWTConfig) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		jwtConfig:   jwtConfig,
	}
}

// Login authenticates by rut and password. Unknown rut and wrong
// password produce the same error so the endpoint never reveals which
// accounts exist.
func (s *authService) Login(rut, contrasenia string) (string, *model.Usuario, error) {
	rut = util.NormalizeRut(rut)

	usuario, err := s.usuarioRepo.FindByPersonaRut(rut)
	if err != nil {
		util.VerifyPassword(dummyHash, contrasenia)
		logger.Warn("Login attempt for unknown rut", map[string]interface{}{
			"rut": rut,
		})
		return "", nil, ErrCredencialesInvalidas
	}

	if !util.VerifyPassword(usuario.Contrasenia, contrasenia) {
		logger.Warn("Login attempt with wrong password", map[string]interface{}{
			"id_usuario": usuario.ID,
		})
		return "", nil, ErrCredencialesInvalidas
	}

	roles := make([]string, 0, len(usuario.Roles))
	for _, asignacion := range usuario.Roles {
		roles = append(roles, asignacion.Rol.Rol)
	}

	token, err := util.GenerateToken(usuario.ID, rut, roles, s.jwtConfig.Secret, s.jwtConfig.TokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"id_usuario": usuario.ID,
		})
		return "", nil, err
	}

	logger.Info("Usuario logged in", map[string]interface{}{
		"id_usuario": usuario.ID,
		"roles":      roles,
	})
	return token, usuario, nil
}
