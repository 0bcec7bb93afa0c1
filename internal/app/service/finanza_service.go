package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrTransaccionNotFound    = errors.New("transacción not found")
	ErrGastoNotFound          = errors.New("gasto not found")
	ErrSueldoNotFound         = errors.New("sueldo not found")
	ErrCategoriaGastoNotFound = errors.New("categoría de gasto not found")
	ErrMontoInvalido          = errors.New("monto debe ser mayor que cero")
	ErrTipoSueldoInvalido     = errors.New("tipo de sueldo inválido")
)

type GastoInput struct {
	NombreGasto      string
	IDCategoriaGasto uint
	Monto            decimal.Decimal
	Fecha            time.Time
	Descripcion      string
}

type SueldoInput struct {
	TipoSueldo  model.TipoSueldo
	Monto       decimal.Decimal
	Fecha       time.Time
	Descripcion string
}

type FinanzaService interface {
	GetAllTransacciones() ([]model.Transaccion, error)
	GetTransaccionByID(id uint) (*model.Transaccion, error)

	CreateGasto(input GastoInput) (*model.Gasto, error)
	GetAllGastos() ([]model.Gasto, error)
	GetGastoByID(id uint) (*model.Gasto, error)
	DeleteGasto(id uint) error

	CreateSueldo(input SueldoInput) (*model.Sueldo, error)
	GetAllSueldos() ([]model.Sueldo, error)
	GetSueldoByID(id uint) (*model.Sueldo, error)
	DeleteSueldo(id uint) error

	CreateCategoriaGasto(nombre string) (*model.CategoriaGasto, error)
	GetAllCategoriasGasto() ([]model.CategoriaGasto, error)
	GetCategoriaGastoByID(id uint) (*model.CategoriaGasto, error)
	UpdateCategoriaGasto(id uint, nombre string) (*model.CategoriaGasto, error)
	DeleteCategoriaGasto(id uint) error
}

type finanzaService struct {
	finanzaRepo repository.FinanzaRepository
}

func NewFinanzaService(finanzaRepo repository.FinanzaRepository) FinanzaService {
	return &finanzaService{finanzaRepo: finanzaRepo}
}

func (s *finanzaService) GetAllTransacciones() ([]model.Transaccion, error) {
	return s.finanzaRepo.FindAllTransacciones()
}

func (s *finanzaService) GetTransaccionByID(id uint) (*model.Transaccion, error) {
	transaccion, err := s.finanzaRepo.FindTransaccionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaccionNotFound
		}
		return nil, err
	}
	return transaccion, nil
}

// CreateGasto records the expense and its backing egreso transaction
// as one atomic unit.
func (s *finanzaService) CreateGasto(input GastoInput) (*model.Gasto, error) {
	if !input.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if _, err := s.GetCategoriaGastoByID(input.IDCategoriaGasto); err != nil {
		return nil, err
	}

	fecha := input.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	transaccion := &model.Transaccion{
		Fecha:       fecha,
		Tipo:        model.TransaccionEgreso,
		Monto:       input.Monto,
		Descripcion: input.Descripcion,
	}
	gasto := &model.Gasto{
		NombreGasto:      input.NombreGasto,
		IDCategoriaGasto: input.IDCategoriaGasto,
	}
	if err := s.finanzaRepo.CreateGastoConTransaccion(transaccion, gasto); err != nil {
		return nil, err
	}

	logger.Info("Gasto created", map[string]interface{}{
		"id_gasto":       gasto.ID,
		"id_transaccion": transaccion.ID,
		"monto":          input.Monto.String(),
	})
	return s.GetGastoByID(gasto.ID)
}

func (s *finanzaService) GetAllGastos() ([]model.Gasto, error) {
	return s.finanzaRepo.FindAllGastos()
}

func (s *finanzaService) GetGastoByID(id uint) (*model.Gasto, error) {
	gasto, err := s.finanzaRepo.FindGastoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGastoNotFound
		}
		return nil, err
	}
	return gasto, nil
}

func (s *finanzaService) DeleteGasto(id uint) error {
	if _, err := s.GetGastoByID(id); err != nil {
		return err
	}
	return s.finanzaRepo.DeleteGasto(id)
}

// CreateSueldo mirrors the gasto flow for salary payouts.
func (s *finanzaService) CreateSueldo(input SueldoInput) (*model.Sueldo, error) {
	if !input.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	switch input.TipoSueldo {
	case model.SueldoSemanal, model.SueldoMensual, model.SueldoQuincena:
	default:
		return nil, ErrTipoSueldoInvalido
	}

	fecha := input.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	transaccion := &model.Transaccion{
		Fecha:       fecha,
		Tipo:        model.TransaccionEgreso,
		Monto:       input.Monto,
		Descripcion: input.Descripcion,
	}
	sueldo := &model.Sueldo{
		TipoSueldo:  input.TipoSueldo,
		Descripcion: input.Descripcion,
	}
	if err := s.finanzaRepo.CreateSueldoConTransaccion(transaccion, sueldo); err != nil {
		return nil, err
	}

	logger.Info("Sueldo created", map[string]interface{}{
		"id_sueldo":      sueldo.ID,
		"id_transaccion": transaccion.ID,
		"monto":          input.Monto.String(),
	})
	return s.GetSueldoByID(sueldo.ID)
}

func (s *finanzaService) GetAllSueldos() ([]model.Sueldo, error) {
	return s.finanzaRepo.FindAllSueldos()
}

func (s *finanzaService) GetSueldoByID(id uint) (*model.Sueldo, error) {
	sueldo, err := s.finanzaRepo.FindSueldoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSueldoNotFound
		}
		return nil, err
	}
	return sueldo, nil
}

func (s *finanzaService) DeleteSueldo(id uint) error {
	if _, err := s.GetSueldoByID(id); err != nil {
		return err
	}
	return s.finanzaRepo.DeleteSueldo(id)
}

func (s *finanzaService) CreateCategoriaGasto(nombre string) (*model.CategoriaGasto, error) {
	categoria := &model.CategoriaGasto{Nombre: nombre}
	if err := s.finanzaRepo.CreateCategoriaGasto(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *finanzaService) GetAllCategoriasGasto() ([]model.CategoriaGasto, error) {
	return s.finanzaRepo.FindAllCategoriasGasto()
}

func (s *finanzaService) GetCategoriaGastoByID(id uint) (*model.CategoriaGasto, error) {
	categoria, err := s.finanzaRepo.FindCategoriaGastoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoriaGastoNotFound
		}
		return nil, err
	}
	return categoria, nil
}

func (s *finanzaService) UpdateCategoriaGasto(id uint, nombre string) (*model.CategoriaGasto, error) {
	categoria, err := s.GetCategoriaGastoByID(id)
	if err != nil {
		return nil, err
	}
	categoria.Nombre = nombre
	if err := s.finanzaRepo.UpdateCategoriaGasto(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *finanzaService) DeleteCategoriaGasto(id uint) error {
	if _, err := s.GetCategoriaGastoByID(id); err != nil {
		return err
	}
	return s.finanzaRepo.DeleteCategoriaGasto(id)
}
