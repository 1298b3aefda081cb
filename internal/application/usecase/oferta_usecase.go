package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
)

// OfertaUseCase casos de uso CRUD para ofertas. Las validaciones de campos
// y la regla de salarios corren en el cliente, antes de cualquier llamada
// de red; el backend puede volver a rechazar y eso se propaga como error
// normal.
type OfertaUseCase struct {
	repo     repository.OfertaRepository
	validate *validator.Validate
}

// NewOfertaUseCase construye el caso de uso.
func NewOfertaUseCase(repo repository.OfertaRepository) *OfertaUseCase {
	return &OfertaUseCase{
		repo:     repo,
		validate: validator.New(),
	}
}

// Listar trae todas las ofertas.
func (uc *OfertaUseCase) Listar(ctx context.Context) ([]*entity.Oferta, error) {
	return uc.repo.Listar(ctx)
}

// ObtenerPorID devuelve (nil, nil) si la oferta no existe.
func (uc *OfertaUseCase) ObtenerPorID(ctx context.Context, id int64) (*entity.Oferta, error) {
	return uc.repo.ObtenerPorID(ctx, id)
}

// Crear valida y publica una oferta; devuelve la entidad con el id asignado.
// El invariante SalarioMin <= SalarioMax solo se verifica aquí, en la
// creación; las lecturas no lo re-validan.
func (uc *OfertaUseCase) Crear(ctx context.Context, in dto.CrearOfertaRequest) (*entity.Oferta, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	if err := validarSalarios(in.SalarioMin, in.SalarioMax); err != nil {
		return nil, err
	}
	return uc.repo.Crear(ctx, in.AOferta())
}

// Actualizar aplica un parche parcial a la oferta.
func (uc *OfertaUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarOfertaRequest) (*entity.Oferta, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	if in.SalarioMin != nil && in.SalarioMax != nil {
		if err := validarSalarios(*in.SalarioMin, *in.SalarioMax); err != nil {
			return nil, err
		}
	}
	return uc.repo.Actualizar(ctx, id, in.ACambios())
}

// Eliminar borra la oferta.
func (uc *OfertaUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.repo.Eliminar(ctx, id)
}

// validarSalarios rechaza el rango invertido. Un máximo en cero se entiende
// como "sin tope declarado" y no se compara.
func validarSalarios(min, max decimal.Decimal) error {
	if max.IsZero() {
		return nil
	}
	if min.GreaterThan(max) {
		return fmt.Errorf("%w: el salario mínimo no puede superar al máximo", domain.ErrEntradaInvalida)
	}
	return nil
}
