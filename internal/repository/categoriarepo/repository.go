package categoriarepo

import (
	"context"
	"errors"
	"fmt"

	"lojaadmin/internal/api"
	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Repository implementa a interface domain.CategoryRepository sobre a API
// remota, através do Querier.
type Repository struct {
	querier *api.Querier
	log     logger.Logger
}

// NewRepository cria e retorna uma nova instância do Repositório.
func NewRepository(querier *api.Querier, log logger.Logger) *Repository {
	return &Repository{querier: querier, log: log}
}

// Listar busca todas as categorias (GET Categorias/ListarCategorias).
func (r *Repository) Listar(ctx context.Context) ([]domain.Category, error) {
	var categorias []domain.Category
	if err := r.querier.Query(ctx, api.ListarCategorias, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

// BuscarPorID busca uma categoria (GET Categorias/{id}).
func (r *Repository) BuscarPorID(ctx context.Context, id int) (domain.Category, error) {
	var categoria domain.Category
	if err := r.querier.Query(ctx, api.BuscarCategoria, &categoria, id); err != nil {
		var apiErr *apperror.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("Categoria com ID %d não foi encontrada.", id))
		}
		return domain.Category{}, err
	}
	return categoria, nil
}

// Criar persiste uma nova categoria (POST Categorias).
func (r *Repository) Criar(ctx context.Context, c domain.Category) (domain.Category, error) {
	var criada domain.Category
	if err := r.querier.Mutate(ctx, api.CriarCategoria, c, &criada); err != nil {
		return domain.Category{}, err
	}
	r.log.Info("categoria criada", map[string]interface{}{"id": criada.ID, "name": criada.Name})
	return criada, nil
}

// Atualizar sobrescreve uma categoria existente (PUT Categorias/{id}).
func (r *Repository) Atualizar(ctx context.Context, c domain.Category) error {
	if err := r.querier.Mutate(ctx, api.AtualizarCategoria, c, nil, c.ID); err != nil {
		return err
	}
	r.log.Info("categoria atualizada", map[string]interface{}{"id": c.ID})
	return nil
}

// Remover apaga uma categoria (DELETE Categorias/{id}).
func (r *Repository) Remover(ctx context.Context, id int) error {
	if err := r.querier.Mutate(ctx, api.RemoverCategoria, nil, nil, id); err != nil {
		return err
	}
	r.log.Info("categoria removida", map[string]interface{}{"id": id})
	return nil
}
