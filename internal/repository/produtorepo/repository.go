package produtorepo

import (
	"context"
	"errors"
	"fmt"

	"lojaadmin/internal/api"
	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Repository implementa a interface domain.ProductRepository sobre a API
// remota, através do Querier (que cuida de cache e deduplicação).
type Repository struct {
	querier *api.Querier
	log     logger.Logger
}

// NewRepository cria e retorna uma nova instância do Repositório.
func NewRepository(querier *api.Querier, log logger.Logger) *Repository {
	return &Repository{querier: querier, log: log}
}

// Listar busca todos os produtos (GET Produtos/ListarProdutos).
func (r *Repository) Listar(ctx context.Context) ([]domain.Product, error) {
	var produtos []domain.Product
	if err := r.querier.Query(ctx, api.ListarProdutos, &produtos); err != nil {
		return nil, err
	}
	return produtos, nil
}

// BuscarPorID busca um produto (GET Produtos/{id}). 404 vira NotFoundError.
func (r *Repository) BuscarPorID(ctx context.Context, id int) (domain.Product, error) {
	var produto domain.Product
	if err := r.querier.Query(ctx, api.BuscarProduto, &produto, id); err != nil {
		var apiErr *apperror.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não foi encontrado.", id))
		}
		return domain.Product{}, err
	}
	return produto, nil
}

// Criar persiste um novo produto (POST Produtos) e devolve o registro com o
// ID atribuído pelo servidor.
func (r *Repository) Criar(ctx context.Context, p domain.Product) (domain.Product, error) {
	var criado domain.Product
	if err := r.querier.Mutate(ctx, api.CriarProduto, p, &criado); err != nil {
		return domain.Product{}, err
	}
	r.log.Info("produto criado", map[string]interface{}{"id": criado.ID, "name": criado.Name})
	return criado, nil
}

// Atualizar sobrescreve um produto existente (PUT Produtos/{id}).
// O ID é imutável: ele identifica o registro e não viaja para outro.
func (r *Repository) Atualizar(ctx context.Context, p domain.Product) error {
	if err := r.querier.Mutate(ctx, api.AtualizarProduto, p, nil, p.ID); err != nil {
		return err
	}
	r.log.Info("produto atualizado", map[string]interface{}{"id": p.ID})
	return nil
}

// Remover apaga um produto (DELETE Produtos/{id}).
func (r *Repository) Remover(ctx context.Context, id int) error {
	if err := r.querier.Mutate(ctx, api.RemoverProduto, nil, nil, id); err != nil {
		return err
	}
	r.log.Info("produto removido", map[string]interface{}{"id": id})
	return nil
}
