package domain

import (
	"context"

	apperror "lojaadmin/internal/errors"
)

// Product representa o item principal do catálogo (a Entidade).
// As tags JSON seguem o contrato da API remota; ID 0 significa "ainda não
// persistido" (o servidor atribui o identificador na criação).
type Product struct {
	ID         int       `json:"id,omitempty"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID int       `json:"categoryid,omitempty"`
	Category   *Category `json:"category,omitempty"` // Desnormalizada pelo servidor nas listagens
}

// Validate aplica as regras de negócio locais ANTES de qualquer chamada de
// rede. A ordem é fixa e curto-circuita: nome, depois preço, depois categoria.
func (p Product) Validate() error {
	if p.Name == "" {
		return apperror.NewValidationError("O nome do produto é obrigatório.")
	}
	if p.Price <= 0 {
		return apperror.NewValidationError("O preço do produto deve ser positivo.")
	}
	if p.CategoryID == 0 {
		return apperror.NewValidationError("Selecione uma categoria para o produto.")
	}
	return nil
}

// --- Interfaces de Contrato ---

// ProductRepository define o que as camadas superiores podem pedir para a
// camada de acesso à API remota fazer com produtos.
type ProductRepository interface {
	Listar(ctx context.Context) ([]Product, error)
	BuscarPorID(ctx context.Context, id int) (Product, error)
	Criar(ctx context.Context, p Product) (Product, error)
	Atualizar(ctx context.Context, p Product) error
	Remover(ctx context.Context, id int) error
}
