package domain

import (
	"context"

	apperror "lojaadmin/internal/errors"
)

// Category agrupa produtos. ID 0 significa "ainda não persistida".
type Category struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate aplica as regras de negócio locais da categoria.
func (c Category) Validate() error {
	if c.Name == "" {
		return apperror.NewValidationError("O nome da categoria é obrigatório.")
	}
	return nil
}

// CategoryRepository define o contrato de acesso remoto para categorias.
type CategoryRepository interface {
	Listar(ctx context.Context) ([]Category, error)
	BuscarPorID(ctx context.Context, id int) (Category, error)
	Criar(ctx context.Context, c Category) (Category, error)
	Atualizar(ctx context.Context, c Category) error
	Remover(ctx context.Context, id int) error
}
