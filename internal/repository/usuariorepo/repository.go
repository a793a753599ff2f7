package usuariorepo

import (
	"context"
	"errors"
	"fmt"

	"lojaadmin/internal/api"
	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Repository implementa a interface domain.UsuarioRepository sobre a API
// remota, através do Querier.
type Repository struct {
	querier *api.Querier
	log     logger.Logger
}

// NewRepository cria e retorna uma nova instância do Repositório.
func NewRepository(querier *api.Querier, log logger.Logger) *Repository {
	return &Repository{querier: querier, log: log}
}

// Adicionar registra um novo usuário (POST Usuario/AdicionarUsuario).
// A senha viaja no corpo como a API exige; nenhum hash é feito no cliente.
func (r *Repository) Adicionar(ctx context.Context, req domain.UsuarioRequest) error {
	if err := r.querier.Mutate(ctx, api.AdicionarUsuario, req, nil); err != nil {
		return err
	}
	r.log.Info("usuário registrado", map[string]interface{}{"login": req.Login})
	return nil
}

// Autorizar autentica o usuário (POST Usuario/AutorizarUsuario) e devolve a
// credencial com o usuário associado. Não persiste nada: quem decide guardar
// a sessão é a camada de serviço.
func (r *Repository) Autorizar(ctx context.Context, req domain.UsuarioRequest) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := r.querier.Mutate(ctx, api.AutorizarUsuario, req, &resp); err != nil {
		return domain.AuthResponse{}, err
	}
	return resp, nil
}

// Listar busca todos os usuários (GET Usuario).
func (r *Repository) Listar(ctx context.Context) ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	if err := r.querier.Query(ctx, api.ListarUsuarios, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// BuscarPorID busca um usuário (GET Usuario/{id}).
func (r *Repository) BuscarPorID(ctx context.Context, id string) (domain.Usuario, error) {
	var usuario domain.Usuario
	if err := r.querier.Query(ctx, api.BuscarUsuario, &usuario, id); err != nil {
		var apiErr *apperror.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return domain.Usuario{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não foi encontrado.", id))
		}
		return domain.Usuario{}, err
	}
	return usuario, nil
}

// Atualizar sobrescreve um usuário existente (PUT Usuario/{id}).
func (r *Repository) Atualizar(ctx context.Context, u domain.Usuario) error {
	return r.querier.Mutate(ctx, api.AtualizarUsuario, u, nil, u.ID)
}

// Remover apaga um usuário (DELETE Usuario/{id}).
func (r *Repository) Remover(ctx context.Context, id string) error {
	return r.querier.Mutate(ctx, api.RemoverUsuario, nil, nil, id)
}
