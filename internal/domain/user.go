package domain

import "context"

// Usuario representa o usuário autenticado no sistema.
type Usuario struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

// UsuarioRequest é o payload de login e de registro aceito pela API remota.
type UsuarioRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// AuthResponse é a resposta do endpoint de autorização: a credencial opaca
// (JWT) e o usuário associado.
type AuthResponse struct {
	Auth    string  `json:"auth"`
	Usuario Usuario `json:"usuario"`
}

// UsuarioRepository define o contrato de acesso remoto para usuários.
type UsuarioRepository interface {
	Adicionar(ctx context.Context, req UsuarioRequest) error
	Autorizar(ctx context.Context, req UsuarioRequest) (AuthResponse, error)
	Listar(ctx context.Context) ([]Usuario, error)
	BuscarPorID(ctx context.Context, id string) (Usuario, error)
	Atualizar(ctx context.Context, u Usuario) error
	Remover(ctx context.Context, id string) error
}
