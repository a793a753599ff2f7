package session

import (
	"context"

	"lojaadmin/internal/domain"
)

// Sessao agrupa as duas entradas persistidas: a credencial opaca (token) e o
// usuário associado. As duas são sempre gravadas e removidas juntas.
type Sessao struct {
	Token   string         `json:"token"`
	Usuario domain.Usuario `json:"user"`
}

// Store define o contrato de persistência de sessão. Seguindo a Inversão de
// Dependência, a guarda de sessão depende apenas desta interface, o que
// permite trocar o backend (arquivo, Redis) ou usar um fake em testes.
type Store interface {
	// Save persiste token e usuário juntos, sobrescrevendo a sessão anterior.
	Save(ctx context.Context, s Sessao) error
	// Load retorna a sessão armazenada; ok=false quando não há sessão.
	Load(ctx context.Context) (Sessao, bool, error)
	// Clear remove token e usuário. Idempotente: limpar o que não existe não é erro.
	Clear(ctx context.Context) error
}
