package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"lojaadmin/internal/domain"
	"lojaadmin/internal/pkg/session"
)

// TestFileStore_SalvaECarrega: a sessão gravada por uma instância precisa ser
// lida por outra instância apontando para o mesmo arquivo (persistência real).
func TestFileStore_SalvaECarrega(t *testing.T) {
	ctx := context.Background()
	caminho := filepath.Join(t.TempDir(), "lojaadmin", "sessao.json")

	sess := session.Sessao{
		Token:   "token-de-teste",
		Usuario: domain.Usuario{ID: "1", Login: "maria"},
	}

	store := session.NewFileStore(caminho)
	err := store.Save(ctx, sess)
	assert.NoError(t, err)

	// Uma nova instância simula a reabertura do cliente.
	outro := session.NewFileStore(caminho)
	carregada, ok, err := outro.Load(ctx)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sess, carregada)
}

// TestFileStore_ArquivoAusente: sem arquivo não há sessão, e não há erro.
func TestFileStore_ArquivoAusente(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "inexistente.json"))

	_, ok, err := store.Load(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
}

// TestFileStore_ArquivoCorrompido: JSON ilegível conta como sessão ausente,
// mas o erro é reportado para o chamador logar.
func TestFileStore_ArquivoCorrompido(t *testing.T) {
	caminho := filepath.Join(t.TempDir(), "sessao.json")
	err := os.WriteFile(caminho, []byte("{nao é json"), 0o600)
	assert.NoError(t, err)

	store := session.NewFileStore(caminho)
	_, ok, err := store.Load(context.Background())

	assert.False(t, ok)
	assert.Error(t, err)
}

// TestFileStore_Clear remove token e usuário juntos e é idempotente.
func TestFileStore_Clear(t *testing.T) {
	ctx := context.Background()
	caminho := filepath.Join(t.TempDir(), "sessao.json")
	store := session.NewFileStore(caminho)

	err := store.Save(ctx, session.Sessao{Token: "abc"})
	assert.NoError(t, err)

	assert.NoError(t, store.Clear(ctx))

	_, ok, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Limpar de novo, sem sessão, também não é erro.
	assert.NoError(t, store.Clear(ctx))
}

// TestFileStore_PermissaoRestrita: o arquivo carrega uma credencial, então
// só o dono pode lê-lo.
func TestFileStore_PermissaoRestrita(t *testing.T) {
	ctx := context.Background()
	caminho := filepath.Join(t.TempDir(), "sessao.json")
	store := session.NewFileStore(caminho)

	err := store.Save(ctx, session.Sessao{Token: "abc"})
	assert.NoError(t, err)

	info, err := os.Stat(caminho)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestMemoryStore cobre o fake usado pelos testes de serviço.
func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, ok, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	sess := session.Sessao{Token: "t", Usuario: domain.Usuario{Login: "jose"}}
	assert.NoError(t, store.Save(ctx, sess))

	carregada, ok, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sess, carregada)

	assert.NoError(t, store.Clear(ctx))
	_, ok, _ = store.Load(ctx)
	assert.False(t, ok)
}
