package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lojaadmin/internal/api"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/pkg/session"
)

// TestClient_AnexaCredencial: com sessão armazenada, toda requisição sai com
// o header Authorization Bearer.
func TestClient_AnexaCredencial(t *testing.T) {
	ctx := context.Background()

	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, session.Sessao{Token: "token-de-teste"}))

	client := api.NewClient(srv.URL, 5*time.Second, store, logger.NewLogger("error", "test"))
	_, err := client.Do(ctx, http.MethodGet, "Produtos/ListarProdutos", nil)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-de-teste", recebido)
}

// TestClient_SemSessaoSegueAnonimo: sem sessão, a requisição sai sem o header
// (login e registro dependem disso).
func TestClient_SemSessaoSegueAnonimo(t *testing.T) {
	ctx := context.Background()

	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5*time.Second, session.NewMemoryStore(), logger.NewLogger("error", "test"))
	_, err := client.Do(ctx, http.MethodPost, "Usuario/AutorizarUsuario", map[string]string{"login": "maria"})

	assert.NoError(t, err)
	assert.Empty(t, recebido)
}

// TestClient_CorpoNaoJSONNoErro: corpo de erro que não é JSON não derruba o
// cliente; o status prevalece.
func TestClient_CorpoNaoJSONNoErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5*time.Second, session.NewMemoryStore(), logger.NewLogger("error", "test"))
	_, err := client.Do(context.Background(), http.MethodGet, "Produtos/ListarProdutos", nil)

	assert.Error(t, err)
}
