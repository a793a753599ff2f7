package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lojaadmin/internal/cli"
	"lojaadmin/internal/domain"
)

// TestRenderTabela: cabeçalho, índice de linha base 1 e valores extraídos
// pelas colunas declaradas no call site.
func TestRenderTabela(t *testing.T) {
	var buf bytes.Buffer

	produtos := []domain.Product{
		{ID: 7, Name: "Café", Price: 9.9, Category: &domain.Category{Name: "Bebidas"}},
		{ID: 8, Name: "Açúcar", Price: 4.5},
	}

	colunas := []cli.Coluna[domain.Product]{
		{Titulo: "Nome", Valor: func(p domain.Product) string { return p.Name }},
		{Titulo: "Categorias", Valor: func(p domain.Product) string {
			if p.Category == nil {
				return ""
			}
			return p.Category.Name
		}},
	}

	cli.RenderTabela(&buf, produtos, colunas)
	saida := buf.String()

	linhas := strings.Split(strings.TrimRight(saida, "\n"), "\n")
	assert.Len(t, linhas, 3)

	assert.Contains(t, linhas[0], "Nome")
	assert.Contains(t, linhas[0], "Categorias")
	assert.True(t, strings.HasPrefix(linhas[1], "1"))
	assert.Contains(t, linhas[1], "Café")
	assert.Contains(t, linhas[1], "Bebidas")
	assert.True(t, strings.HasPrefix(linhas[2], "2"))
	assert.Contains(t, linhas[2], "Açúcar")
}

// TestRenderTabela_Vazia: lista vazia imprime só o cabeçalho.
func TestRenderTabela_Vazia(t *testing.T) {
	var buf bytes.Buffer

	cli.RenderTabela(&buf, nil, []cli.Coluna[domain.Category]{
		{Titulo: "Nome", Valor: func(c domain.Category) string { return c.Name }},
	})

	linhas := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, linhas, 1)
	assert.Contains(t, linhas[0], "Nome")
}
