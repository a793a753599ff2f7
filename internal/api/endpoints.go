package api

import (
	"fmt"
	"net/http"
)

// Tag é o rótulo que agrupa resultados de query em cache. Uma mutação sobre
// um recurso invalida TODAS as entradas sob a tag daquele recurso.
type Tag string

// Tags de cache: uma por tipo de recurso da API remota.
const (
	TagProduct  Tag = "Product"
	TagCategory Tag = "Category"
	TagUsuario  Tag = "Usuario"
)

// Endpoint descreve uma operação do catálogo de forma declarativa:
// verbo + template de caminho + contrato de cache (provê ou invalida uma tag).
// Queries (GET) provêem uma tag; mutações invalidam uma.
type Endpoint struct {
	Nome        string
	Metodo      string
	Path        string // template estilo fmt (e.g., "Produtos/%d")
	Provides    Tag
	Invalidates Tag
}

// Caminho materializa o template de Path com os argumentos da chamada.
func (e Endpoint) Caminho(args ...interface{}) string {
	if len(args) == 0 {
		return e.Path
	}
	return fmt.Sprintf(e.Path, args...)
}

// Catálogo fixo de operações da API remota. As queries de produto e categoria
// provêem as respectivas tags; qualquer mutação invalida a tag inteira do
// recurso, forçando refetch das listagens dependentes.
var (
	ListarProdutos   = Endpoint{Nome: "getProductsList", Metodo: http.MethodGet, Path: "Produtos/ListarProdutos", Provides: TagProduct}
	BuscarProduto    = Endpoint{Nome: "getProductById", Metodo: http.MethodGet, Path: "Produtos/%d", Provides: TagProduct}
	CriarProduto     = Endpoint{Nome: "createProduct", Metodo: http.MethodPost, Path: "Produtos", Invalidates: TagProduct}
	AtualizarProduto = Endpoint{Nome: "updateProduct", Metodo: http.MethodPut, Path: "Produtos/%d", Invalidates: TagProduct}
	RemoverProduto   = Endpoint{Nome: "deleteProduct", Metodo: http.MethodDelete, Path: "Produtos/%d", Invalidates: TagProduct}

	ListarCategorias   = Endpoint{Nome: "getCategoriesList", Metodo: http.MethodGet, Path: "Categorias/ListarCategorias", Provides: TagCategory}
	BuscarCategoria    = Endpoint{Nome: "getCategoryById", Metodo: http.MethodGet, Path: "Categorias/%d", Provides: TagCategory}
	CriarCategoria     = Endpoint{Nome: "createCategory", Metodo: http.MethodPost, Path: "Categorias", Invalidates: TagCategory}
	AtualizarCategoria = Endpoint{Nome: "updateCategory", Metodo: http.MethodPut, Path: "Categorias/%d", Invalidates: TagCategory}
	RemoverCategoria   = Endpoint{Nome: "deleteCategory", Metodo: http.MethodDelete, Path: "Categorias/%d", Invalidates: TagCategory}

	AdicionarUsuario = Endpoint{Nome: "adicionarUsuario", Metodo: http.MethodPost, Path: "Usuario/AdicionarUsuario", Invalidates: TagUsuario}
	AutorizarUsuario = Endpoint{Nome: "autorizarUsuario", Metodo: http.MethodPost, Path: "Usuario/AutorizarUsuario"}
	ListarUsuarios   = Endpoint{Nome: "getUsuariosList", Metodo: http.MethodGet, Path: "Usuario", Provides: TagUsuario}
	BuscarUsuario    = Endpoint{Nome: "getUsuarioById", Metodo: http.MethodGet, Path: "Usuario/%s", Provides: TagUsuario}
	AtualizarUsuario = Endpoint{Nome: "updateUsuario", Metodo: http.MethodPut, Path: "Usuario/%s", Invalidates: TagUsuario}
	RemoverUsuario   = Endpoint{Nome: "deleteUsuario", Metodo: http.MethodDelete, Path: "Usuario/%s", Invalidates: TagUsuario}
)
