package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/service/authservice"
	"lojaadmin/internal/service/categoriaservice"
	"lojaadmin/internal/service/produtoservice"
)

// ProdutosView é a tela principal: lista os produtos e conduz o editor
// (adicionar/editar/remover com confirmação).
type ProdutosView struct {
	editor     *produtoservice.Editor
	categorias *categoriaservice.Editor // usado apenas para o seletor de categoria
	auth       *authservice.Service
	in         *bufio.Reader
	out        io.Writer
}

// NewProdutosView cria a view de produtos.
func NewProdutosView(editor *produtoservice.Editor, categorias *categoriaservice.Editor, auth *authservice.Service, in *bufio.Reader, out io.Writer) *ProdutosView {
	return &ProdutosView{editor: editor, categorias: categorias, auth: auth, in: in, out: out}
}

// colunasProduto define explicitamente as colunas da listagem de produtos,
// incluindo a de categoria (nomes unidos por vírgula; no modelo atual, um
// produto tem no máximo uma).
func colunasProduto() []Coluna[domain.Product] {
	return []Coluna[domain.Product]{
		{Titulo: "Nome", Valor: func(p domain.Product) string { return p.Name }},
		{Titulo: "Preço", Valor: func(p domain.Product) string { return strconv.FormatFloat(p.Price, 'f', 2, 64) }},
		{Titulo: "Categorias", Valor: func(p domain.Product) string {
			var nomes []string
			if p.Category != nil {
				nomes = append(nomes, p.Category.Name)
			}
			return strings.Join(nomes, ", ")
		}},
	}
}

// Render desenha a listagem e processa uma ação do menu.
func (v *ProdutosView) Render(ctx context.Context) (string, error) {
	fmt.Fprintln(v.out, "\n== Produtos ==")

	lista, err := v.editor.Listar(ctx)
	if err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
	}
	RenderTabela(v.out, lista, colunasProduto())

	fmt.Fprintln(v.out, "[a] adicionar  [e] editar  [r] remover  [c] categorias  [s] sair da conta  [q] encerrar")
	fmt.Fprint(v.out, "> ")
	acao, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}

	switch acao {
	case "a":
		if err := v.editor.Adicionar(); err != nil {
			return "", err
		}
		v.editarDraft(ctx)
	case "e":
		p, ok := v.escolher(lista)
		if !ok {
			break
		}
		if err := v.editor.Editar(p); err != nil {
			return "", err
		}
		v.editarDraft(ctx)
	case "r":
		p, ok := v.escolher(lista)
		if !ok {
			break
		}
		if err := v.editor.PedirRemocao(p); err != nil {
			return "", err
		}
		v.confirmarRemocao(ctx, p)
	case "c":
		return "/categorias", nil
	case "s":
		v.auth.Logout(ctx)
		return "/login", nil
	case "q":
		return "", nil
	}

	return "/produtos", nil
}

// escolher pede o número da linha e devolve o registro correspondente.
func (v *ProdutosView) escolher(lista []domain.Product) (domain.Product, bool) {
	fmt.Fprint(v.out, "Número da linha: ")
	entrada, err := LerLinha(v.in)
	if err != nil {
		return domain.Product{}, false
	}

	i, err := strconv.Atoi(entrada)
	if err != nil || i < 1 || i > len(lista) {
		fmt.Fprintln(v.out, "⚠ Linha inválida.")
		return domain.Product{}, false
	}
	return lista[i-1], true
}

// editarDraft conduz o formulário sobre o rascunho do editor e tenta salvar.
// Qualquer falha (validação local ou mutação) vira um alerta descartável; o
// rascunho só é descartado depois de o usuário ser informado.
func (v *ProdutosView) editarDraft(ctx context.Context) {
	campos := []Campo{
		{Nome: "name", Rotulo: "Nome"},
		{Nome: "price", Rotulo: "Preço"},
	}

	err := Form(v.in, v.out, campos,
		func(nome string) string {
			draft := v.editor.Draft()
			switch nome {
			case "name":
				return draft.Name
			case "price":
				return strconv.FormatFloat(draft.Price, 'f', 2, 64)
			}
			return ""
		},
		func(nome, valor string) {
			v.editor.AlterarCampo(func(p *domain.Product) {
				switch nome {
				case "name":
					p.Name = valor
				case "price":
					preco, err := strconv.ParseFloat(valor, 64)
					if err != nil {
						fmt.Fprintln(v.out, "⚠ Preço inválido; mantendo o valor anterior.")
						return
					}
					p.Price = preco
				}
			})
		})
	if err != nil {
		v.editor.Cancelar()
		return
	}

	// Controle extra do formulário: o seletor de categoria.
	v.selecionarCategoria(ctx)

	if err := v.editor.Salvar(ctx); err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		v.editor.Cancelar()
		return
	}
	fmt.Fprintln(v.out, "Produto salvo.")
}

// selecionarCategoria lista as categorias disponíveis e aplica a escolha ao
// rascunho. Entrada vazia mantém a categoria corrente.
func (v *ProdutosView) selecionarCategoria(ctx context.Context) {
	categorias, err := v.categorias.Listar(ctx)
	if err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		return
	}
	if len(categorias) == 0 {
		fmt.Fprintln(v.out, "(nenhuma categoria cadastrada)")
		return
	}

	for i, c := range categorias {
		fmt.Fprintf(v.out, "  %d) %s\n", i+1, c.Name)
	}
	fmt.Fprint(v.out, "Categoria (número): ")

	entrada, err := LerLinha(v.in)
	if err != nil || entrada == "" {
		return
	}

	i, err := strconv.Atoi(entrada)
	if err != nil || i < 1 || i > len(categorias) {
		fmt.Fprintln(v.out, "⚠ Categoria inválida; mantendo a anterior.")
		return
	}

	escolhida := categorias[i-1]
	v.editor.AlterarCampo(func(p *domain.Product) {
		p.CategoryID = escolhida.ID
		p.Category = &escolhida
	})
}

// confirmarRemocao pergunta antes do DELETE; cancelar não emite rede.
func (v *ProdutosView) confirmarRemocao(ctx context.Context, p domain.Product) {
	fmt.Fprintf(v.out, "Tem certeza que deseja remover o produto %q? (s/N): ", p.Name)
	resposta, err := LerLinha(v.in)
	if err != nil || !strings.EqualFold(resposta, "s") {
		v.editor.CancelarRemocao()
		return
	}

	if err := v.editor.ConfirmarRemocao(ctx); err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		return
	}
	fmt.Fprintln(v.out, "Produto removido.")
}
