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
	"lojaadmin/internal/service/categoriaservice"
)

// CategoriasView é a tela de categorias, com o mesmo fluxo da de produtos.
type CategoriasView struct {
	editor *categoriaservice.Editor
	in     *bufio.Reader
	out    io.Writer
}

// NewCategoriasView cria a view de categorias.
func NewCategoriasView(editor *categoriaservice.Editor, in *bufio.Reader, out io.Writer) *CategoriasView {
	return &CategoriasView{editor: editor, in: in, out: out}
}

// colunasCategoria define explicitamente as colunas da listagem.
func colunasCategoria() []Coluna[domain.Category] {
	return []Coluna[domain.Category]{
		{Titulo: "Nome", Valor: func(c domain.Category) string { return c.Name }},
		{Titulo: "Descrição", Valor: func(c domain.Category) string { return c.Description }},
	}
}

// Render desenha a listagem e processa uma ação do menu.
func (v *CategoriasView) Render(ctx context.Context) (string, error) {
	fmt.Fprintln(v.out, "\n== Categorias ==")

	lista, err := v.editor.Listar(ctx)
	if err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
	}
	RenderTabela(v.out, lista, colunasCategoria())

	fmt.Fprintln(v.out, "[a] adicionar  [e] editar  [r] remover  [p] produtos  [q] encerrar")
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
		c, ok := v.escolher(lista)
		if !ok {
			break
		}
		if err := v.editor.Editar(c); err != nil {
			return "", err
		}
		v.editarDraft(ctx)
	case "r":
		c, ok := v.escolher(lista)
		if !ok {
			break
		}
		if err := v.editor.PedirRemocao(c); err != nil {
			return "", err
		}
		v.confirmarRemocao(ctx, c)
	case "p":
		return "/produtos", nil
	case "q":
		return "", nil
	}

	return "/categorias", nil
}

func (v *CategoriasView) escolher(lista []domain.Category) (domain.Category, bool) {
	fmt.Fprint(v.out, "Número da linha: ")
	entrada, err := LerLinha(v.in)
	if err != nil {
		return domain.Category{}, false
	}

	i, err := strconv.Atoi(entrada)
	if err != nil || i < 1 || i > len(lista) {
		fmt.Fprintln(v.out, "⚠ Linha inválida.")
		return domain.Category{}, false
	}
	return lista[i-1], true
}

func (v *CategoriasView) editarDraft(ctx context.Context) {
	campos := []Campo{
		{Nome: "name", Rotulo: "Nome"},
		{Nome: "description", Rotulo: "Descrição"},
	}

	err := Form(v.in, v.out, campos,
		func(nome string) string {
			draft := v.editor.Draft()
			switch nome {
			case "name":
				return draft.Name
			case "description":
				return draft.Description
			}
			return ""
		},
		func(nome, valor string) {
			v.editor.AlterarCampo(func(c *domain.Category) {
				switch nome {
				case "name":
					c.Name = valor
				case "description":
					c.Description = valor
				}
			})
		})
	if err != nil {
		v.editor.Cancelar()
		return
	}

	if err := v.editor.Salvar(ctx); err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		v.editor.Cancelar()
		return
	}
	fmt.Fprintln(v.out, "Categoria salva.")
}

func (v *CategoriasView) confirmarRemocao(ctx context.Context, c domain.Category) {
	fmt.Fprintf(v.out, "Tem certeza que deseja remover a categoria %q? (s/N): ", c.Name)
	resposta, err := LerLinha(v.in)
	if err != nil || !strings.EqualFold(resposta, "s") {
		v.editor.CancelarRemocao()
		return
	}

	if err := v.editor.ConfirmarRemocao(ctx); err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		return
	}
	fmt.Fprintln(v.out, "Categoria removida.")
}
