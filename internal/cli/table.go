package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Coluna descreve como intitular e extrair um valor de T para a tabela.
// O conjunto de colunas de cada recurso é decidido explicitamente no call
// site da view; nada aqui inspeciona o shape dos dados em runtime.
type Coluna[T any] struct {
	Titulo string
	Valor  func(T) string
}

// RenderTabela escreve a listagem alinhada, com cabeçalho e um índice de
// linha (base 1) usado pelas views para selecionar registros.
func RenderTabela[T any](w io.Writer, dados []T, colunas []Coluna[T]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "#")
	for _, c := range colunas {
		fmt.Fprintf(tw, "\t%s", c.Titulo)
	}
	fmt.Fprintln(tw)

	for i, linha := range dados {
		fmt.Fprintf(tw, "%d", i+1)
		for _, c := range colunas {
			fmt.Fprintf(tw, "\t%s", c.Valor(linha))
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}
