package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Campo descreve uma entrada de texto do formulário.
type Campo struct {
	Nome   string
	Rotulo string
}

// Form conduz a edição campo a campo. O formulário NÃO é dono de estado
// nenhum: o valor corrente de cada campo vem de `atual` e toda mudança é
// reportada ao chamador via `aoMudar` (quem guarda o rascunho é o editor).
// Entrada vazia mantém o valor corrente. Controles extras (e.g., seletor de
// categoria) são responsabilidade do chamador, depois dos campos de texto.
func Form(in *bufio.Reader, out io.Writer, campos []Campo, atual func(nome string) string, aoMudar func(nome, valor string)) error {
	for _, campo := range campos {
		fmt.Fprintf(out, "%s [%s]: ", campo.Rotulo, atual(campo.Nome))

		linha, err := in.ReadString('\n')
		if err != nil {
			return fmt.Errorf("falha ao ler entrada do formulário: %w", err)
		}

		valor := strings.TrimSpace(linha)
		if valor != "" {
			aoMudar(campo.Nome, valor)
		}
	}
	return nil
}

// LerLinha lê uma linha da entrada e devolve o texto sem espaços nas pontas.
func LerLinha(in *bufio.Reader) (string, error) {
	linha, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(linha), nil
}
