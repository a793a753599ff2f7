package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/service/authservice"
)

// RegisterView é a tela de registro de novo usuário.
type RegisterView struct {
	auth *authservice.Service
	in   *bufio.Reader
	out  io.Writer
}

// NewRegisterView cria a view de registro.
func NewRegisterView(auth *authservice.Service, in *bufio.Reader, out io.Writer) *RegisterView {
	return &RegisterView{auth: auth, in: in, out: out}
}

// Render pede login, senha e confirmação; a confirmação é checada localmente
// antes de qualquer chamada de rede. Em sucesso, volta para o login.
func (v *RegisterView) Render(ctx context.Context) (string, error) {
	fmt.Fprintln(v.out, "\n== Registrar ==")
	fmt.Fprintln(v.out, "(deixe o login vazio para voltar à tela de entrada)")

	fmt.Fprint(v.out, "Login: ")
	login, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}
	if login == "" {
		return "/login", nil
	}

	fmt.Fprint(v.out, "Senha: ")
	senha, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}

	fmt.Fprint(v.out, "Confirme a senha: ")
	confirmacao, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}

	if err := v.auth.Register(ctx, login, senha, confirmacao); err != nil {
		fmt.Fprintf(v.out, "⚠ %s\n", apperror.Traduzir(err))
		return "/register", nil
	}

	fmt.Fprintln(v.out, "Registro concluído! Faça login para continuar.")
	return "/login", nil
}
