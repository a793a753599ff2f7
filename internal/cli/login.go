package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/service/authservice"
)

// LoginView é a tela de entrada. Em sucesso navega para /produtos; o usuário
// também pode pular para o registro.
type LoginView struct {
	auth *authservice.Service
	in   *bufio.Reader
	out  io.Writer
}

// NewLoginView cria a view de login.
func NewLoginView(auth *authservice.Service, in *bufio.Reader, out io.Writer) *LoginView {
	return &LoginView{auth: auth, in: in, out: out}
}

// Render pede as credenciais e tenta autenticar.
func (v *LoginView) Render(ctx context.Context) (string, error) {
	fmt.Fprintln(v.out, "\n== Entrar ==")
	fmt.Fprintln(v.out, "(digite 'r' no login para registrar-se, ou 'q' para sair)")

	fmt.Fprint(v.out, "Login: ")
	login, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}

	switch login {
	case "q":
		return "", nil
	case "r":
		return "/register", nil
	}

	fmt.Fprint(v.out, "Senha: ")
	senha, err := LerLinha(v.in)
	if err != nil {
		return "", err
	}

	usuario, err := v.auth.Login(ctx, domain.UsuarioRequest{Login: login, Senha: senha})
	if err != nil {
		msg := apperror.Traduzir(err)
		if msg == apperror.MensagemGenerica {
			msg = apperror.MensagemAutenticacao
		}
		fmt.Fprintf(v.out, "⚠ %s\n", msg)
		return "/login", nil
	}

	fmt.Fprintf(v.out, "Bem-vindo, %s!\n", usuario.Login)
	return "/produtos", nil
}
