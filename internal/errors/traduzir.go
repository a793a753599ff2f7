package errors

import "errors"

// MensagemGenerica é o fallback para qualquer erro sem tradução conhecida.
const MensagemGenerica = "Erro desconhecido. Tente novamente mais tarde."

// MensagemAutenticacao é o fallback específico do fluxo de login.
const MensagemAutenticacao = "Erro ao autenticar. Tente novamente mais tarde."

// mensagens mapeia códigos de erro conhecidos do servidor para texto PT-BR.
// Códigos fora desta tabela caem na MensagemGenerica.
var mensagens = map[string]string{
	"INVALID_CREDENTIALS": "Login ou senha inválidos.",
	"USER_NOT_FOUND":      "Usuário não encontrado.",
	"USER_ALREADY_EXISTS": "Este login já está em uso.",
	"UNAUTHORIZED":        "Sessão inválida ou expirada. Faça login novamente.",
	"VALIDATION_ERROR":    "Dados inválidos. Verifique os campos e tente de novo.",
}

// Traduzir converte qualquer erro em uma mensagem apresentável ao usuário.
// Erros locais (validação, not found, não autorizado) já carregam texto em
// PT-BR; erros da API passam pela tabela fixa de códigos.
func Traduzir(err error) string {
	var val *ValidationError
	if errors.As(err, &val) {
		return val.Msg
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Msg
	}

	var un *UnauthorizedError
	if errors.As(err, &un) {
		return un.Msg
	}

	var api *APIError
	if errors.As(err, &api) {
		if msg, ok := mensagens[api.Code]; ok {
			return msg
		}
		return MensagemGenerica
	}

	return MensagemGenerica
}
