package authservice

import (
	"context"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/pkg/session"
	"lojaadmin/internal/pkg/token"
)

// Service é a guarda de sessão: decide se a credencial armazenada ainda vale,
// executa login/registro contra a API remota e administra a sessão local.
type Service struct {
	repo  domain.UsuarioRepository
	store session.Store
	log   logger.Logger
}

// NewService cria uma nova instância do serviço, injetando o Repositório de
// usuário e o Store de sessão.
func NewService(repo domain.UsuarioRepository, store session.Store, log logger.Logger) *Service {
	return &Service{repo: repo, store: store, log: log}
}

// IsAuthenticated lê a credencial armazenada e responde se a sessão vale.
// Regras (fail-closed): sem credencial → false; credencial malformada →
// false; exp no passado ou exatamente agora → false. A checagem é síncrona e
// não é cacheada: uma credencial que expirar entre dois renders é pega no
// render seguinte.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	sess, ok, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("falha ao ler a sessão; tratando como não autenticado", map[string]interface{}{"erro": err.Error()})
		return false
	}
	if !ok || sess.Token == "" {
		return false
	}
	return !token.Expirado(sess.Token)
}

// Login autentica contra a API. Em sucesso, persiste token e usuário JUNTOS
// e devolve o usuário; em falha, nada é persistido.
func (s *Service) Login(ctx context.Context, req domain.UsuarioRequest) (domain.Usuario, error) {
	if req.Login == "" {
		return domain.Usuario{}, apperror.NewValidationError("Por favor, insira seu login!")
	}
	if req.Senha == "" {
		return domain.Usuario{}, apperror.NewValidationError("Por favor, insira sua senha!")
	}

	resp, err := s.repo.Autorizar(ctx, req)
	if err != nil {
		return domain.Usuario{}, err
	}

	if err := s.store.Save(ctx, session.Sessao{Token: resp.Auth, Usuario: resp.Usuario}); err != nil {
		return domain.Usuario{}, apperror.NewInternalError("Falha ao armazenar a sessão.", err)
	}

	s.log.Info("login efetuado", map[string]interface{}{"login": resp.Usuario.Login})
	return resp.Usuario, nil
}

// Logout limpa token e usuário armazenados. Não há chamada de rede e a
// operação é idempotente.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error("falha ao limpar a sessão", err)
		return
	}
	s.log.Info("logout efetuado", nil)
}

// Register valida localmente e registra um novo usuário na API. A validação
// curto-circuita: campos obrigatórios primeiro, depois a confirmação de senha.
func (s *Service) Register(ctx context.Context, login, senha, confirmacao string) error {
	if login == "" {
		return apperror.NewValidationError("Por favor, insira seu login!")
	}
	if senha == "" {
		return apperror.NewValidationError("Por favor, insira sua senha!")
	}
	if senha != confirmacao {
		return apperror.NewValidationError("As senhas não coincidem!")
	}

	if err := s.repo.Adicionar(ctx, domain.UsuarioRequest{Login: login, Senha: senha}); err != nil {
		return err
	}

	s.log.Info("registro efetuado", map[string]interface{}{"login": login})
	return nil
}

// CurrentUser devolve o usuário da sessão armazenada, se houver.
func (s *Service) CurrentUser(ctx context.Context) (domain.Usuario, bool) {
	sess, ok, err := s.store.Load(ctx)
	if err != nil || !ok {
		return domain.Usuario{}, false
	}
	return sess.Usuario, true
}
