package cli

import (
	"context"
	"fmt"

	"lojaadmin/internal/pkg/logger"
)

// Guard define a decisão de autenticação que o roteador precisa. A guarda
// real é o serviço de sessão; testes usam um fake.
type Guard interface {
	IsAuthenticated(ctx context.Context) bool
}

// View renderiza uma rota e devolve a próxima rota a navegar.
// Rota vazia encerra o shell.
type View func(ctx context.Context) (string, error)

// Router mapeia rotas para views e intercepta a navegação para rotas
// protegidas: a guarda é consultada a CADA render (nunca cacheada), então
// uma credencial expirada é pega imediatamente e a navegação é redirecionada
// para /login em vez de renderizar a view pedida.
type Router struct {
	guard     Guard
	log       logger.Logger
	rotas     map[string]View
	protegida map[string]bool
}

// NewRouter cria o roteador com a guarda injetada.
func NewRouter(guard Guard, log logger.Logger) *Router {
	return &Router{
		guard:     guard,
		log:       log,
		rotas:     make(map[string]View),
		protegida: make(map[string]bool),
	}
}

// Handle registra uma view em uma rota.
func (r *Router) Handle(rota string, protegida bool, v View) {
	r.rotas[rota] = v
	r.protegida[rota] = protegida
}

// Navegar resolve e renderiza uma rota, aplicando a guarda.
func (r *Router) Navegar(ctx context.Context, rota string) (string, error) {
	if rota == "/" {
		rota = "/login"
	}

	if r.protegida[rota] && !r.guard.IsAuthenticated(ctx) {
		r.log.Info("navegação bloqueada pela guarda de sessão", map[string]interface{}{"rota": rota})
		rota = "/login"
	}

	v, ok := r.rotas[rota]
	if !ok {
		return "", fmt.Errorf("rota desconhecida: %s", rota)
	}

	return v(ctx)
}

// Run navega em loop a partir da rota inicial até uma view devolver rota
// vazia ou o contexto ser cancelado.
func (r *Router) Run(ctx context.Context, inicial string) error {
	rota := inicial
	for rota != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		proxima, err := r.Navegar(ctx, rota)
		if err != nil {
			return err
		}
		rota = proxima
	}
	return nil
}
