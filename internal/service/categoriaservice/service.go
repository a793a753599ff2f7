package categoriaservice

import (
	"context"
	"fmt"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Estado enumera os estados do editor de categorias.
type Estado int

const (
	Idle Estado = iota
	Editing
	Saving
	ConfirmingDelete
)

// Editor é a máquina de estados da tela de categorias. Mesmo contrato do
// editor de produtos: rascunho local de propriedade exclusiva do editor,
// validação antes de qualquer rede, remoção só após confirmação.
type Editor struct {
	repo   domain.CategoryRepository
	log    logger.Logger
	estado Estado
	draft  *domain.Category
	alvo   *domain.Category
}

// NewEditor cria o editor no estado Idle.
func NewEditor(repo domain.CategoryRepository, log logger.Logger) *Editor {
	return &Editor{repo: repo, log: log, estado: Idle}
}

func (e *Editor) Estado() Estado { return e.estado }

func (e *Editor) Draft() *domain.Category { return e.draft }

func (e *Editor) Alvo() *domain.Category { return e.alvo }

// Listar delega à camada de acesso.
func (e *Editor) Listar(ctx context.Context) ([]domain.Category, error) {
	return e.repo.Listar(ctx)
}

// Adicionar abre um rascunho vazio: Idle → Editing.
func (e *Editor) Adicionar() error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: Adicionar em estado %d", e.estado), nil)
	}
	e.draft = &domain.Category{}
	e.estado = Editing
	return nil
}

// Editar abre um rascunho com a cópia do registro: Idle → Editing.
func (e *Editor) Editar(c domain.Category) error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: Editar em estado %d", e.estado), nil)
	}
	copia := c
	e.draft = &copia
	e.estado = Editing
	return nil
}

// AlterarCampo aplica uma mudança reportada pelo formulário ao rascunho.
func (e *Editor) AlterarCampo(altera func(*domain.Category)) {
	if e.draft != nil {
		altera(e.draft)
	}
}

// Cancelar descarta rascunho e alvo e volta a Idle, sem rede.
func (e *Editor) Cancelar() {
	e.draft = nil
	e.alvo = nil
	e.estado = Idle
}

// Salvar valida o rascunho e emite a mutação. Falha de validação não gera
// rede; falha da mutação preserva o rascunho (volta a Editing); sucesso
// descarta o rascunho e volta a Idle.
func (e *Editor) Salvar(ctx context.Context) error {
	if e.estado != Editing || e.draft == nil {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: Salvar em estado %d", e.estado), nil)
	}

	if err := e.draft.Validate(); err != nil {
		return err
	}

	e.estado = Saving
	draft := *e.draft

	var err error
	if draft.ID == 0 {
		_, err = e.repo.Criar(ctx, draft)
	} else {
		err = e.repo.Atualizar(ctx, draft)
	}

	if err != nil {
		e.estado = Editing
		return err
	}

	e.draft = nil
	e.estado = Idle
	return nil
}

// PedirRemocao abre a confirmação destrutiva: Idle → ConfirmingDelete.
func (e *Editor) PedirRemocao(c domain.Category) error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: PedirRemocao em estado %d", e.estado), nil)
	}
	copia := c
	e.alvo = &copia
	e.estado = ConfirmingDelete
	return nil
}

// ConfirmarRemocao emite o DELETE e volta a Idle.
func (e *Editor) ConfirmarRemocao(ctx context.Context) error {
	if e.estado != ConfirmingDelete || e.alvo == nil {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: ConfirmarRemocao em estado %d", e.estado), nil)
	}

	id := e.alvo.ID
	e.alvo = nil
	e.estado = Idle

	return e.repo.Remover(ctx, id)
}

// CancelarRemocao desiste da remoção sem nenhuma chamada de rede.
func (e *Editor) CancelarRemocao() {
	e.alvo = nil
	e.estado = Idle
}
