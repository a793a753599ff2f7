package produtoservice

import (
	"context"
	"fmt"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Estado enumera os estados do editor de produtos.
type Estado int

const (
	// Idle: nenhum registro sendo editado nem remoção pendente.
	Idle Estado = iota
	// Editing: existe um rascunho local em edição (novo ou cópia de registro).
	Editing
	// Saving: o rascunho passou na validação e a mutação está em andamento.
	Saving
	// ConfirmingDelete: aguardando confirmação explícita de remoção.
	ConfirmingDelete
)

// Editor é a máquina de estados da tela de produtos. Ele é dono exclusivo do
// rascunho (a cópia local do registro em edição); o cache de queries pertence
// à camada de acesso, nunca a este editor.
type Editor struct {
	repo   domain.ProductRepository
	log    logger.Logger
	estado Estado
	draft  *domain.Product // rascunho em edição; descartado ao cancelar ou salvar
	alvo   *domain.Product // registro aguardando confirmação de remoção
}

// NewEditor cria o editor no estado Idle.
func NewEditor(repo domain.ProductRepository, log logger.Logger) *Editor {
	return &Editor{repo: repo, log: log, estado: Idle}
}

// Estado expõe o estado corrente, para a view decidir o que renderizar.
func (e *Editor) Estado() Estado { return e.estado }

// Draft devolve o rascunho em edição (nil fora de Editing/Saving).
func (e *Editor) Draft() *domain.Product { return e.draft }

// Alvo devolve o registro aguardando confirmação de remoção.
func (e *Editor) Alvo() *domain.Product { return e.alvo }

// Listar delega à camada de acesso (que responde do cache quando possível).
func (e *Editor) Listar(ctx context.Context) ([]domain.Product, error) {
	return e.repo.Listar(ctx)
}

// Adicionar abre um rascunho vazio: Idle → Editing.
func (e *Editor) Adicionar() error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: Adicionar em estado %d", e.estado), nil)
	}
	e.draft = &domain.Product{}
	e.estado = Editing
	return nil
}

// Editar abre um rascunho com a CÓPIA do registro: Idle → Editing.
// Alterações no rascunho não tocam o registro original até o salvamento.
func (e *Editor) Editar(p domain.Product) error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: Editar em estado %d", e.estado), nil)
	}
	copia := p
	e.draft = &copia
	e.estado = Editing
	return nil
}

// AlterarCampo aplica uma mudança reportada pelo formulário ao rascunho.
func (e *Editor) AlterarCampo(altera func(*domain.Product)) {
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

// Salvar valida o rascunho e, passando, emite a mutação (POST para registro
// novo, PUT para existente; o ID nunca muda).
//
// Falha de validação: NENHUMA chamada de rede é feita, o editor permanece em
// Editing e o rascunho fica intacto. Falha da mutação: o editor volta a
// Editing com o rascunho preservado, para que a view informe o usuário antes
// de qualquer descarte. Sucesso: rascunho descartado, editor em Idle.
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
func (e *Editor) PedirRemocao(p domain.Product) error {
	if e.estado != Idle {
		return apperror.NewInternalError(fmt.Sprintf("transição inválida: PedirRemocao em estado %d", e.estado), nil)
	}
	copia := p
	e.alvo = &copia
	e.estado = ConfirmingDelete
	return nil
}

// ConfirmarRemocao emite o DELETE. Só é alcançável após confirmação
// explícita; em qualquer desfecho o editor volta a Idle.
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
