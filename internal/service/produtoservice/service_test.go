package produtoservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/service/produtoservice"
)

// MockProductRepository simula a camada de acesso remoto de produtos.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Listar(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) BuscarPorID(ctx context.Context, id int) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) Criar(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) Atualizar(ctx context.Context, p domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Remover(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func novoEditor(repo domain.ProductRepository) *produtoservice.Editor {
	return produtoservice.NewEditor(repo, logger.NewLogger("error", "test"))
}

// preencher aplica os campos de um produto válido ao rascunho.
func preencher(e *produtoservice.Editor, p domain.Product) {
	e.AlterarCampo(func(d *domain.Product) { *d = p })
}

// TestSalvar_ValidacaoCurtoCircuita: as regras disparam em ordem fixa (nome,
// preço, categoria) e nenhuma delas gera chamada de rede.
func TestSalvar_ValidacaoCurtoCircuita(t *testing.T) {
	ctx := context.Background()

	casos := []struct {
		nome     string
		draft    domain.Product
		mensagem string
	}{
		{"sem nome", domain.Product{Price: 10, CategoryID: 1}, "O nome do produto é obrigatório."},
		{"preco zero", domain.Product{Name: "Café", CategoryID: 1}, "O preço do produto deve ser positivo."},
		{"preco negativo", domain.Product{Name: "Café", Price: -1, CategoryID: 1}, "O preço do produto deve ser positivo."},
		{"sem categoria", domain.Product{Name: "Café", Price: 10}, "Selecione uma categoria para o produto."},
		// Tudo inválido ao mesmo tempo: só a primeira regra fala.
		{"tudo invalido", domain.Product{}, "O nome do produto é obrigatório."},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			editor := novoEditor(mockRepo)

			assert.NoError(t, editor.Adicionar())
			preencher(editor, caso.draft)

			err := editor.Salvar(ctx)

			var val *apperror.ValidationError
			assert.ErrorAs(t, err, &val)
			assert.Equal(t, caso.mensagem, val.Msg)

			// O editor segue em Editing, com o rascunho intacto.
			assert.Equal(t, produtoservice.Editing, editor.Estado())
			assert.Equal(t, caso.draft, *editor.Draft())

			mockRepo.AssertNotCalled(t, "Criar")
			mockRepo.AssertNotCalled(t, "Atualizar")
		})
	}
}

// TestSalvar_CriaProdutoNovo: rascunho sem ID vira um POST de criação.
func TestSalvar_CriaProdutoNovo(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	novo := domain.Product{Name: "Café", Price: 9.9, CategoryID: 1}
	mockRepo.On("Criar", ctx, novo).Return(domain.Product{ID: 7, Name: "Café", Price: 9.9, CategoryID: 1}, nil)

	assert.NoError(t, editor.Adicionar())
	preencher(editor, novo)

	assert.NoError(t, editor.Salvar(ctx))

	assert.Equal(t, produtoservice.Idle, editor.Estado())
	assert.Nil(t, editor.Draft())
	mockRepo.AssertExpectations(t)
}

// TestSalvar_AtualizaProdutoExistente: rascunho com ID vira um PUT, e o ID
// nunca muda durante a edição.
func TestSalvar_AtualizaProdutoExistente(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	original := domain.Product{ID: 7, Name: "Café", Price: 9.9, CategoryID: 1}
	editado := domain.Product{ID: 7, Name: "Café forte", Price: 12.5, CategoryID: 1}
	mockRepo.On("Atualizar", ctx, editado).Return(nil)

	assert.NoError(t, editor.Editar(original))
	editor.AlterarCampo(func(p *domain.Product) {
		p.Name = "Café forte"
		p.Price = 12.5
	})

	assert.NoError(t, editor.Salvar(ctx))

	assert.Equal(t, produtoservice.Idle, editor.Estado())
	mockRepo.AssertExpectations(t)
}

// TestSalvar_FalhaDaMutacaoPreservaRascunho: a API recusou; o editor volta a
// Editing com o rascunho intacto para a view informar o usuário.
func TestSalvar_FalhaDaMutacaoPreservaRascunho(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	novo := domain.Product{Name: "Café", Price: 9.9, CategoryID: 1}
	mockRepo.On("Criar", ctx, novo).
		Return(domain.Product{}, apperror.NewAPIError(500, "SOMETHING_BROKE", ""))

	assert.NoError(t, editor.Adicionar())
	preencher(editor, novo)

	err := editor.Salvar(ctx)

	assert.Error(t, err)
	assert.Equal(t, produtoservice.Editing, editor.Estado())
	assert.Equal(t, novo, *editor.Draft())
}

// TestEditar_NaoTocaORegistroOriginal: o rascunho é uma cópia; mudanças não
// vazam para o registro passado.
func TestEditar_NaoTocaORegistroOriginal(t *testing.T) {
	editor := novoEditor(new(MockProductRepository))

	original := domain.Product{ID: 7, Name: "Café", Price: 9.9, CategoryID: 1}
	assert.NoError(t, editor.Editar(original))

	editor.AlterarCampo(func(p *domain.Product) { p.Name = "Outro" })

	assert.Equal(t, "Café", original.Name)
	assert.Equal(t, "Outro", editor.Draft().Name)
}

// TestCancelar_DescartaSemRede: cancelar limpa o rascunho e não gera rede.
func TestCancelar_DescartaSemRede(t *testing.T) {
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	assert.NoError(t, editor.Adicionar())
	preencher(editor, domain.Product{Name: "Café"})

	editor.Cancelar()

	assert.Equal(t, produtoservice.Idle, editor.Estado())
	assert.Nil(t, editor.Draft())
	mockRepo.AssertNotCalled(t, "Criar")
	mockRepo.AssertNotCalled(t, "Atualizar")
}

// TestRemocao_SoAposConfirmacao: o DELETE só sai depois do Confirmar.
func TestRemocao_SoAposConfirmacao(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	alvo := domain.Product{ID: 7, Name: "Café", Price: 9.9, CategoryID: 1}
	mockRepo.On("Remover", ctx, 7).Return(nil)

	assert.NoError(t, editor.PedirRemocao(alvo))
	assert.Equal(t, produtoservice.ConfirmingDelete, editor.Estado())

	// Entre o pedido e a confirmação, nada foi à rede.
	mockRepo.AssertNotCalled(t, "Remover")

	assert.NoError(t, editor.ConfirmarRemocao(ctx))
	assert.Equal(t, produtoservice.Idle, editor.Estado())
	mockRepo.AssertExpectations(t)
}

// TestRemocao_Cancelada: desistir da remoção não emite nenhum DELETE.
func TestRemocao_Cancelada(t *testing.T) {
	mockRepo := new(MockProductRepository)
	editor := novoEditor(mockRepo)

	assert.NoError(t, editor.PedirRemocao(domain.Product{ID: 7}))
	editor.CancelarRemocao()

	assert.Equal(t, produtoservice.Idle, editor.Estado())
	assert.Nil(t, editor.Alvo())
	mockRepo.AssertNotCalled(t, "Remover")
}

// TestTransicoesInvalidas: ações fora do estado esperado são recusadas.
func TestTransicoesInvalidas(t *testing.T) {
	ctx := context.Background()
	editor := novoEditor(new(MockProductRepository))

	// Salvar sem rascunho aberto.
	assert.Error(t, editor.Salvar(ctx))

	// Adicionar duas vezes seguidas.
	assert.NoError(t, editor.Adicionar())
	assert.Error(t, editor.Adicionar())
	assert.Error(t, editor.Editar(domain.Product{ID: 1}))

	// Confirmar remoção sem pedido pendente.
	editor.Cancelar()
	assert.Error(t, editor.ConfirmarRemocao(ctx))
}
