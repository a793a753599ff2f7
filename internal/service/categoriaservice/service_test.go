package categoriaservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lojaadmin/internal/domain"
	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/service/categoriaservice"
)

// MockCategoryRepository simula a camada de acesso remoto de categorias.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Listar(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) BuscarPorID(ctx context.Context, id int) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Criar(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Atualizar(ctx context.Context, c domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Remover(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func novoEditor(repo domain.CategoryRepository) *categoriaservice.Editor {
	return categoriaservice.NewEditor(repo, logger.NewLogger("error", "test"))
}

// TestSalvar_NomeObrigatorio: nome vazio é pego localmente, sem rede.
func TestSalvar_NomeObrigatorio(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	editor := novoEditor(mockRepo)

	assert.NoError(t, editor.Adicionar())
	editor.AlterarCampo(func(c *domain.Category) { c.Description = "sem nome" })

	err := editor.Salvar(ctx)

	var val *apperror.ValidationError
	assert.ErrorAs(t, err, &val)
	assert.Equal(t, "O nome da categoria é obrigatório.", val.Msg)
	assert.Equal(t, categoriaservice.Editing, editor.Estado())
	mockRepo.AssertNotCalled(t, "Criar")
}

// TestSalvar_CriaCategoria: rascunho válido sem ID vira criação.
func TestSalvar_CriaCategoria(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	editor := novoEditor(mockRepo)

	nova := domain.Category{Name: "Bebidas", Description: "Cafés e sucos"}
	mockRepo.On("Criar", ctx, nova).Return(domain.Category{ID: 3, Name: "Bebidas", Description: "Cafés e sucos"}, nil)

	assert.NoError(t, editor.Adicionar())
	editor.AlterarCampo(func(c *domain.Category) {
		c.Name = "Bebidas"
		c.Description = "Cafés e sucos"
	})

	assert.NoError(t, editor.Salvar(ctx))

	assert.Equal(t, categoriaservice.Idle, editor.Estado())
	assert.Nil(t, editor.Draft())
	mockRepo.AssertExpectations(t)
}

// TestSalvar_AtualizaCategoria: rascunho com ID vira atualização.
func TestSalvar_AtualizaCategoria(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	editor := novoEditor(mockRepo)

	editada := domain.Category{ID: 3, Name: "Bebidas quentes"}
	mockRepo.On("Atualizar", ctx, editada).Return(nil)

	assert.NoError(t, editor.Editar(domain.Category{ID: 3, Name: "Bebidas"}))
	editor.AlterarCampo(func(c *domain.Category) { c.Name = "Bebidas quentes" })

	assert.NoError(t, editor.Salvar(ctx))
	mockRepo.AssertExpectations(t)
}

// TestRemocao_Confirmada e cancelada: o DELETE só sai após confirmação.
func TestRemocao(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	editor := novoEditor(mockRepo)

	mockRepo.On("Remover", ctx, 3).Return(nil)

	assert.NoError(t, editor.PedirRemocao(domain.Category{ID: 3, Name: "Bebidas"}))
	assert.NoError(t, editor.ConfirmarRemocao(ctx))
	mockRepo.AssertExpectations(t)

	// Cancelar não gera rede.
	assert.NoError(t, editor.PedirRemocao(domain.Category{ID: 4}))
	editor.CancelarRemocao()
	mockRepo.AssertNumberOfCalls(t, "Remover", 1)
}
