package impl

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"
	"inventory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	factory      *fixedFactory
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(_ *testing.T) categoryServiceFixtures {
	factory := newTestFactory()
	categoryRepo := new(mockRepo.MockCategoryRepository)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    &passthroughTxManager{factory: factory},
		CategoryRepo: categoryRepo,
		Logger:       discardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		factory:      factory,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	input := &usecase.CategoryInput{Name: "Electronics", Description: "Gadgets and devices"}

	fx.factory.categoryRepo.On("ExistsByName", ctx, "Electronics").Return(false, nil)
	fx.factory.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			category := args.Get(1).(*entity.Category)
			category.ID = 3
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), category.ID)
	assert.Equal(t, "Electronics", category.Name)
	assert.Equal(t, "Gadgets and devices", category.Description)
}

func TestCategoryService_CreateCategory_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.factory.categoryRepo.On("ExistsByName", ctx, "Electronics").Return(true, nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Electronics"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "  "})

	require.Error(t, err)
	assert.Nil(t, category)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCategoryService_UpdateCategory_RenameRejected(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	existing := &entity.Category{ID: 3, Name: "Electronics"}

	fx.factory.categoryRepo.On("FindByID", ctx, int64(3)).Return(existing, nil)

	category, err := fx.service.UpdateCategory(ctx, 3, &usecase.CategoryInput{Name: "Books"})

	require.Error(t, err)
	assert.Nil(t, category)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "category name cannot be changed", appErr.Message())
	fx.factory.categoryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCategoryService_UpdateCategory_DescriptionOnly(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	existing := &entity.Category{ID: 3, Name: "Electronics", Description: "old"}

	fx.factory.categoryRepo.On("FindByID", ctx, int64(3)).Return(existing, nil)
	fx.factory.categoryRepo.On("Update", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := fx.service.UpdateCategory(ctx, 3, &usecase.CategoryInput{Name: "Electronics", Description: "new"})

	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)
	assert.Equal(t, "new", category.Description)
}

func TestCategoryService_CreateCategory_ShortName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "X"})

	require.Error(t, err)
	assert.Nil(t, category)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "category name should be minimum 2 characters long", appErr.Message())
}

func TestCategoryService_DeleteCategory_InUse(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.factory.categoryRepo.On("ExistsByID", ctx, int64(3)).Return(true, nil)
	fx.factory.categoryRepo.On("CountProducts", ctx, int64(3)).Return(int64(4), nil)

	err := fx.service.DeleteCategory(ctx, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
	fx.factory.categoryRepo.AssertNotCalled(t, "Delete", ctx, int64(3))
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.factory.categoryRepo.On("ExistsByID", ctx, int64(3)).Return(true, nil)
	fx.factory.categoryRepo.On("CountProducts", ctx, int64(3)).Return(int64(0), nil)
	fx.factory.categoryRepo.On("Delete", ctx, int64(3)).Return(nil)

	err := fx.service.DeleteCategory(ctx, 3)

	require.NoError(t, err)
	fx.factory.categoryRepo.AssertCalled(t, "Delete", ctx, int64(3))
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("FindByID", ctx, int64(9)).Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategory(ctx, 9)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
