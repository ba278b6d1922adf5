package impl

import (
	"context"
	"io"
	"log/slog"

	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"
)

// passthroughTxManager runs the transactional function directly against a
// fixed repository factory, so closure errors surface exactly as the real
// manager would surface them.
type passthroughTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// fixedFactory hands out the same repository mocks for every call.
type fixedFactory struct {
	accountRepo  *mockRepo.MockAccountRepository
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func (f *fixedFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *fixedFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

func (f *fixedFactory) CategoryRepo() repository.CategoryRepository {
	return f.categoryRepo
}

func newTestFactory() *fixedFactory {
	return &fixedFactory{
		accountRepo:  new(mockRepo.MockAccountRepository),
		productRepo:  new(mockRepo.MockProductRepository),
		categoryRepo: new(mockRepo.MockCategoryRepository),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
