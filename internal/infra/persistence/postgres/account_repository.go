package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByUsername retrieves a single account by its unique username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// ExistsByUsername reports whether an account with the username exists.
func (repo *accountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count accounts by username")
	}

	return count > 0, nil
}

// ExistsByEmailHash reports whether an account with the email hash exists.
func (repo *accountRepository) ExistsByEmailHash(ctx context.Context, emailHash string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("email_hash = ?", emailHash).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count accounts by email hash")
	}

	return count > 0, nil
}

// Create persists a new account and fills in its generated ID and creation timestamp.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("account uniqueness violated")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// Update persists changes to an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("account uniqueness violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	return nil
}

// ListAll returns every account ordered by ID.
func (repo *accountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Firstname:    data.Firstname,
		Lastname:     data.Lastname,
		Username:     data.Username,
		EmailHash:    data.EmailHash,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		LastLogin:    data.LastLogin,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Firstname:    data.Firstname,
		Lastname:     data.Lastname,
		Username:     data.Username,
		EmailHash:    data.EmailHash,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		LastLogin:    data.LastLogin,
	}
}
