// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	tokenType         = "Bearer"
	loginSuccessMsg   = "Login successful"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	emailHasher  service.EmailHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	EmailHasher  service.EmailHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		emailHasher:  params.EmailHasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete account registration process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting account signup", slog.String("username", input.Username))

	if err := validateSignupInput(input); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	emailHash, err := srv.emailHasher.HashForLookup(input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash email during signup")
	}

	var registered *entity.Account

	// Execute the uniqueness checks and the insert within a single database
	// transaction to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		usernameTaken, err := accountRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username uniqueness")
		}
		if usernameTaken {
			return domainerrors.ErrUsernameTaken
		}

		emailTaken, err := accountRepo.ExistsByEmailHash(ctx, emailHash)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if emailTaken {
			return domainerrors.ErrEmailTaken
		}

		role := strings.TrimSpace(input.Role)
		if role == "" {
			role = entity.DefaultRole
		}

		newAccount := &entity.Account{
			Firstname:    input.Firstname,
			Lastname:     input.Lastname,
			Username:     input.Username,
			EmailHash:    emailHash,
			PasswordHash: passwordHash,
			Role:         role,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.WithStack(err)
		}
		registered = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute signup transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Account registered successfully", slog.Int64("userID", registered.ID))

	return &usecase.SignupOutput{
		UserID:    registered.ID,
		Firstname: registered.Firstname,
		Lastname:  registered.Lastname,
		Username:  registered.Username,
		Email:     input.Email,
		Role:      registered.Role,
	}, nil
}

// Login orchestrates the account login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting account login", slog.String("username", input.Username))

	if err := validateLoginInput(input); err != nil {
		return nil, err
	}

	var loggedIn *entity.Account
	var token string

	// Login reads the account and stamps its last-login time, so both steps
	// run inside one transaction.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByUsername(ctx, input.Username)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountUnknown
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account by username")
		}

		if !srv.hasher.Check(input.Password, account.PasswordHash) {
			return domainerrors.ErrInvalidPassword
		}

		now := time.Now()
		account.LastLogin = &now
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to record login time")
		}

		token, err = srv.tokenService.Issue(account.Username, account.Role, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue token")
		}
		loggedIn = account

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Int64("userID", loggedIn.ID))

	return &usecase.LoginOutput{
		Token:    token,
		Type:     tokenType,
		UserID:   loggedIn.ID,
		Username: loggedIn.Username,
		Role:     loggedIn.Role,
		Message:  loginSuccessMsg,
	}, nil
}

// ListAccounts returns a summary view of every registered account.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*usecase.AccountSummary, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]*usecase.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, &usecase.AccountSummary{
			UserID:    account.ID,
			Firstname: account.Firstname,
			Lastname:  account.Lastname,
			Username:  account.Username,
			Role:      account.Role,
			CreatedAt: account.CreatedAt,
			LastLogin: account.LastLogin,
		})
	}

	return summaries, nil
}

// FindByUsername loads an account so callers can verify a token subject
// against the stored record.
func (srv *accountService) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountUnknown
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// validateSignupInput enforces the signup field rules and reports the first violation.
func validateSignupInput(input *usecase.SignupInput) error {
	if strings.TrimSpace(input.Firstname) == "" {
		return domainerrors.NewValidationError("Firstname is required")
	}
	if strings.TrimSpace(input.Lastname) == "" {
		return domainerrors.NewValidationError("Lastname is required")
	}
	if strings.TrimSpace(input.Username) == "" {
		return domainerrors.NewValidationError("username is required")
	}
	if len(input.Username) < minUsernameLength {
		return domainerrors.NewValidationError("username should be minimum 3 characters long")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domainerrors.NewValidationError("Email is required")
	}
	if !emailPattern.MatchString(input.Email) {
		return domainerrors.NewValidationError("Invalid Email")
	}
	if len(input.Password) < minPasswordLength {
		return domainerrors.NewValidationError("password should be atleast 6 characters long")
	}

	return nil
}

// validateLoginInput rejects credential lookups with missing fields so they
// surface as 400 rather than a misleading 401.
func validateLoginInput(input *usecase.LoginInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return domainerrors.NewValidationError("username is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return domainerrors.NewValidationError("password is required")
	}

	return nil
}
