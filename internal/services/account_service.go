package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Me(ctx context.Context, userID string) (*response_models.AccountResponse, error)
	AccountExists(ctx context.Context, userID string) (bool, error)
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenService
	logger      *zap.SugaredLogger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenService, logger *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	name := strings.TrimSpace(request.Name)
	email := normalizeEmail(request.Email)
	if name == "" || email == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", utils.ErrValidation)
	}

	role, err := db_models.ParseRole(request.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.logger.Errorw("find account by email", "error", err)
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	newAccount := &db_models.Account{
		Name:  name,
		Email: email,
		Role:  role,
	}
	newAccount.SetPassword(request.Password)

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.logger.Errorw("insert account", "error", err)
		return nil, utils.ErrDatabaseError
	}

	a.logger.Infow("account registered", "account_id", newAccount.ID, "role", newAccount.Role)
	return a.authResponse(newAccount)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.logger.Errorw("find account by email", "error", err)
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password look the same to the caller.
	if account == nil || !account.MatchPassword(request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	return a.authResponse(account)
}

func (a *AccountService) Me(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	id, err := parseID(userID, utils.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		a.logger.Errorw("find account by id", "error", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

// AccountExists reports whether userID still names a stored account. A
// malformed id names nothing.
func (a *AccountService) AccountExists(ctx context.Context, userID string) (bool, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		a.logger.Errorw("find account by id", "account_id", userID, "error", err)
		return false, utils.ErrDatabaseError
	}
	return account != nil, nil
}

// EnsureAdmin creates the bootstrap administrator unless the email is already taken.
func (a *AccountService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	_, err := a.Register(ctx, request_models.SignUpRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     db_models.RoleAdmin.String(),
	})
	if errors.Is(err, utils.ErrEmailAlreadyExists) {
		a.logger.Infow("admin account already present", "email", normalizeEmail(email))
		return nil
	}
	return err
}

func (a *AccountService) authResponse(account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID, account.Role.String())
	if err != nil {
		a.logger.Errorw("sign token", "error", err)
		return nil, errors.Wrap(err, "sign token")
	}

	return &response_models.AuthResponse{
		AccountResponse: toAccountResponse(account),
		Token:           token,
	}, nil
}
