package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/pkg/utils"
)

type UserAdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.AccountResponse, error)
	UpdateRole(ctx context.Context, id string, request request_models.UpdateRoleRequest) (*response_models.AccountResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserAdminService struct {
	accountRepo repositories.AccountRepository
	plantRepo   repositories.PlantRepository
	tourRepo    repositories.TourRepository
	logger      *zap.SugaredLogger
}

func NewUserAdminService(accountRepo repositories.AccountRepository, plantRepo repositories.PlantRepository, tourRepo repositories.TourRepository, logger *zap.SugaredLogger) UserAdminServiceInterface {
	return &UserAdminService{
		accountRepo: accountRepo,
		plantRepo:   plantRepo,
		tourRepo:    tourRepo,
		logger:      logger,
	}
}

func (u *UserAdminService) ListUsers(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := u.accountRepo.List(ctx)
	if err != nil {
		u.logger.Errorw("list accounts", "error", err)
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toAccountResponse(&accounts[i]))
	}
	return resp, nil
}

func (u *UserAdminService) find(ctx context.Context, id string) (*db_models.Account, error) {
	accountID, err := parseID(id, utils.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	account, err := u.accountRepo.FindById(ctx, accountID)
	if err != nil {
		u.logger.Errorw("find account by id", "account_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}
	return account, nil
}

// UpdateRole changes only the role. The stored password hash is kept as is
// because no plaintext is pending on the loaded account.
func (u *UserAdminService) UpdateRole(ctx context.Context, id string, request request_models.UpdateRoleRequest) (*response_models.AccountResponse, error) {
	role, err := db_models.ParseRole(request.Role)
	if err != nil || request.Role == "" {
		return nil, fmt.Errorf("%w: role must be one of user, admin", utils.ErrValidation)
	}

	account, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Role = role
	if err := u.accountRepo.Save(ctx, account); err != nil {
		u.logger.Errorw("save account", "account_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}

	u.logger.Infow("account role updated", "account_id", id, "role", role)
	resp := toAccountResponse(account)
	return &resp, nil
}

func (u *UserAdminService) DeleteUser(ctx context.Context, id string) error {
	account, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if err := u.plantRepo.ClearCreator(ctx, account.ID); err != nil {
		u.logger.Errorw("clear plant creator", "account_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if err := u.tourRepo.ClearCreator(ctx, account.ID); err != nil {
		u.logger.Errorw("clear tour creator", "account_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if err := u.accountRepo.Delete(ctx, account.ID); err != nil {
		u.logger.Errorw("delete account", "account_id", id, "error", err)
		return utils.ErrDatabaseError
	}

	u.logger.Infow("account deleted", "account_id", id)
	return nil
}
