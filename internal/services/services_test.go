package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"herbverse/internal/config"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/internal/repositories/memory"
	"herbverse/pkg/utils"
)

type testEnv struct {
	accountRepo repositories.AccountRepository
	plantRepo   repositories.PlantRepository
	tourRepo    repositories.TourRepository
	tokens      *utils.TokenService

	accounts        AccountServiceInterface
	personalization PersonalizationServiceInterface
	plants          PlantServiceInterface
	tours           TourServiceInterface
	users           UserAdminServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		accountRepo: memory.NewAccountRepository(store),
		plantRepo:   memory.NewPlantRepository(store),
		tourRepo:    memory.NewTourRepository(store),
		tokens:      utils.NewTokenService("test-secret", time.Hour),
	}
	env.accounts = NewAccountService(env.accountRepo, env.tokens, logger)
	env.personalization = NewPersonalizationService(env.accountRepo, env.plantRepo, logger)
	env.plants = NewPlantService(env.plantRepo, env.accountRepo, env.tourRepo, logger)
	env.tours = NewTourService(env.tourRepo, env.plantRepo, logger)
	env.users = NewUserAdminService(env.accountRepo, env.plantRepo, env.tourRepo, logger)
	return env
}

func (e *testEnv) register(t *testing.T, name, email, role string) *response_models.AuthResponse {
	t.Helper()
	resp, err := e.accounts.Register(context.Background(), request_models.SignUpRequest{
		Name:     name,
		Email:    email,
		Password: "pw1",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) createPlant(t *testing.T, name, family string) *response_models.Plant {
	t.Helper()
	plant, err := e.plants.Create(context.Background(), request_models.CreatePlantRequest{Name: name, Family: family}, "")
	require.NoError(t, err)
	return plant
}

func newTestUploadService(t *testing.T, maxBytes int64) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewUploadService(&config.Config{UploadDir: dir, UploadMaxBytes: maxBytes}, zap.NewNop().Sugar())
	return svc.(*UploadService), dir
}
