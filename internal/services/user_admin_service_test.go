package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"herbverse/internal/models/request_models"
	"herbverse/pkg/utils"
)

func TestUpdateRoleKeepsPassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.register(t, "Alice", "alice@example.com", "")
	before, err := env.accountRepo.FindById(ctx, uuid.MustParse(user.ID))
	require.NoError(t, err)

	updated, err := env.users.UpdateRole(ctx, user.ID, request_models.UpdateRoleRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	after, err := env.accountRepo.FindById(ctx, uuid.MustParse(user.ID))
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	login, err := env.accounts.Login(ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "admin", login.Role)

	_, err = env.users.UpdateRole(ctx, user.ID, request_models.UpdateRoleRequest{Role: "owner"})
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = env.users.UpdateRole(ctx, uuid.NewString(), request_models.UpdateRoleRequest{Role: "user"})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestDeleteUserCleansReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := env.register(t, "Root", "root@example.com", "admin")
	plant, err := env.plants.Create(ctx, request_models.CreatePlantRequest{Name: "Tulsi"}, admin.ID)
	require.NoError(t, err)
	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title: "A", Theme: "x", PlantIDs: []string{plant.ID},
	}, admin.ID)
	require.NoError(t, err)
	_, err = env.personalization.SetBookmark(ctx, admin.ID, plant.ID, true)
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(ctx, admin.ID))

	users, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	gotPlant, err := env.plants.Get(ctx, plant.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPlant.CreatedBy)

	gotTour, err := env.tours.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.Nil(t, gotTour.CreatedBy)

	ids, err := env.accountRepo.ListBookmarkedPlantIDs(ctx, uuid.MustParse(admin.ID))
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, env.users.DeleteUser(ctx, admin.ID), utils.ErrUserNotFound)
}
