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

func TestCreateTourPopulatesPlants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := env.register(t, "Root", "root@example.com", "admin")
	ginger := env.createPlant(t, "Ginger", "Zingiberaceae")
	mint := env.createPlant(t, "Mint", "Lamiaceae")

	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title:    "Digestive herbs",
		Theme:    "digestion",
		PlantIDs: []string{mint.ID, ginger.ID},
	}, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, tour.Duration)
	require.Len(t, tour.Plants, 2)
	assert.Equal(t, "Mint", tour.Plants[0].Name)
	assert.Equal(t, "Ginger", tour.Plants[1].Name)
	assert.Equal(t, "Lamiaceae", tour.Plants[0].Family)
	require.NotNil(t, tour.CreatedBy)
	assert.Equal(t, admin.ID, *tour.CreatedBy)

	got, err := env.tours.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, tour, got)
}

func TestCreateTourValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	plant := env.createPlant(t, "Mint", "Lamiaceae")
	zero := 0

	tests := []struct {
		name string
		req  request_models.CreateTourRequest
	}{
		{"missing title", request_models.CreateTourRequest{Theme: "x", PlantIDs: []string{plant.ID}}},
		{"missing theme", request_models.CreateTourRequest{Title: "x", PlantIDs: []string{plant.ID}}},
		{"no plants", request_models.CreateTourRequest{Title: "x", Theme: "x"}},
		{"malformed plant id", request_models.CreateTourRequest{Title: "x", Theme: "x", PlantIDs: []string{"nope"}}},
		{"zero duration", request_models.CreateTourRequest{Title: "x", Theme: "x", PlantIDs: []string{plant.ID}, Duration: &zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tours.Create(ctx, tt.req, "")
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}

	tours, err := env.tours.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, tours)
}

func TestListToursByTheme(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	mint := env.createPlant(t, "Mint", "Lamiaceae")
	eight := 8

	for _, req := range []request_models.CreateTourRequest{
		{Title: "A", Theme: "digestion", PlantIDs: []string{mint.ID}},
		{Title: "B", Theme: "sleep", PlantIDs: []string{mint.ID}, Duration: &eight},
		{Title: "C", Theme: "digestion", PlantIDs: []string{mint.ID, mint.ID}},
	} {
		_, err := env.tours.Create(ctx, req, "")
		require.NoError(t, err)
	}

	digestion, err := env.tours.List(ctx, "digestion")
	require.NoError(t, err)
	require.Len(t, digestion, 2)
	assert.Equal(t, "A", digestion[0].Title)
	assert.Equal(t, "C", digestion[1].Title)
	assert.Len(t, digestion[1].Plants, 2)

	sleep, err := env.tours.List(ctx, "sleep")
	require.NoError(t, err)
	require.Len(t, sleep, 1)
	assert.Equal(t, 8, sleep[0].Duration)
	assert.Equal(t, "Mint", sleep[0].Plants[0].Name)
}

func TestTourSkipsDanglingPlants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	mint := env.createPlant(t, "Mint", "Lamiaceae")

	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title: "A", Theme: "x", PlantIDs: []string{uuid.NewString(), mint.ID},
	}, "")
	require.NoError(t, err)
	require.Len(t, tour.Plants, 1)
	assert.Equal(t, mint.ID, tour.Plants[0].ID)
}

func TestUpdateTour(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	mint := env.createPlant(t, "Mint", "Lamiaceae")
	neem := env.createPlant(t, "Neem", "Meliaceae")
	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title: "A", Theme: "x", PlantIDs: []string{mint.ID},
	}, "")
	require.NoError(t, err)

	title := "Renamed"
	ids := []string{neem.ID, mint.ID}
	updated, err := env.tours.Update(ctx, tour.ID, request_models.UpdateTourRequest{Title: &title, PlantIDs: &ids})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "x", updated.Theme)
	assert.Equal(t, 5, updated.Duration)
	require.Len(t, updated.Plants, 2)
	assert.Equal(t, "Neem", updated.Plants[0].Name)

	empty := []string{}
	_, err = env.tours.Update(ctx, tour.ID, request_models.UpdateTourRequest{PlantIDs: &empty})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.tours.Update(ctx, "bad-id", request_models.UpdateTourRequest{Title: &title})
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
}

func TestDeleteTour(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	mint := env.createPlant(t, "Mint", "Lamiaceae")
	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title: "A", Theme: "x", PlantIDs: []string{mint.ID},
	}, "")
	require.NoError(t, err)

	require.NoError(t, env.tours.Delete(ctx, tour.ID))
	_, err = env.tours.Get(ctx, tour.ID)
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
	assert.ErrorIs(t, env.tours.Delete(ctx, tour.ID), utils.ErrTourNotFound)

	_, err = env.plants.Get(ctx, mint.ID)
	assert.NoError(t, err)
}
