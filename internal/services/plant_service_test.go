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

func TestPlantRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := env.register(t, "Root", "root@example.com", "admin")
	model := "/uploads/models/1.glb"

	created, err := env.plants.Create(ctx, request_models.CreatePlantRequest{
		Name:               "Tulsi",
		BotanicalName:      "Ocimum tenuiflorum",
		CommonNames:        []string{"Holy basil"},
		Family:             "Lamiaceae",
		Region:             []string{"India", "Nepal"},
		MedicinalUses:      []string{"Cough"},
		PreparationMethods: []string{"Tea"},
		Cultivation:        &request_models.Cultivation{Soil: "Loamy", Watering: "Daily"},
		Images:             []string{"/uploads/images/1.png"},
		ModelURL:           &model,
	}, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, admin.ID, *created.CreatedBy)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := env.plants.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []string{"India", "Nepal"}, got.Region)
	assert.Equal(t, "Loamy", got.Cultivation.Soil)
	assert.Equal(t, model, *got.ModelURL)
	assert.Empty(t, got.Precautions)
}

func TestCreatePlantRequiresName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.plants.Create(context.Background(), request_models.CreatePlantRequest{Family: "Lamiaceae"}, "")
	assert.ErrorIs(t, err, utils.ErrValidation)

	plants, err := env.plants.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestListPlantsByFamily(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.createPlant(t, "Tulsi", "Lamiaceae")
	env.createPlant(t, "Neem", "Meliaceae")
	env.createPlant(t, "Mint", "Lamiaceae")

	all, err := env.plants.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	lamiaceae, err := env.plants.List(ctx, "Lamiaceae")
	require.NoError(t, err)
	require.Len(t, lamiaceae, 2)
	assert.Equal(t, "Tulsi", lamiaceae[0].Name)
	assert.Equal(t, "Mint", lamiaceae[1].Name)

	none, err := env.plants.List(ctx, "Rosaceae")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdatePlantMerges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	created, err := env.plants.Create(ctx, request_models.CreatePlantRequest{
		Name:        "Tulsi",
		Family:      "Lamiaceae",
		Dosage:      "2 leaves",
		Cultivation: &request_models.Cultivation{Soil: "Loamy", Climate: "Tropical"},
	}, "")
	require.NoError(t, err)

	dosage := "5 leaves"
	climate := "Subtropical"
	regions := []string{"India"}
	updated, err := env.plants.Update(ctx, created.ID, request_models.UpdatePlantRequest{
		Dosage:      &dosage,
		Region:      &regions,
		Cultivation: &request_models.UpdateCultivation{Climate: &climate},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tulsi", updated.Name)
	assert.Equal(t, "Lamiaceae", updated.Family)
	assert.Equal(t, "5 leaves", updated.Dosage)
	assert.Equal(t, []string{"India"}, updated.Region)
	assert.Equal(t, "Loamy", updated.Cultivation.Soil)
	assert.Equal(t, "Subtropical", updated.Cultivation.Climate)

	empty := ""
	_, err = env.plants.Update(ctx, created.ID, request_models.UpdatePlantRequest{Name: &empty})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.plants.Update(ctx, uuid.NewString(), request_models.UpdatePlantRequest{Dosage: &dosage})
	assert.ErrorIs(t, err, utils.ErrPlantNotFound)
}

func TestPlantNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		_, err := env.plants.Get(ctx, id)
		assert.ErrorIs(t, err, utils.ErrPlantNotFound)
		assert.ErrorIs(t, env.plants.Delete(ctx, id), utils.ErrPlantNotFound)
	}
}

func TestDeletePlantCleansReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.register(t, "Alice", "alice@example.com", "")
	tulsi := env.createPlant(t, "Tulsi", "Lamiaceae")
	neem := env.createPlant(t, "Neem", "Meliaceae")

	_, err := env.personalization.SetBookmark(ctx, user.ID, tulsi.ID, true)
	require.NoError(t, err)
	_, err = env.personalization.SetBookmark(ctx, user.ID, neem.ID, true)
	require.NoError(t, err)
	note := "calming"
	_, err = env.personalization.SaveNote(ctx, user.ID, tulsi.ID, &note)
	require.NoError(t, err)
	tour, err := env.tours.Create(ctx, request_models.CreateTourRequest{
		Title: "Garden", Theme: "garden", PlantIDs: []string{tulsi.ID, neem.ID},
	}, "")
	require.NoError(t, err)

	require.NoError(t, env.plants.Delete(ctx, tulsi.ID))

	_, err = env.plants.Get(ctx, tulsi.ID)
	assert.ErrorIs(t, err, utils.ErrPlantNotFound)

	data, err := env.personalization.GetPersonalization(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, data.Bookmarks, 1)
	assert.Equal(t, neem.ID, data.Bookmarks[0].ID)
	assert.Empty(t, data.Notes)

	stored, err := env.tourRepo.GetByID(ctx, uuid.MustParse(tour.ID))
	require.NoError(t, err)
	require.Len(t, stored.Stops, 1)
	assert.Equal(t, neem.ID, stored.Stops[0].PlantID.String())
}
