package services

import (
	"github.com/google/uuid"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/response_models"
	"herbverse/pkg/utils"
)

func toAccountResponse(a *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role.String(),
		CreatedAt: utils.FormatUnixRFC3339(a.CreatedAt),
		UpdatedAt: utils.FormatUnixRFC3339(a.UpdatedAt),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toPlantResponse(p *db_models.Plant) response_models.Plant {
	return response_models.Plant{
		ID:                 p.ID.String(),
		Name:               p.Name,
		BotanicalName:      p.BotanicalName,
		CommonNames:        nonNil(p.CommonNames),
		Family:             p.Family,
		Habitat:            p.Habitat,
		Region:             nonNil(p.Region),
		MedicinalUses:      nonNil(p.MedicinalUses),
		PreparationMethods: nonNil(p.PreparationMethods),
		Dosage:             p.Dosage,
		Precautions:        p.Precautions,
		Cultivation: response_models.Cultivation{
			Soil:     p.Cultivation.Soil,
			Climate:  p.Cultivation.Climate,
			Watering: p.Cultivation.Watering,
		},
		ShortDescription: p.ShortDescription,
		Images:           nonNil(p.Images),
		ModelURL:         p.ModelURL,
		CreatedBy:        idString(p.CreatedBy),
		CreatedAt:        utils.FormatUnixRFC3339(p.CreatedAt),
		UpdatedAt:        utils.FormatUnixRFC3339(p.UpdatedAt),
	}
}

// toTourResponse resolves the tour's plant ids against plants, keeping tour
// order and skipping ids that no longer resolve.
func toTourResponse(t *db_models.VirtualTour, plants map[uuid.UUID]response_models.Plant) response_models.Tour {
	resolved := make([]response_models.Plant, 0, len(t.Stops))
	for _, id := range t.PlantIDs() {
		if p, ok := plants[id]; ok {
			resolved = append(resolved, p)
		}
	}
	return response_models.Tour{
		ID:        t.ID.String(),
		Title:     t.Title,
		Theme:     t.Theme,
		Plants:    resolved,
		Duration:  t.Duration,
		CreatedBy: idString(t.CreatedBy),
		CreatedAt: utils.FormatUnixRFC3339(t.CreatedAt),
		UpdatedAt: utils.FormatUnixRFC3339(t.UpdatedAt),
	}
}

// parseID treats a malformed id like an unknown one.
func parseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
