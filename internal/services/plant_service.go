package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/pkg/utils"
)

type PlantServiceInterface interface {
	Create(ctx context.Context, request request_models.CreatePlantRequest, creatorID string) (*response_models.Plant, error)
	List(ctx context.Context, family string) ([]response_models.Plant, error)
	Get(ctx context.Context, id string) (*response_models.Plant, error)
	Update(ctx context.Context, id string, request request_models.UpdatePlantRequest) (*response_models.Plant, error)
	Delete(ctx context.Context, id string) error
}

type PlantService struct {
	plantRepo   repositories.PlantRepository
	accountRepo repositories.AccountRepository
	tourRepo    repositories.TourRepository
	logger      *zap.SugaredLogger
}

func NewPlantService(plantRepo repositories.PlantRepository, accountRepo repositories.AccountRepository, tourRepo repositories.TourRepository, logger *zap.SugaredLogger) PlantServiceInterface {
	return &PlantService{
		plantRepo:   plantRepo,
		accountRepo: accountRepo,
		tourRepo:    tourRepo,
		logger:      logger,
	}
}

// creatorRef returns nil for an anonymous or malformed creator id.
func creatorRef(creatorID string) *uuid.UUID {
	id, err := uuid.Parse(creatorID)
	if err != nil {
		return nil
	}
	return &id
}

func (p *PlantService) Create(ctx context.Context, request request_models.CreatePlantRequest, creatorID string) (*response_models.Plant, error) {
	if strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", utils.ErrValidation)
	}

	plant := &db_models.Plant{
		Name:               request.Name,
		BotanicalName:      request.BotanicalName,
		CommonNames:        pq.StringArray(nonNil(request.CommonNames)),
		Family:             request.Family,
		Habitat:            request.Habitat,
		Region:             pq.StringArray(nonNil(request.Region)),
		MedicinalUses:      pq.StringArray(nonNil(request.MedicinalUses)),
		PreparationMethods: pq.StringArray(nonNil(request.PreparationMethods)),
		Dosage:             request.Dosage,
		Precautions:        request.Precautions,
		ShortDescription:   request.ShortDescription,
		Images:             pq.StringArray(nonNil(request.Images)),
		ModelURL:           request.ModelURL,
		CreatedBy:          creatorRef(creatorID),
	}
	if request.Cultivation != nil {
		plant.Cultivation = db_models.Cultivation{
			Soil:     request.Cultivation.Soil,
			Climate:  request.Cultivation.Climate,
			Watering: request.Cultivation.Watering,
		}
	}

	if err := p.plantRepo.CreatePlant(ctx, plant); err != nil {
		p.logger.Errorw("create plant", "error", err)
		return nil, utils.ErrDatabaseError
	}

	p.logger.Infow("plant created", "plant_id", plant.ID, "created_by", creatorID)
	resp := toPlantResponse(plant)
	return &resp, nil
}

func (p *PlantService) List(ctx context.Context, family string) ([]response_models.Plant, error) {
	plants, err := p.plantRepo.List(ctx, repositories.PlantFilter{Family: family})
	if err != nil {
		p.logger.Errorw("list plants", "family", family, "error", err)
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.Plant, 0, len(plants))
	for i := range plants {
		resp = append(resp, toPlantResponse(&plants[i]))
	}
	return resp, nil
}

func (p *PlantService) find(ctx context.Context, id string) (*db_models.Plant, error) {
	plantID, err := parseID(id, utils.ErrPlantNotFound)
	if err != nil {
		return nil, err
	}

	plant, err := p.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		p.logger.Errorw("get plant", "plant_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if plant == nil {
		return nil, utils.ErrPlantNotFound
	}
	return plant, nil
}

func (p *PlantService) Get(ctx context.Context, id string) (*response_models.Plant, error) {
	plant, err := p.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPlantResponse(plant)
	return &resp, nil
}

func (p *PlantService) Update(ctx context.Context, id string, request request_models.UpdatePlantRequest) (*response_models.Plant, error) {
	plant, err := p.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", utils.ErrValidation)
		}
		plant.Name = *request.Name
	}
	mergeString(&plant.BotanicalName, request.BotanicalName)
	mergeString(&plant.Family, request.Family)
	mergeString(&plant.Habitat, request.Habitat)
	mergeString(&plant.Dosage, request.Dosage)
	mergeString(&plant.Precautions, request.Precautions)
	mergeString(&plant.ShortDescription, request.ShortDescription)
	mergeList(&plant.CommonNames, request.CommonNames)
	mergeList(&plant.Region, request.Region)
	mergeList(&plant.MedicinalUses, request.MedicinalUses)
	mergeList(&plant.PreparationMethods, request.PreparationMethods)
	mergeList(&plant.Images, request.Images)
	if request.Cultivation != nil {
		mergeString(&plant.Cultivation.Soil, request.Cultivation.Soil)
		mergeString(&plant.Cultivation.Climate, request.Cultivation.Climate)
		mergeString(&plant.Cultivation.Watering, request.Cultivation.Watering)
	}
	if request.ModelURL != nil {
		// An empty modelUrl clears the model.
		if *request.ModelURL == "" {
			plant.ModelURL = nil
		} else {
			url := *request.ModelURL
			plant.ModelURL = &url
		}
	}

	if err := p.plantRepo.UpdatePlant(ctx, plant); err != nil {
		p.logger.Errorw("update plant", "plant_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

func (p *PlantService) Delete(ctx context.Context, id string) error {
	plant, err := p.find(ctx, id)
	if err != nil {
		return err
	}

	if err := p.plantRepo.Delete(ctx, plant.ID); err != nil {
		p.logger.Errorw("delete plant", "plant_id", id, "error", err)
		return utils.ErrDatabaseError
	}

	// The plant is gone either way; failed cleanup leaves dangling ids that reads skip.
	if err := p.accountRepo.RemovePlantReferences(ctx, plant.ID); err != nil {
		p.logger.Warnw("remove plant from bookmarks and notes", "plant_id", id, "error", err)
	}
	if err := p.tourRepo.RemovePlant(ctx, plant.ID); err != nil {
		p.logger.Warnw("remove plant from tours", "plant_id", id, "error", err)
	}

	p.logger.Infow("plant deleted", "plant_id", id)
	return nil
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func mergeList(dst *pq.StringArray, src *[]string) {
	if src != nil {
		*dst = pq.StringArray(nonNil(*src))
	}
}
