package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"herbverse/internal/models/db_models"
	"herbverse/internal/models/request_models"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/pkg/utils"
)

type TourServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateTourRequest, creatorID string) (*response_models.Tour, error)
	List(ctx context.Context, theme string) ([]response_models.Tour, error)
	Get(ctx context.Context, id string) (*response_models.Tour, error)
	Update(ctx context.Context, id string, request request_models.UpdateTourRequest) (*response_models.Tour, error)
	Delete(ctx context.Context, id string) error
}

type TourService struct {
	tourRepo  repositories.TourRepository
	plantRepo repositories.PlantRepository
	logger    *zap.SugaredLogger
}

func NewTourService(tourRepo repositories.TourRepository, plantRepo repositories.PlantRepository, logger *zap.SugaredLogger) TourServiceInterface {
	return &TourService{
		tourRepo:  tourRepo,
		plantRepo: plantRepo,
		logger:    logger,
	}
}

func parsePlantIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: plantIds must not be empty", utils.ErrValidation)
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid plant id %q", utils.ErrValidation, r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func validDuration(d int) error {
	if d <= 0 {
		return fmt.Errorf("%w: duration must be positive", utils.ErrValidation)
	}
	return nil
}

func (t *TourService) Create(ctx context.Context, request request_models.CreateTourRequest, creatorID string) (*response_models.Tour, error) {
	if strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Theme) == "" {
		return nil, fmt.Errorf("%w: title and theme are required", utils.ErrValidation)
	}
	plantIDs, err := parsePlantIDs(request.PlantIDs)
	if err != nil {
		return nil, err
	}
	duration := db_models.DefaultTourDuration
	if request.Duration != nil {
		if err := validDuration(*request.Duration); err != nil {
			return nil, err
		}
		duration = *request.Duration
	}

	tour := &db_models.VirtualTour{
		Title:     request.Title,
		Theme:     request.Theme,
		Duration:  duration,
		CreatedBy: creatorRef(creatorID),
	}
	tour.SetPlantIDs(plantIDs)

	if err := t.tourRepo.CreateTour(ctx, tour); err != nil {
		t.logger.Errorw("create tour", "error", err)
		return nil, utils.ErrDatabaseError
	}

	t.logger.Infow("tour created", "tour_id", tour.ID, "stops", len(plantIDs))
	return t.populateOne(ctx, tour)
}

func (t *TourService) List(ctx context.Context, theme string) ([]response_models.Tour, error) {
	tours, err := t.tourRepo.List(ctx, theme)
	if err != nil {
		t.logger.Errorw("list tours", "theme", theme, "error", err)
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0)
	for i := range tours {
		ids = append(ids, tours[i].PlantIDs()...)
	}
	plants, err := resolvePlants(ctx, t.plantRepo, ids, t.logger)
	if err != nil {
		return nil, err
	}

	resp := make([]response_models.Tour, 0, len(tours))
	for i := range tours {
		resp = append(resp, toTourResponse(&tours[i], plants))
	}
	return resp, nil
}

func (t *TourService) find(ctx context.Context, id string) (*db_models.VirtualTour, error) {
	tourID, err := parseID(id, utils.ErrTourNotFound)
	if err != nil {
		return nil, err
	}

	tour, err := t.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		t.logger.Errorw("get tour", "tour_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	return tour, nil
}

func (t *TourService) populateOne(ctx context.Context, tour *db_models.VirtualTour) (*response_models.Tour, error) {
	plants, err := resolvePlants(ctx, t.plantRepo, tour.PlantIDs(), t.logger)
	if err != nil {
		return nil, err
	}
	resp := toTourResponse(tour, plants)
	return &resp, nil
}

func (t *TourService) Get(ctx context.Context, id string) (*response_models.Tour, error) {
	tour, err := t.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.populateOne(ctx, tour)
}

func (t *TourService) Update(ctx context.Context, id string, request request_models.UpdateTourRequest) (*response_models.Tour, error) {
	tour, err := t.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		if strings.TrimSpace(*request.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", utils.ErrValidation)
		}
		tour.Title = *request.Title
	}
	if request.Theme != nil {
		if strings.TrimSpace(*request.Theme) == "" {
			return nil, fmt.Errorf("%w: theme cannot be empty", utils.ErrValidation)
		}
		tour.Theme = *request.Theme
	}
	if request.Duration != nil {
		if err := validDuration(*request.Duration); err != nil {
			return nil, err
		}
		tour.Duration = *request.Duration
	}
	if request.PlantIDs != nil {
		plantIDs, err := parsePlantIDs(*request.PlantIDs)
		if err != nil {
			return nil, err
		}
		tour.SetPlantIDs(plantIDs)
	}

	if err := t.tourRepo.UpdateTour(ctx, tour); err != nil {
		t.logger.Errorw("update tour", "tour_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return t.populateOne(ctx, tour)
}

func (t *TourService) Delete(ctx context.Context, id string) error {
	tour, err := t.find(ctx, id)
	if err != nil {
		return err
	}

	if err := t.tourRepo.Delete(ctx, tour.ID); err != nil {
		t.logger.Errorw("delete tour", "tour_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	t.logger.Infow("tour deleted", "tour_id", id)
	return nil
}
