package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"herbverse/internal/models/db_models"
)

// PlantFilter is an equality filter; empty fields match everything.
type PlantFilter struct {
	Family string
}

type PlantRepository interface {
	CreatePlant(ctx context.Context, plant *db_models.Plant) error
	UpdatePlant(ctx context.Context, plant *db_models.Plant) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plant, error)
	// GetByIDs returns the plants that exist, in no particular order.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Plant, error)
	List(ctx context.Context, filter PlantFilter) ([]db_models.Plant, error)

	ClearCreator(ctx context.Context, creatorID uuid.UUID) error
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) CreatePlant(ctx context.Context, plant *db_models.Plant) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(plant).Error, "create plant")
}

func (r *plantRepository) UpdatePlant(ctx context.Context, plant *db_models.Plant) error {
	result := r.db.WithContext(ctx).Save(plant)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plant")
	}
	return nil
}

func (r *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Plant{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "delete plant")
	}
	return nil
}

func (r *plantRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plant, error) {
	var plant db_models.Plant
	err := r.db.WithContext(ctx).First(&plant, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get plant")
	}
	return &plant, nil
}

func (r *plantRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Plant, error) {
	plants := make([]db_models.Plant, 0, len(ids))
	if len(ids) == 0 {
		return plants, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&plants).Error; err != nil {
		return nil, errors.Wrap(err, "get plants by ids")
	}
	return plants, nil
}

func (r *plantRepository) List(ctx context.Context, filter PlantFilter) ([]db_models.Plant, error) {
	plants := make([]db_models.Plant, 0)

	q := r.db.WithContext(ctx).Order("created_at")
	if filter.Family != "" {
		q = q.Where("family = ?", filter.Family)
	}
	if err := q.Find(&plants).Error; err != nil {
		return nil, errors.Wrap(err, "list plants")
	}
	return plants, nil
}

func (r *plantRepository) ClearCreator(ctx context.Context, creatorID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&db_models.Plant{}).
		Where("created_by = ?", creatorID).
		Update("created_by", nil).Error
	return errors.Wrap(err, "clear plant creator")
}
