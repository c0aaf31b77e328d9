package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"herbverse/internal/infra"
	"herbverse/internal/models/db_models"
)

type TourRepository interface {
	CreateTour(ctx context.Context, tour *db_models.VirtualTour) error
	// UpdateTour saves the tour row and replaces its stops with tour.Stops.
	UpdateTour(ctx context.Context, tour *db_models.VirtualTour) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.VirtualTour, error)
	List(ctx context.Context, theme string) ([]db_models.VirtualTour, error)

	// RemovePlant drops plantID from every tour and renumbers the remaining stops.
	RemovePlant(ctx context.Context, plantID uuid.UUID) error
	ClearCreator(ctx context.Context, creatorID uuid.UUID) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func (r *tourRepository) CreateTour(ctx context.Context, tour *db_models.VirtualTour) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(tour).Error, "create tour")
}

func (r *tourRepository) UpdateTour(ctx context.Context, tour *db_models.VirtualTour) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}
	defer func() { infra.ReleaseTransaction(tx, err) }()

	if err = tx.Omit(clause.Associations).Save(tour).Error; err != nil {
		return errors.Wrap(err, "save tour")
	}
	if err = replaceStops(tx, tour); err != nil {
		return err
	}
	return nil
}

func replaceStops(tx *gorm.DB, tour *db_models.VirtualTour) error {
	if err := tx.Where("tour_id = ?", tour.ID).Delete(&db_models.TourStop{}).Error; err != nil {
		return errors.Wrap(err, "delete stops")
	}
	if len(tour.Stops) == 0 {
		return nil
	}
	for i := range tour.Stops {
		tour.Stops[i].TourID = tour.ID
		tour.Stops[i].Position = i
	}
	return errors.Wrap(tx.Create(&tour.Stops).Error, "insert stops")
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Delete(&db_models.TourStop{}).Error; err != nil {
			return errors.Wrap(err, "delete stops")
		}
		if err := tx.Delete(&db_models.VirtualTour{}, "id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete tour")
		}
		return nil
	})
}

func (r *tourRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.VirtualTour, error) {
	var tour db_models.VirtualTour
	err := r.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		First(&tour, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get tour")
	}
	return &tour, nil
}

func (r *tourRepository) List(ctx context.Context, theme string) ([]db_models.VirtualTour, error) {
	tours := make([]db_models.VirtualTour, 0)

	q := r.db.WithContext(ctx).Preload("Stops", orderedStops).Order("created_at")
	if theme != "" {
		q = q.Where("theme = ?", theme)
	}
	if err := q.Find(&tours).Error; err != nil {
		return nil, errors.Wrap(err, "list tours")
	}
	return tours, nil
}

func (r *tourRepository) RemovePlant(ctx context.Context, plantID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tourIDs []uuid.UUID
		err := tx.Model(&db_models.TourStop{}).
			Distinct("tour_id").
			Where("plant_id = ?", plantID).
			Pluck("tour_id", &tourIDs).Error
		if err != nil {
			return errors.Wrap(err, "find tours with plant")
		}

		for _, tourID := range tourIDs {
			var stops []db_models.TourStop
			if err := orderedStops(tx).Where("tour_id = ?", tourID).Find(&stops).Error; err != nil {
				return errors.Wrap(err, "load stops")
			}
			kept := make([]db_models.TourStop, 0, len(stops))
			for _, s := range stops {
				if s.PlantID != plantID {
					kept = append(kept, s)
				}
			}
			if err := replaceStops(tx, &db_models.VirtualTour{BaseModel: db_models.BaseModel{ID: tourID}, Stops: kept}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *tourRepository) ClearCreator(ctx context.Context, creatorID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&db_models.VirtualTour{}).
		Where("created_by = ?", creatorID).
		Update("created_by", nil).Error
	return errors.Wrap(err, "clear tour creator")
}
