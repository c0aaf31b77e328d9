package memory

import (
	"context"

	"github.com/google/uuid"
	"herbverse/internal/models/db_models"
	"herbverse/internal/repositories"
)

type tourRepository struct {
	s *Store
}

func NewTourRepository(s *Store) repositories.TourRepository {
	return &tourRepository{s: s}
}

func renumber(tour *db_models.VirtualTour) {
	for i := range tour.Stops {
		tour.Stops[i].TourID = tour.ID
		tour.Stops[i].Position = i
	}
}

func (r *tourRepository) CreateTour(ctx context.Context, tour *db_models.VirtualTour) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tour.PrepareCreate()
	if tour.Duration == 0 {
		tour.Duration = db_models.DefaultTourDuration
	}
	renumber(tour)
	r.s.tours[tour.ID] = copyTour(*tour)
	r.s.inserted[tour.ID] = r.s.nextSeq()
	return nil
}

func (r *tourRepository) UpdateTour(ctx context.Context, tour *db_models.VirtualTour) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tours[tour.ID]; !ok {
		tour.PrepareCreate()
		r.s.inserted[tour.ID] = r.s.nextSeq()
	} else {
		tour.PrepareUpdate()
	}
	renumber(tour)
	r.s.tours[tour.ID] = copyTour(*tour)
	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.tours, id)
	delete(r.s.inserted, id)
	return nil
}

func (r *tourRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.VirtualTour, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tour, ok := r.s.tours[id]
	if !ok {
		return nil, nil
	}
	found := copyTour(tour)
	return &found, nil
}

func (r *tourRepository) List(ctx context.Context, theme string) ([]db_models.VirtualTour, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.s.tours))
	for id, tour := range r.s.tours {
		if theme != "" && tour.Theme != theme {
			continue
		}
		ids = append(ids, id)
	}
	r.s.sortByInsertion(ids)

	tours := make([]db_models.VirtualTour, 0, len(ids))
	for _, id := range ids {
		tours = append(tours, copyTour(r.s.tours[id]))
	}
	return tours, nil
}

func (r *tourRepository) RemovePlant(ctx context.Context, plantID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, tour := range r.s.tours {
		kept := make([]db_models.TourStop, 0, len(tour.Stops))
		for _, stop := range tour.Stops {
			if stop.PlantID != plantID {
				kept = append(kept, stop)
			}
		}
		if len(kept) == len(tour.Stops) {
			continue
		}
		tour.Stops = kept
		renumber(&tour)
		r.s.tours[id] = tour
	}
	return nil
}

func (r *tourRepository) ClearCreator(ctx context.Context, creatorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, tour := range r.s.tours {
		if tour.CreatedBy != nil && *tour.CreatedBy == creatorID {
			tour.CreatedBy = nil
			r.s.tours[id] = tour
		}
	}
	return nil
}
