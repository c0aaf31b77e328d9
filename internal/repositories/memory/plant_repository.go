package memory

import (
	"context"

	"github.com/google/uuid"
	"herbverse/internal/models/db_models"
	"herbverse/internal/repositories"
)

type plantRepository struct {
	s *Store
}

func NewPlantRepository(s *Store) repositories.PlantRepository {
	return &plantRepository{s: s}
}

func (r *plantRepository) CreatePlant(ctx context.Context, plant *db_models.Plant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	plant.PrepareCreate()
	r.s.plants[plant.ID] = copyPlant(*plant)
	r.s.inserted[plant.ID] = r.s.nextSeq()
	return nil
}

func (r *plantRepository) UpdatePlant(ctx context.Context, plant *db_models.Plant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.plants[plant.ID]; !ok {
		plant.PrepareCreate()
		r.s.inserted[plant.ID] = r.s.nextSeq()
	} else {
		plant.PrepareUpdate()
	}
	r.s.plants[plant.ID] = copyPlant(*plant)
	return nil
}

func (r *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.plants, id)
	delete(r.s.inserted, id)
	return nil
}

func (r *plantRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Plant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	plant, ok := r.s.plants[id]
	if !ok {
		return nil, nil
	}
	found := copyPlant(plant)
	return &found, nil
}

func (r *plantRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Plant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	plants := make([]db_models.Plant, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if plant, ok := r.s.plants[id]; ok {
			plants = append(plants, copyPlant(plant))
		}
	}
	return plants, nil
}

func (r *plantRepository) List(ctx context.Context, filter repositories.PlantFilter) ([]db_models.Plant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.s.plants))
	for id, plant := range r.s.plants {
		if filter.Family != "" && plant.Family != filter.Family {
			continue
		}
		ids = append(ids, id)
	}
	r.s.sortByInsertion(ids)

	plants := make([]db_models.Plant, 0, len(ids))
	for _, id := range ids {
		plants = append(plants, copyPlant(r.s.plants[id]))
	}
	return plants, nil
}

func (r *plantRepository) ClearCreator(ctx context.Context, creatorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, plant := range r.s.plants {
		if plant.CreatedBy != nil && *plant.CreatedBy == creatorID {
			plant.CreatedBy = nil
			r.s.plants[id] = plant
		}
	}
	return nil
}
