package db_models

import "github.com/google/uuid"

const DefaultTourDuration = 5

type VirtualTour struct {
	BaseModel
	Title     string     `gorm:"not null"`
	Theme     string     `gorm:"not null;index"`
	Duration  int        `gorm:"not null;default:5"` // seconds per plant
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`

	Stops []TourStop `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

// TourStop is one position in a tour's ordered plant list. PlantID is a
// soft reference: nothing in the schema ties it to an existing plant.
type TourStop struct {
	TourID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	PlantID  uuid.UUID `gorm:"type:uuid;index"`
}

func (t *VirtualTour) PlantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Stops))
	for _, s := range t.Stops {
		ids = append(ids, s.PlantID)
	}
	return ids
}

func (t *VirtualTour) SetPlantIDs(ids []uuid.UUID) {
	t.Stops = make([]TourStop, 0, len(ids))
	for i, id := range ids {
		t.Stops = append(t.Stops, TourStop{TourID: t.ID, Position: i, PlantID: id})
	}
}
