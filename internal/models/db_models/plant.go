package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Cultivation struct {
	Soil     string
	Climate  string
	Watering string
}

type Plant struct {
	BaseModel
	Name               string `gorm:"not null"`
	BotanicalName      string
	CommonNames        pq.StringArray `gorm:"type:text[]"`
	Family             string         `gorm:"index"`
	Habitat            string
	Region             pq.StringArray `gorm:"type:text[]"`
	MedicinalUses      pq.StringArray `gorm:"type:text[]"`
	PreparationMethods pq.StringArray `gorm:"type:text[]"`
	Dosage             string
	Precautions        string
	Cultivation        Cultivation `gorm:"embedded;embeddedPrefix:cultivation_"`
	ShortDescription   string
	Images             pq.StringArray `gorm:"type:text[]"`
	ModelURL           *string
	CreatedBy          *uuid.UUID `gorm:"type:uuid;index"`
}
