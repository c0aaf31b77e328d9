package request_models

type Cultivation struct {
	Soil     string `json:"soil"`
	Climate  string `json:"climate"`
	Watering string `json:"watering"`
}

type CreatePlantRequest struct {
	Name               string       `json:"name"`
	BotanicalName      string       `json:"botanicalName"`
	CommonNames        []string     `json:"commonNames"`
	Family             string       `json:"family"`
	Habitat            string       `json:"habitat"`
	Region             []string     `json:"region"`
	MedicinalUses      []string     `json:"medicinalUses"`
	PreparationMethods []string     `json:"preparationMethods"`
	Dosage             string       `json:"dosage"`
	Precautions        string       `json:"precautions"`
	Cultivation        *Cultivation `json:"cultivation"`
	ShortDescription   string       `json:"shortDescription"`
	Images             []string     `json:"images"`
	ModelURL           *string      `json:"modelUrl"`
}

// UpdateCultivation merges field by field, like UpdatePlantRequest.
type UpdateCultivation struct {
	Soil     *string `json:"soil"`
	Climate  *string `json:"climate"`
	Watering *string `json:"watering"`
}

// UpdatePlantRequest is a partial update: nil fields keep their stored value.
type UpdatePlantRequest struct {
	Name               *string            `json:"name"`
	BotanicalName      *string            `json:"botanicalName"`
	CommonNames        *[]string          `json:"commonNames"`
	Family             *string            `json:"family"`
	Habitat            *string            `json:"habitat"`
	Region             *[]string          `json:"region"`
	MedicinalUses      *[]string          `json:"medicinalUses"`
	PreparationMethods *[]string          `json:"preparationMethods"`
	Dosage             *string            `json:"dosage"`
	Precautions        *string            `json:"precautions"`
	Cultivation        *UpdateCultivation `json:"cultivation"`
	ShortDescription   *string            `json:"shortDescription"`
	Images             *[]string          `json:"images"`
	ModelURL           *string            `json:"modelUrl"`
}
