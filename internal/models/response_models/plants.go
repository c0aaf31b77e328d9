package response_models

type Cultivation struct {
	Soil     string `json:"soil"`
	Climate  string `json:"climate"`
	Watering string `json:"watering"`
}

type Plant struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	BotanicalName      string      `json:"botanicalName"`
	CommonNames        []string    `json:"commonNames"`
	Family             string      `json:"family"`
	Habitat            string      `json:"habitat"`
	Region             []string    `json:"region"`
	MedicinalUses      []string    `json:"medicinalUses"`
	PreparationMethods []string    `json:"preparationMethods"`
	Dosage             string      `json:"dosage"`
	Precautions        string      `json:"precautions"`
	Cultivation        Cultivation `json:"cultivation"`
	ShortDescription   string      `json:"shortDescription"`
	Images             []string    `json:"images"`
	ModelURL           *string     `json:"modelUrl,omitempty"`
	CreatedBy          *string     `json:"createdBy,omitempty"`
	CreatedAt          string      `json:"createdAt"`
	UpdatedAt          string      `json:"updatedAt"`
}
