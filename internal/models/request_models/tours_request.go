package request_models

type CreateTourRequest struct {
	Title    string   `json:"title"`
	Theme    string   `json:"theme"`
	PlantIDs []string `json:"plantIds"`
	Duration *int     `json:"duration"`
}

type UpdateTourRequest struct {
	Title    *string   `json:"title"`
	Theme    *string   `json:"theme"`
	PlantIDs *[]string `json:"plantIds"`
	Duration *int      `json:"duration"`
}
