package response_models

// Tour carries its plants populated, in tour order, under the plantIds key.
type Tour struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Theme     string  `json:"theme"`
	Plants    []Plant `json:"plantIds"`
	Duration  int     `json:"duration"`
	CreatedBy *string `json:"createdBy,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type UploadResponse struct {
	FileURL string `json:"fileUrl"`
}
