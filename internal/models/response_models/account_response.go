package response_models

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AuthResponse flattens the account fields next to the issued token.
type AuthResponse struct {
	AccountResponse
	Token string `json:"token"`
}

type NoteResponse struct {
	Plant Plant  `json:"plant"`
	Text  string `json:"text"`
}

type PersonalizationResponse struct {
	Bookmarks []Plant        `json:"bookmarks"`
	Notes     []NoteResponse `json:"notes"`
}

type BookmarksResponse struct {
	Bookmarks []string `json:"bookmarks"`
}

type NotesResponse struct {
	Notes []NoteRef `json:"notes"`
}

type NoteRef struct {
	PlantID string `json:"plant"`
	Text    string `json:"text"`
}
