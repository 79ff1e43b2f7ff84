package dto

// ContentFilter holds the optional listing parameters after extraction
// from the query string.
type ContentFilter struct {
	UserID    *uint
	ContentID *uint
	Search    string
}

// CreateContentRequest: categories arrive as a JSON-array string
// (e.g. "[\"math\"]"), decoded by the service.
type CreateContentRequest struct {
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Summary    *string `json:"summary"`
	Pdf        *string `json:"pdf"`
	Categories *string `json:"categories"`
}

// UpdateContentRequest: empty strings keep the stored value; a nil
// Categories field leaves associations untouched while "[]" clears
// them.
type UpdateContentRequest struct {
	ID         *uint   `json:"id"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Summary    string  `json:"summary"`
	Pdf        string  `json:"pdf"`
	Categories *string `json:"categories"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ContentResponse struct {
	ID         uint               `json:"id"`
	User       UserResponse       `json:"user"`
	Title      string             `json:"title"`
	Body       string             `json:"body"`
	Summary    string             `json:"summary"`
	Pdf        string             `json:"pdf"`
	Categories []CategoryResponse `json:"categories"`
	CreatedAt  int64              `json:"created_at"`
	UpdatedAt  int64              `json:"updated_at"`
}
