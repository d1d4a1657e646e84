package models

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UploadedFile is one résumé from the multipart form, read into memory before
// the batch is handed to the analyzer.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// CandidateReport is the per-file analysis outcome returned to the client,
// one entry per uploaded file regardless of individual failures.
type CandidateReport struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Report   string  `json:"report"`
}

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type SearchMatch struct {
	ReportID   string  `json:"report_id"`
	Filename   string  `json:"filename"`
	Score      float64 `json:"score"`
	Similarity float32 `json:"similarity"`
}
