package dto

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse points the presenter at the caller's landing page.
type LoginResponse struct {
	Redirect string `json:"redirect"`
}
