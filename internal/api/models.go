package api

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Admin toggles
type DisplayRequest struct {
	Display bool `json:"display"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
