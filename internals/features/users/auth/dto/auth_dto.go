package dto

/* =============== REQUESTS =============== */

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"required,min=7,max=20"`
	Address  string `json:"address"  validate:"omitempty"`
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
}

/* =============== RESPONSES =============== */

type AuthResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
