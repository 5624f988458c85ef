package dto

type RegisterRequest struct {
	Email         string `json:"email" binding:"required" validate:"required,email"`
	Password      string `json:"password" binding:"required" validate:"required,min=8"`
	CompanyName   string `json:"company_name" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	User        *UserResponse    `json:"user"`
	Profile     *ProfileResponse `json:"profile,omitempty"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
