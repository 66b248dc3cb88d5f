package request

type Login struct {
	Email    string `json:"email" validate:"required,email" example:"me@example.com"`
	Password string `json:"password" validate:"required" example:"secret"`
}
