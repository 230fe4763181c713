package requests

type CreateUser struct {
	FirstName    string `json:"firstName" validate:"required,max=64"`
	LastName     string `json:"lastName" validate:"required,max=64"`
	Role         string `json:"role" validate:"required,staff_role"`
	Email        string `json:"email" validate:"omitempty,email"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,max=32"`
	Address      string `json:"address" validate:"omitempty,max=256"`
}

type SetupAccount struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type FindUsers struct {
	Role string `validate:"omitempty,staff_role"`
}
