package requests

type UpdateSettings struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNumber *string `json:"mobileNumber" validate:"omitempty,max=32"`
	Address      *string `json:"address" validate:"omitempty,max=256"`
}
