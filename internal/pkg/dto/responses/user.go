package responses

import "clinic-staff-service/internal/app/models"

// CreatedUser includes the temporary password so the admin can hand it over.
type CreatedUser struct {
	User              *models.User `json:"user"`
	TemporaryPassword string       `json:"temporaryPassword"`
}
