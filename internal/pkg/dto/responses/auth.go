package responses

import "clinic-staff-service/internal/app/models"

type LoginUser struct {
	Token                string             `json:"token"`
	ExpiresAt            string             `json:"expiresAt"`
	User                 models.UserProfile `json:"user"`
	AccountSetupRequired bool               `json:"accountSetupRequired"`
}
