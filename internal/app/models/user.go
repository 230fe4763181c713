package models

import (
	"clinic-staff-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username             string             `json:"username" bson:"username"`
	Password             string             `json:"-" bson:"password"`
	FirstName            string             `json:"firstName" bson:"firstName"`
	LastName             string             `json:"lastName" bson:"lastName"`
	Email                string             `json:"email" bson:"email"`
	EmailVerified        bool               `json:"emailVerified" bson:"emailVerified"`
	MobileNumber         string             `json:"mobileNumber" bson:"mobileNumber"`
	Address              string             `json:"address" bson:"address"`
	Role                 string             `json:"role" bson:"role"`
	AccountSetupRequired bool               `json:"accountSetupRequired" bson:"accountSetupRequired"`
	TimeModel            `bson:",inline"`
}

// UserProfile is the part of a user that is safe to embed in other records.
type UserProfile struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Username     string             `json:"username" bson:"username"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	MobileNumber string             `json:"mobileNumber" bson:"mobileNumber"`
	Address      string             `json:"address" bson:"address"`
	Role         string             `json:"role" bson:"role"`
}

func (u *User) IsDoctor() bool {
	return IsDoctorRole(u.Role)
}

func IsDoctorRole(role string) bool {
	return role != "" && role != constvars.RoleAdmin && role != constvars.RoleNurse
}

func IsKnownRole(role string) bool {
	switch role {
	case constvars.RoleAdmin, constvars.RoleNurse:
		return true
	}
	for _, doctorRole := range constvars.DoctorRoles {
		if role == doctorRole {
			return true
		}
	}
	return false
}

// IsKnownDoctorRole reports whether role is one of the doctor specialties.
func IsKnownDoctorRole(role string) bool {
	return IsKnownRole(role) && IsDoctorRole(role)
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		MobileNumber: u.MobileNumber,
		Address:      u.Address,
		Role:         u.Role,
	}
}
