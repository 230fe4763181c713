package models

import "time"

type Settings struct {
	ID           string    `json:"-" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	MobileNumber string    `json:"mobileNumber" bson:"mobileNumber"`
	Address      string    `json:"address" bson:"address"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
