package utils

import (
	"clinic-staff-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBStringToObjectID(err)
	}
	return objectID, nil
}

// ParseOptionalObjectID returns nil for an empty id.
func ParseOptionalObjectID(id string) (*primitive.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	objectID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return &objectID, nil
}
