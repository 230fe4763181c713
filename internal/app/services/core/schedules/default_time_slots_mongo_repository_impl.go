package schedules

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DefaultTimeSlotsMongoRepository struct {
	Collection *mongo.Collection
}

func NewDefaultTimeSlotsMongoRepository(db *mongo.Client, dbName string) contracts.DefaultTimeSlotsRepository {
	return &DefaultTimeSlotsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionDefaultTimeSlots),
	}
}

func (r *DefaultTimeSlotsMongoRepository) FindByDoctor(ctx context.Context, doctorUserID primitive.ObjectID) (*models.DefaultTimeSlots, error) {
	var record models.DefaultTimeSlots
	err := r.Collection.FindOne(ctx, bson.M{"doctorUserId": doctorUserID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionDefaultTimeSlots)
	}
	return &record, nil
}

// Upsert overwrites the doctor's slot list, creating the record on first save.
func (r *DefaultTimeSlotsMongoRepository) Upsert(ctx context.Context, record *models.DefaultTimeSlots) (*models.DefaultTimeSlots, error) {
	filter := bson.M{"doctorUserId": record.DoctorUserID}
	update := bson.M{
		"$set": bson.M{
			"timeSlots": record.TimeSlots,
			"updatedAt": record.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.DefaultTimeSlots
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionDefaultTimeSlots)
	}
	return &saved, nil
}

func (r *DefaultTimeSlotsMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorUserId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_doctor_default_time_slots"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoDBCollectionDefaultTimeSlots)
	}
	return nil
}
