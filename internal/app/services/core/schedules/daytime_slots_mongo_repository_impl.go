package schedules

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DaytimeSlotsMongoRepository struct {
	Collection *mongo.Collection
}

func NewDaytimeSlotsMongoRepository(db *mongo.Client, dbName string) contracts.DaytimeSlotsRepository {
	return &DaytimeSlotsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionDaytimeSlots),
	}
}

// FindByDoctorAndDay expects day to already be the start of a business day.
func (r *DaytimeSlotsMongoRepository) FindByDoctorAndDay(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.DaytimeSlots, error) {
	var record models.DaytimeSlots
	filter := bson.M{
		"doctorUserId": doctorUserID,
		"date":         day,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionDaytimeSlots)
	}
	return &record, nil
}

func (r *DaytimeSlotsMongoRepository) Upsert(ctx context.Context, record *models.DaytimeSlots) (*models.DaytimeSlots, error) {
	filter := bson.M{
		"doctorUserId": record.DoctorUserID,
		"date":         record.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"timeSlots":         record.TimeSlots,
			"allDayUnavailable": record.AllDayUnavailable,
			"updatedAt":         record.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.DaytimeSlots
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionDaytimeSlots)
	}
	return &saved, nil
}

func (r *DaytimeSlotsMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorUserId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_doctor_daytime_slots"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoDBCollectionDaytimeSlots)
	}
	return nil
}
