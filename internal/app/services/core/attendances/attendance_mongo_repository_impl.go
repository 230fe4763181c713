package attendances

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/app/services/core/users"
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

type AttendanceMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttendanceMongoRepository(db *mongo.Client, dbName string) contracts.AttendanceRepository {
	return &AttendanceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionAttendance),
	}
}

// Insert maps a violation of the one-open-record-per-day index to
// AttendanceAlreadyOpen.
func (r *AttendanceMongoRepository) Insert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	result, err := r.Collection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrAttendanceAlreadyOpen("")
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err, constvars.MongoDBCollectionAttendance)
	}

	created := *attendance
	created.ID = result.InsertedID.(primitive.ObjectID)
	return &created, nil
}

// FindOpen returns the user's record without a time-out whose time-in falls in
// [dayStart, dayEnd).
func (r *AttendanceMongoRepository) FindOpen(ctx context.Context, userID primitive.ObjectID, dayStart, dayEnd time.Time) (*models.Attendance, error) {
	filter := bson.M{
		"userId":  userID,
		"timeIn":  bson.M{"$gte": dayStart, "$lt": dayEnd},
		"timeOut": nil,
	}
	opts := options.FindOne().SetSort(bson.M{"_id": -1})

	var attendance models.Attendance
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionAttendance)
	}
	return &attendance, nil
}

// CloseOpen sets the time-out only if the record is still open. A nil result
// means another request closed it first.
func (r *AttendanceMongoRepository) CloseOpen(ctx context.Context, attendanceID primitive.ObjectID, timeOut time.Time) (*models.Attendance, error) {
	filter := bson.M{
		"_id":     attendanceID,
		"timeOut": nil,
	}
	update := bson.M{"$set": bson.M{"timeOut": timeOut}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var attendance models.Attendance
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionAttendance)
	}
	return &attendance, nil
}

func (r *AttendanceMongoRepository) FindDetails(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	match := bson.M{}
	if filter.UserID != nil {
		match["userId"] = *filter.UserID
	}
	if filter.DayStart != nil && filter.DayEnd != nil {
		match["timeIn"] = bson.M{"$gte": *filter.DayStart, "$lt": *filter.DayEnd}
	}
	if filter.OpenOnly {
		match["timeOut"] = nil
	}

	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$sort": bson.M{"_id": -1}},
	}
	for _, stage := range users.LookupUserStages(constvars.MongoDBCollectionUsers, "userId", "user") {
		pipeline = append(pipeline, stage)
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err, constvars.MongoDBCollectionAttendance)
	}
	defer cursor.Close(ctx)

	details := make([]models.AttendanceDetail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoDBCollectionAttendance)
	}
	return details, nil
}

// EnsureIndexes also creates the partial unique index that allows one open
// record per user and business day. An open record stores timeOut as null.
func (r *AttendanceMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timeIn", Value: -1}},
			Options: options.Index().SetName("user_time_in"),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_open_user_day").
				SetPartialFilterExpression(bson.M{"timeOut": bson.M{"$type": "null"}}),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoDBCollectionAttendance)
	}
	return nil
}
