package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionAppointments),
	}
}

// Insert maps a unique-index violation to SlotAlreadyBooked. The existing id
// is unknown at that point.
func (r *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotAlreadyBooked("")
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err, constvars.MongoDBCollectionAppointments)
	}

	created := *appointment
	created.ID = result.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionAppointments)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindOccupying(ctx context.Context, query models.OccupancyQuery) (*models.Appointment, error) {
	filter := bson.M{
		"doctorUserId": query.DoctorUserID,
		"date":         bson.M{"$gte": query.DayStart, "$lt": query.DayEnd},
		"time":         query.Time,
		"status":       bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}
	if !query.ExcludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": query.ExcludeID}
	}

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionAppointments)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindBookedTimes(ctx context.Context, doctorUserID primitive.ObjectID, dayStart, dayEnd time.Time) ([]string, error) {
	filter := bson.M{
		"doctorUserId": doctorUserID,
		"date":         bson.M{"$gte": dayStart, "$lt": dayEnd},
		"status":       bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}

	values, err := r.Collection.Distinct(ctx, "time", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err, constvars.MongoDBCollectionAppointments)
	}

	times := make([]string, 0, len(values))
	for _, value := range values {
		if label, ok := value.(string); ok {
			times = append(times, label)
		}
	}
	return times, nil
}

// FindDetails lists appointments newest first, each joined with the public
// profiles of its creator and doctor.
func (r *AppointmentMongoRepository) FindDetails(ctx context.Context, filter models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.CreatorID != nil {
		match["creatorId"] = *filter.CreatorID
	}
	if filter.DoctorUserID != nil {
		match["doctorUserId"] = *filter.DoctorUserID
	}
	if filter.DayStart != nil && filter.DayEnd != nil {
		match["date"] = bson.M{"$gte": *filter.DayStart, "$lt": *filter.DayEnd}
	}

	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$sort": bson.M{"_id": -1}},
	}
	for _, stage := range users.LookupUserStages(constvars.MongoDBCollectionUsers, "creatorId", "creator") {
		pipeline = append(pipeline, stage)
	}
	for _, stage := range users.LookupUserStages(constvars.MongoDBCollectionUsers, "doctorUserId", "doctor") {
		pipeline = append(pipeline, stage)
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err, constvars.MongoDBCollectionAppointments)
	}
	defer cursor.Close(ctx)

	details := make([]models.AppointmentDetail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoDBCollectionAppointments)
	}
	return details, nil
}

// Update sets only the fields present in changes. When changes.ExpectedStatus
// is set and the stored status no longer matches, nothing is written and the
// error names the status that is stored now.
func (r *AppointmentMongoRepository) Update(ctx context.Context, appointmentID primitive.ObjectID, changes models.AppointmentChanges) (*models.Appointment, error) {
	filter := bson.M{"_id": appointmentID}
	if changes.ExpectedStatus != "" {
		filter["status"] = changes.ExpectedStatus
	}
	update := bson.M{"$set": changeSet(changes)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err == nil {
		return &appointment, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, exceptions.ErrSlotAlreadyBooked("")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionAppointments)
	}

	stored, err := r.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, exceptions.ErrNotFound("appointment")
	}
	target := changes.ExpectedStatus
	if changes.Status != nil {
		target = *changes.Status
	}
	return nil, exceptions.ErrInvalidStatusTransition(stored.Status, target)
}

func changeSet(changes models.AppointmentChanges) bson.M {
	set := bson.M{"updatedAt": changes.UpdatedAt}
	if changes.DoctorType != nil {
		set["doctorType"] = *changes.DoctorType
	}
	if changes.DoctorUserID != nil {
		set["doctorUserId"] = *changes.DoctorUserID
	}
	if changes.Date != nil {
		set["date"] = *changes.Date
	}
	if changes.Time != nil {
		set["time"] = *changes.Time
	}
	if changes.PatientName != nil {
		set["patientName"] = *changes.PatientName
	}
	if changes.PatientContactInformation != nil {
		set["patientContactInformation"] = *changes.PatientContactInformation
	}
	if changes.PatientAddress != nil {
		set["patientAddress"] = *changes.PatientAddress
	}
	if changes.Notes != nil {
		set["notes"] = *changes.Notes
	}
	if changes.Status != nil {
		set["status"] = *changes.Status
	}
	return set
}

// EnsureIndexes creates the partial unique index that allows at most one
// pending appointment per doctor, day and time.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doctorUserId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_pending_doctor_slot").
				SetPartialFilterExpression(bson.M{"status": constvars.AppointmentStatusPending}),
		},
		{
			Keys:    bson.D{{Key: "creatorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("creator_date"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoDBCollectionAppointments)
	}
	return nil
}
