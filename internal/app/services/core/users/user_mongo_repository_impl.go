package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionUsers),
	}
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	result, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrUsernameAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err, constvars.MongoDBCollectionUsers)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionUsers)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionUsers)
	}
	return &user, nil
}

// FindByRoles returns every user when roles is empty.
func (r *UserMongoRepository) FindByRoles(ctx context.Context, roles []string) ([]models.User, error) {
	filter := bson.M{}
	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roles}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetProjection(bson.M{"password": 0})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err, constvars.MongoDBCollectionUsers)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoDBCollectionUsers)
	}
	return users, nil
}

func (r *UserMongoRepository) UpdatePassword(ctx context.Context, userID primitive.ObjectID, hashedPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"password":             hashedPassword,
			"accountSetupRequired": false,
			"updatedAt":            time.Now().UTC(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionUsers)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNotFound("user")
	}
	return nil
}

func (r *UserMongoRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err, constvars.MongoDBCollectionUsers)
	}
	return count, nil
}

func (r *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoDBCollectionUsers)
	}
	return nil
}
