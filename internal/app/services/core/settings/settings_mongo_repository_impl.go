package settings

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsMongoRepository stores the clinic's contact details as a single
// document with a fixed id.
type SettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SettingsRepository {
	return &SettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoDBCollectionSettings),
	}
}

func (r *SettingsMongoRepository) Find(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.SettingsDocumentID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoDBCollectionSettings)
	}
	return &settings, nil
}

func (r *SettingsMongoRepository) Upsert(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	document := *settings
	document.ID = constvars.SettingsDocumentID

	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": document.ID}, document, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoDBCollectionSettings)
	}
	return &document, nil
}
