package rom_assessments

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type romAssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewROMAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.ROMAssessmentRepository {
	return &romAssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionROMAssessments),
	}
}

func (repo *romAssessmentMongoRepository) Create(ctx context.Context, romAssessment *models.ROMAssessment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, romAssessment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *romAssessmentMongoRepository) FindByID(ctx context.Context, userID, romAssessmentID string) (*models.ROMAssessment, error) {
	objectID, err := primitive.ObjectIDFromHex(romAssessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var romAssessment models.ROMAssessment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&romAssessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &romAssessment, nil
}

func (repo *romAssessmentMongoRepository) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.ROMAssessment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, models.AssessmentQuery(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	romAssessments := make([]models.ROMAssessment, 0)
	err = cursor.All(ctx, &romAssessments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return romAssessments, nil
}

func (repo *romAssessmentMongoRepository) Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, models.AssessmentQuery(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *romAssessmentMongoRepository) Update(ctx context.Context, romAssessment *models.ROMAssessment) error {
	objectID, err := primitive.ObjectIDFromHex(romAssessment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": romAssessment.UserID}
	update := bson.M{"$set": romAssessment.ConvertToBsonM()}
	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *romAssessmentMongoRepository) DeleteByID(ctx context.Context, userID, romAssessmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(romAssessmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *romAssessmentMongoRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID, "patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
