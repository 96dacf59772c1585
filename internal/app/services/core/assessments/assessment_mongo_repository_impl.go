package assessments

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

type assessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &assessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
	}
}

func (repo *assessmentMongoRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *assessmentMongoRepository) FindByID(ctx context.Context, userID, assessmentID string) (*models.Assessment, error) {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var assessment models.Assessment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (repo *assessmentMongoRepository) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.Assessment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, models.AssessmentQuery(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	assessments := make([]models.Assessment, 0)
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, nil
}

func (repo *assessmentMongoRepository) Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, models.AssessmentQuery(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *assessmentMongoRepository) Update(ctx context.Context, assessment *models.Assessment) error {
	objectID, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": assessment.UserID}
	update := bson.M{"$set": assessment.ConvertToBsonM()}
	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *assessmentMongoRepository) DeleteByID(ctx context.Context, userID, assessmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *assessmentMongoRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID, "patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
