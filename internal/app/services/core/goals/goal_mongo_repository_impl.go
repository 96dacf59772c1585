package goals

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type goalMongoRepository struct {
	Collection *mongo.Collection
}

func NewGoalMongoRepository(db *mongo.Client, dbName string) contracts.GoalRepository {
	return &goalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionGoals),
	}
}

func (repo *goalMongoRepository) Create(ctx context.Context, goal *models.Goal) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, goal)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *goalMongoRepository) FindByID(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	objectID, err := primitive.ObjectIDFromHex(goalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var goal models.Goal
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &goal, nil
}

func (repo *goalMongoRepository) FindByPatientID(ctx context.Context, userID, patientID string) ([]models.Goal, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID, "patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	goals := make([]models.Goal, 0)
	err = cursor.All(ctx, &goals)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return goals, nil
}

func (repo *goalMongoRepository) CountByStatus(ctx context.Context, userID, patientID string) (map[string]int64, error) {
	match := bson.M{"userId": userID}
	if patientID != "" {
		match["patientId"] = patientID
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBCountDocuments(err)
	}

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	err = cursor.All(ctx, &rows)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (repo *goalMongoRepository) Update(ctx context.Context, goal *models.Goal) error {
	objectID, err := primitive.ObjectIDFromHex(goal.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": goal.UserID}
	update := bson.M{"$set": goal.ConvertToBsonM()}
	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *goalMongoRepository) DeleteByID(ctx context.Context, userID, goalID string) error {
	objectID, err := primitive.ObjectIDFromHex(goalID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *goalMongoRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID, "patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
