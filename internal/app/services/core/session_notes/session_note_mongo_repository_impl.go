package session_notes

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

type sessionNoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionNoteMongoRepository(db *mongo.Client, dbName string) contracts.SessionNoteRepository {
	return &sessionNoteMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSessionNotes),
	}
}

func (repo *sessionNoteMongoRepository) Create(ctx context.Context, note *models.SessionNote) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, note)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *sessionNoteMongoRepository) FindByID(ctx context.Context, userID, sessionNoteID string) (*models.SessionNote, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionNoteID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var note models.SessionNote
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &note, nil
}

func (repo *sessionNoteMongoRepository) FindByPatientID(ctx context.Context, userID, patientID string) ([]models.SessionNote, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "sessionDate", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID, "patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	notes := make([]models.SessionNote, 0)
	err = cursor.All(ctx, &notes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notes, nil
}

func (repo *sessionNoteMongoRepository) Count(ctx context.Context, userID, patientID string) (int64, error) {
	filter := bson.M{"userId": userID}
	if patientID != "" {
		filter["patientId"] = patientID
	}
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *sessionNoteMongoRepository) Update(ctx context.Context, note *models.SessionNote) error {
	objectID, err := primitive.ObjectIDFromHex(note.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": note.UserID}
	update := bson.M{"$set": note.ConvertToBsonM()}
	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *sessionNoteMongoRepository) DeleteByID(ctx context.Context, userID, sessionNoteID string) error {
	objectID, err := primitive.ObjectIDFromHex(sessionNoteID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *sessionNoteMongoRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID, "patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
