package migration

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexMigration struct {
	collection string
	name       string
	keys       bson.D
}

// Every listing query filters by userId first, so each index leads with it.
var indexMigrations = []indexMigration{
	{
		collection: constvars.MongoCollectionPatients,
		name:       "user_name",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}},
	},
	{
		collection: constvars.MongoCollectionAssessments,
		name:       "user_patient_created",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
	},
	{
		collection: constvars.MongoCollectionAssessments,
		name:       "user_status_created",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	},
	{
		collection: constvars.MongoCollectionROMAssessments,
		name:       "user_patient_created",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
	},
	{
		collection: constvars.MongoCollectionGoals,
		name:       "user_patient_status",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "status", Value: 1}},
	},
	{
		collection: constvars.MongoCollectionSessionNotes,
		name:       "user_patient_session_date",
		keys:       bson.D{{Key: "userId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "sessionDate", Value: -1}},
	},
}

// Run creates the collection indexes. Creating an existing index is a no-op
// in MongoDB, so Run is safe on every start.
func Run(ctx context.Context, client *mongo.Client, dbName string) (int, error) {
	db := client.Database(dbName)
	applied := 0
	for _, migration := range indexMigrations {
		_, err := db.Collection(migration.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    migration.keys,
			Options: options.Index().SetName(migration.name),
		})
		if err != nil {
			return applied, fmt.Errorf("error creating index %s on %s: %w", migration.name, migration.collection, err)
		}
		applied++
	}

	logrus.Infof("Applied %d index migrations!", applied)
	return applied, nil
}
