package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo opens a client for MONGO_URI, pings it and returns the DB_DATABASE handle
func ConnectMongo(ctx context.Context, cfg *config.Config, log *logging.Logger) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(uint64(cfg.DBConnectionLimit)).
		SetServerSelectionTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Connected to database", "type", "mongo", "database", cfg.DBDatabase)

	return client.Database(cfg.DBDatabase), nil
}

// EnsureIndexes creates missing collections with their validators and the foreign key
// indexes on the association collection
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"compuestos_por_medicamento": {
			{Keys: bson.D{{Key: "medicamento_id", Value: 1}}},
			{Keys: bson.D{{Key: "compuesto_id", Value: 1}}},
		},
	}

	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for name, validator := range collectionValidators {
		if have[name] {
			continue
		}
		opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": validator})
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}
	return nil
}

var numberTypes = bson.A{"double", "int", "long", "decimal"}

var nonEmptyString = bson.M{"bsonType": "string", "minLength": 1}

// collectionValidators are applied only when a collection is first created
var collectionValidators = map[string]bson.M{
	"compuestos": {
		"bsonType": "object",
		"required": bson.A{"nombre"},
		"properties": bson.M{
			"nombre": nonEmptyString,
		},
	},
	"medicamentos": {
		"bsonType": "object",
		"required": bson.A{"nombre", "fabricante"},
		"properties": bson.M{
			"nombre":     nonEmptyString,
			"fabricante": nonEmptyString,
		},
	},
	"compuestos_por_medicamento": {
		"bsonType": "object",
		"required": bson.A{"medicamento_id", "compuesto_id", "concentracion", "unidad_medida"},
		"properties": bson.M{
			"medicamento_id": bson.M{"bsonType": "objectId"},
			"compuesto_id":   bson.M{"bsonType": "objectId"},
			"concentracion":  bson.M{"bsonType": numberTypes, "minimum": 0, "exclusiveMinimum": true},
			"unidad_medida":  nonEmptyString,
		},
	},
}

// Disconnect closes the client behind a database handle
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
