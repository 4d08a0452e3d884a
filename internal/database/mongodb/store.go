// Package mongodb is the MongoDB storage backend. It implements the same
// store interfaces as the SQLite repositories, one collection per resource.
//
// # Interface Implementation
//
//	var _ http.AppConfigStore = (*Store)(nil)
//	var _ http.SlideStore = (*Store)(nil)
//	var _ http.NumberStore = (*Store)(nil)
//	var _ http.BluetoothRemoteStore = (*Store)(nil)
//	var _ http.VoiceSettingsStore = (*Store)(nil)
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mrlokans/queueboard/internal/entities"
)

const (
	appConfigCollection       = "app_config"
	slideImagesCollection     = "slide_images"
	slideSettingsCollection   = "slide_settings"
	currentNumberCollection   = "current_number"
	bluetoothRemoteCollection = "bluetooth_remote"
	voiceSettingsCollection   = "voice_settings"
)

var collections = []string{
	appConfigCollection,
	slideImagesCollection,
	slideSettingsCollection,
	currentNumberCollection,
	bluetoothRemoteCollection,
	voiceSettingsCollection,
}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the server, verifies it with a ping and ensures the indexes.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo connection URL is empty")
	}

	clientOptions := options.Client().ApplyURI(uri).
		SetMaxPoolSize(50).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	store := &Store{client: client, db: client.Database(dbName)}
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.WithField("database", dbName).Info("Connected to MongoDB")
	return store, nil
}

// EnsureIndexes creates a unique index on the id field of every collection
// and the ordering index used when listing slides.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, name := range collections {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create id index on %s: %w", name, err)
		}
	}

	_, err := s.db.Collection(slideImagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create order index on %s: %w", slideImagesCollection, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close() error {
	if err := s.client.Disconnect(context.Background()); err != nil {
		log.WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	log.Info("Disconnected from MongoDB")
	return nil
}

// getOrCreate loads the singleton document, inserting the defaults when it is
// missing. The upsert makes concurrent first reads create exactly one document.
func getOrCreate[T any](ctx context.Context, coll *mongo.Collection, id string, defaults func() *T) (*T, bool, error) {
	insert, err := insertDefaults(defaults(), nil)
	if err != nil {
		return nil, false, err
	}

	result, err := coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$setOnInsert": insert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, false, err
	}

	doc := new(T)
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(doc); err != nil {
		return nil, false, err
	}
	return doc, result.UpsertedCount == 1, nil
}

// upsert merges fields into the singleton document, creating it from the
// defaults first when missing.
func upsert[T any](ctx context.Context, coll *mongo.Collection, id string, defaults func() *T, fields entities.Fields) (*T, error) {
	insert, err := insertDefaults(defaults(), fields)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if len(insert) > 0 {
		update["$setOnInsert"] = insert
	}
	if len(fields) > 0 {
		update["$set"] = bson.M(fields)
	}

	return findOneAndUpdate[T](ctx, coll, id, update)
}

func findOneAndUpdate[T any](ctx context.Context, coll *mongo.Collection, id string, update any) (*T, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	doc := new(T)
	if err := coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func find[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	doc := new(T)
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// insertDefaults converts the defaults into a $setOnInsert document. The id
// comes from the filter and keys being $set are left out, as MongoDB rejects
// an update touching the same path twice.
func insertDefaults(defaults any, fields entities.Fields) (bson.M, error) {
	raw, err := bson.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "id")
	for key := range fields {
		delete(doc, key)
	}
	return doc, nil
}
