package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrlokans/queueboard/internal/entities"
)

func (s *Store) GetAppConfig(ctx context.Context) (*entities.AppConfig, bool, error) {
	return getOrCreate(ctx, s.db.Collection(appConfigCollection), entities.AppConfigID, entities.DefaultAppConfig)
}

func (s *Store) FindAppConfig(ctx context.Context) (*entities.AppConfig, error) {
	return find[entities.AppConfig](ctx, s.db.Collection(appConfigCollection), entities.AppConfigID)
}

func (s *Store) UpdateAppConfig(ctx context.Context, update entities.AppConfigUpdate) (*entities.AppConfig, error) {
	return upsert(ctx, s.db.Collection(appConfigCollection), entities.AppConfigID, entities.DefaultAppConfig, update.Fields(time.Now().UTC()))
}

func (s *Store) ListSlides(ctx context.Context) ([]entities.SlideImage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}, {Key: "id", Value: 1}}).
		SetLimit(entities.MaxSlidesListed)

	cursor, err := s.db.Collection(slideImagesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	slides := make([]entities.SlideImage, 0)
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (s *Store) CreateSlide(ctx context.Context, imageBase64 string, order int) (*entities.SlideImage, error) {
	slide := entities.NewSlideImage(imageBase64, order)
	if _, err := s.db.Collection(slideImagesCollection).InsertOne(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *Store) DeleteSlide(ctx context.Context, id string) error {
	result, err := s.db.Collection(slideImagesCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (s *Store) ReorderSlides(ctx context.Context, orders []entities.SlideOrder) (int, error) {
	coll := s.db.Collection(slideImagesCollection)
	updated := 0
	for _, item := range orders {
		if item.Order == nil {
			continue
		}
		result, err := coll.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": bson.M{"order": *item.Order}})
		if err != nil {
			return updated, err
		}
		updated += int(result.MatchedCount)
	}
	return updated, nil
}

func (s *Store) GetSlideSettings(ctx context.Context) (*entities.SlideSettings, bool, error) {
	return getOrCreate(ctx, s.db.Collection(slideSettingsCollection), entities.SlideSettingsID, entities.DefaultSlideSettings)
}

func (s *Store) UpdateSlideSettings(ctx context.Context, update entities.SlideSettingsUpdate) (*entities.SlideSettings, error) {
	return upsert(ctx, s.db.Collection(slideSettingsCollection), entities.SlideSettingsID, entities.DefaultSlideSettings, update.Fields())
}

func (s *Store) GetNumber(ctx context.Context) (*entities.CurrentNumber, bool, error) {
	return getOrCreate(ctx, s.db.Collection(currentNumberCollection), entities.CurrentNumberID, entities.DefaultCurrentNumber)
}

func (s *Store) SetNumber(ctx context.Context, n int) (*entities.CurrentNumber, error) {
	return upsert(ctx, s.db.Collection(currentNumberCollection), entities.CurrentNumberID, entities.DefaultCurrentNumber, entities.Fields{
		"number":     n,
		"updated_at": time.Now().UTC(),
	})
}

func (s *Store) IncrementNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return s.adjustNumber(ctx, bson.M{"$add": bson.A{currentOrMin, 1}})
}

func (s *Store) DecrementNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return s.adjustNumber(ctx, bson.M{"$max": bson.A{entities.MinNumber, bson.M{"$subtract": bson.A{currentOrMin, 1}}}})
}

func (s *Store) ResetNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return s.SetNumber(ctx, entities.MinNumber)
}

// currentOrMin reads the stored number, treating a missing document as
// freshly created at the floor.
var currentOrMin = bson.M{"$ifNull": bson.A{"$number", entities.MinNumber}}

// adjustNumber applies expr with a pipeline update, so the read and the write
// happen in one server-side step.
func (s *Store) adjustNumber(ctx context.Context, expr bson.M) (*entities.CurrentNumber, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"number":     expr,
			"updated_at": time.Now().UTC(),
		}}},
	}
	return findOneAndUpdate[entities.CurrentNumber](ctx, s.db.Collection(currentNumberCollection), entities.CurrentNumberID, pipeline)
}

func (s *Store) GetBluetoothRemote(ctx context.Context) (*entities.BluetoothRemote, bool, error) {
	return getOrCreate(ctx, s.db.Collection(bluetoothRemoteCollection), entities.BluetoothRemoteID, entities.DefaultBluetoothRemote)
}

func (s *Store) UpdateBluetoothRemote(ctx context.Context, update entities.BluetoothRemoteUpdate) (*entities.BluetoothRemote, error) {
	return upsert(ctx, s.db.Collection(bluetoothRemoteCollection), entities.BluetoothRemoteID, entities.DefaultBluetoothRemote, update.Fields())
}

func (s *Store) GetVoiceSettings(ctx context.Context) (*entities.VoiceSettings, bool, error) {
	return getOrCreate(ctx, s.db.Collection(voiceSettingsCollection), entities.VoiceSettingsID, entities.DefaultVoiceSettings)
}

func (s *Store) UpdateVoiceSettings(ctx context.Context, update entities.VoiceSettingsUpdate) (*entities.VoiceSettings, error) {
	return upsert(ctx, s.db.Collection(voiceSettingsCollection), entities.VoiceSettingsID, entities.DefaultVoiceSettings, update.Fields())
}
