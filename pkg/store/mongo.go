package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbcohen2000/raggedblocks/pkg/errors"
)

// MongoStore persists history records to a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to uri and returns a store backed by
// database.collection. The caller is responsible for calling Close.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// mongoRecord is the BSON document shape stored per render. UUID is
// stored as the document's own _id rather than a separate field.
type mongoRecord struct {
	ID        string        `bson:"_id"`
	InputHash string        `bson:"input_hash"`
	Algorithm string        `bson:"algorithm"`
	Settings  mongoSettings `bson:"settings"`
	Timestamp time.Time     `bson:"timestamp"`
	SVG       []byte        `bson:"svg"`
}

type mongoSettings struct {
	TranslateWraps   bool    `bson:"translate_wraps"`
	SimplifyOutlines bool    `bson:"simplify_outlines"`
	IdealLeading     float64 `bson:"ideal_leading"`
}

// Save implements Store. If rec.ID is empty, a fresh uuid is assigned.
func (s *MongoStore) Save(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	doc := mongoRecord{
		ID:        rec.ID,
		InputHash: rec.InputHash,
		Algorithm: rec.Algorithm,
		Settings: mongoSettings{
			TranslateWraps:   rec.Settings.TranslateWraps,
			SimplifyOutlines: rec.Settings.SimplifyOutlines,
			IdealLeading:     rec.Settings.IdealLeading,
		},
		Timestamp: rec.Timestamp,
		SVG:       rec.SVG,
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "insert history record")
	}
	return nil
}

// List implements Store.
func (s *MongoStore) List(ctx context.Context, limit int) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list history records")
	}
	defer cur.Close(ctx)

	var records []Record
	for cur.Next(ctx) {
		var doc mongoRecord
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode history record")
		}
		records = append(records, fromMongoRecord(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "iterate history records")
	}
	return records, nil
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, bool, error) {
	var doc mongoRecord
	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, errors.Wrap(errors.ErrCodeInternal, err, "fetch history record %q", id)
	}
	return fromMongoRecord(doc), true, nil
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func fromMongoRecord(doc mongoRecord) Record {
	return Record{
		ID:        doc.ID,
		InputHash: doc.InputHash,
		Algorithm: doc.Algorithm,
		Settings: RecordSettings{
			TranslateWraps:   doc.Settings.TranslateWraps,
			SimplifyOutlines: doc.Settings.SimplifyOutlines,
			IdealLeading:     doc.Settings.IdealLeading,
		},
		Timestamp: doc.Timestamp,
		SVG:       doc.SVG,
	}
}

var _ Store = (*MongoStore)(nil)
