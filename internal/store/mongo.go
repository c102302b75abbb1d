package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
)

// ErrConnection marks a document store that could not be reached. There is
// no retry built in; the process has to be restarted with a working endpoint.
var ErrConnection = errors.New("document store unreachable")

// Query is the typed subset of filtering this system asks of the store: an
// optional strictly-greater-than numeric filter plus a field projection.
// An empty query matches every document with all fields.
type Query struct {
	Gt     map[string]float64
	Fields []string
}

// Collection is the handle the engines work against. The production
// implementation is a mongo collection; tests substitute an in-memory one.
type Collection interface {
	Find(ctx context.Context, q Query) ([]model.Document, error)
	InsertMany(ctx context.Context, docs []model.Document) (int, error)
}

// Store owns the single shared mongo connection. It is constructed once at
// startup and passed by handle into every component that needs a collection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to the configured endpoint and verifies it with a ping.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Collection returns the handle for a named domain collection.
func (s *Store) Collection(name string) Collection {
	return &mongoCollection{coll: s.db.Collection(name)}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (m *mongoCollection) Find(ctx context.Context, q Query) ([]model.Document, error) {
	filter := bson.M{}
	for field, min := range q.Gt {
		filter[field] = bson.M{"$gt": min}
	}

	projection := bson.M{"_id": 0}
	for _, field := range q.Fields {
		projection[field] = 1
	}
	opts := options.Find().SetProjection(projection)

	cur, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []model.Document
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, model.Document(doc))
	}
	return docs, cur.Err()
}

func (m *mongoCollection) InsertMany(ctx context.Context, docs []model.Document) (int, error) {
	payload := make([]interface{}, len(docs))
	for i, doc := range docs {
		payload[i] = doc
	}
	res, err := m.coll.InsertMany(ctx, payload)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
