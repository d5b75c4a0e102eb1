package question

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

const mongoCollection = "questions"

// Mongo stores one document per question in the questions collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoDoc struct {
	Seq          int `bson:"seq"`
	mcq.Question `bson:",inline"`
}

// DialMongo connects and pings the server.
func DialMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("question: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("question: mongo ping: %w", err)
	}
	return &Mongo{client: client, coll: client.Database(database).Collection(mongoCollection)}, nil
}

func (m *Mongo) Load(ctx context.Context) ([]mcq.Question, error) {
	cur, err := m.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("question: mongo find: %w", err)
	}
	var docs []mongoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("question: mongo decode: %w", err)
	}
	out := make([]mcq.Question, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Question)
	}
	return out, nil
}

func (m *Mongo) Save(ctx context.Context, qs []mcq.Question) error {
	if err := m.Clear(ctx); err != nil {
		return err
	}
	if len(qs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(qs))
	for i, q := range qs {
		docs[i] = mongoDoc{Seq: i, Question: q}
	}
	if _, err := m.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("question: mongo insert: %w", err)
	}
	return nil
}

func (m *Mongo) Clear(ctx context.Context) error {
	if _, err := m.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("question: mongo delete: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error { return m.client.Disconnect(ctx) }
