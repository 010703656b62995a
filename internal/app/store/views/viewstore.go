// internal/app/store/views/viewstore.go
package viewstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists organization view counters. Counters are the one piece of
// directory data the service owns rather than mirrors: they only move
// through Increment, so they are monotonically non-decreasing.
type Store struct {
	c *mongo.Collection
}

// counterDoc is the stored shape of one counter.
type counterDoc struct {
	OrgID     string    `bson:"org_id"`
	Views     int64     `bson:"views"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("org_views")}
}

// EnsureIndexes creates the unique org_id index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "org_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Increment adds one view to the organization's counter, creating it at 1 on
// first view. Returns the new count.
func (s *Store) Increment(ctx context.Context, orgID string) (int64, error) {
	after := options.After
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"org_id": orgID},
		bson.M{
			"$inc": bson.M{"views": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	)
	var doc counterDoc
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Views, nil
}

// Get returns the organization's view count, zero when it has never been
// viewed.
func (s *Store) Get(ctx context.Context, orgID string) (int64, error) {
	var doc counterDoc
	err := s.c.FindOne(ctx, bson.M{"org_id": orgID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Views, nil
}

// GetMany returns view counts for the given organization IDs. IDs with no
// counter are simply absent from the result map.
func (s *Store) GetMany(ctx context.Context, orgIDs []string) (map[string]int64, error) {
	if len(orgIDs) == 0 {
		return map[string]int64{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"org_id": bson.M{"$in": orgIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]int64, len(orgIDs))
	for cur.Next(ctx) {
		var doc counterDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.OrgID] = doc.Views
	}
	return out, cur.Err()
}
