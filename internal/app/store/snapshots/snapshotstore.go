// internal/app/store/snapshots/snapshotstore.go
package snapshotstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// Source names used as document keys, one cached payload per source.
const (
	SourceOrganizations = "organizations"
	SourceProjects      = "projects"
	SourceCampuses      = "campuses"
)

// Store caches the last successfully fetched raw payload per upstream
// source. The cache lets a restarted service publish a stale-but-present
// directory before its first live fetch completes. One document per source,
// replaced wholesale on every successful fetch.
type Store struct {
	c *mongo.Collection
}

type orgPayloadDoc struct {
	Source    string                   `bson:"source"`
	Records   []models.RawOrganization `bson:"records"`
	FetchedAt time.Time                `bson:"fetched_at"`
}

type projectPayloadDoc struct {
	Source    string              `bson:"source"`
	Records   []models.RawProject `bson:"records"`
	FetchedAt time.Time           `bson:"fetched_at"`
}

type campusPayloadDoc struct {
	Source    string          `bson:"source"`
	Records   []models.Campus `bson:"records"`
	FetchedAt time.Time       `bson:"fetched_at"`
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("upstream_payloads")}
}

// EnsureIndexes creates the unique source index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "source", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) upsert(ctx context.Context, source string, doc any) error {
	_, err := s.c.ReplaceOne(ctx,
		bson.M{"source": source},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// SaveOrganizations replaces the cached organizations payload.
func (s *Store) SaveOrganizations(ctx context.Context, orgs []models.RawOrganization) error {
	return s.upsert(ctx, SourceOrganizations, orgPayloadDoc{
		Source:    SourceOrganizations,
		Records:   orgs,
		FetchedAt: time.Now().UTC(),
	})
}

// SaveProjects replaces the cached projects payload.
func (s *Store) SaveProjects(ctx context.Context, projects []models.RawProject) error {
	return s.upsert(ctx, SourceProjects, projectPayloadDoc{
		Source:    SourceProjects,
		Records:   projects,
		FetchedAt: time.Now().UTC(),
	})
}

// SaveCampuses replaces the cached campuses payload.
func (s *Store) SaveCampuses(ctx context.Context, campuses []models.Campus) error {
	return s.upsert(ctx, SourceCampuses, campusPayloadDoc{
		Source:    SourceCampuses,
		Records:   campuses,
		FetchedAt: time.Now().UTC(),
	})
}

// LoadOrganizations returns the cached organizations payload, empty when no
// cache exists yet.
func (s *Store) LoadOrganizations(ctx context.Context) ([]models.RawOrganization, error) {
	var doc orgPayloadDoc
	err := s.c.FindOne(ctx, bson.M{"source": SourceOrganizations}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

// LoadProjects returns the cached projects payload, empty when no cache
// exists yet.
func (s *Store) LoadProjects(ctx context.Context) ([]models.RawProject, error) {
	var doc projectPayloadDoc
	err := s.c.FindOne(ctx, bson.M{"source": SourceProjects}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

// LoadCampuses returns the cached campuses payload, empty when no cache
// exists yet.
func (s *Store) LoadCampuses(ctx context.Context) ([]models.Campus, error) {
	var doc campusPayloadDoc
	err := s.c.FindOne(ctx, bson.M{"source": SourceCampuses}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}
