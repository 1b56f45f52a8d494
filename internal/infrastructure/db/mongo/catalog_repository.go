package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

const (
	collectionCompanies = "companies"
	collectionTasks     = "tasks"
	collectionDocuments = "documents"
	collectionStaff     = "staff"
)

// CatalogRepository reads back-office records from MongoDB.
type CatalogRepository struct {
	companies *mongo.Collection
	tasks     *mongo.Collection
	documents *mongo.Collection
	staff     *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		companies: db.Collection(collectionCompanies),
		tasks:     db.Collection(collectionTasks),
		documents: db.Collection(collectionDocuments),
		staff:     db.Collection(collectionStaff),
	}
}

func (r *CatalogRepository) Companies(ctx context.Context) ([]domain.Company, error) {
	return findAll[domain.Company](ctx, r.companies, bson.D{{Key: "name", Value: 1}})
}

func (r *CatalogRepository) Tasks(ctx context.Context) ([]domain.Task, error) {
	return findAll[domain.Task](ctx, r.tasks, bson.D{{Key: "due_date", Value: 1}})
}

func (r *CatalogRepository) Documents(ctx context.Context) ([]domain.Document, error) {
	return findAll[domain.Document](ctx, r.documents, bson.D{{Key: "upload_date", Value: -1}})
}

func (r *CatalogRepository) Accountants(ctx context.Context) ([]domain.AccountantUser, error) {
	return findAll[domain.AccountantUser](ctx, r.staff, bson.D{{Key: "_id", Value: 1}})
}

func findAll[T any](ctx context.Context, col *mongo.Collection, sort bson.D) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return out, nil
}

// Seed loads data into every empty collection. Collections that already hold
// documents are left alone.
func (r *CatalogRepository) Seed(ctx context.Context, data domain.Dataset) error {
	if err := seedCollection(ctx, r.companies, data.Companies); err != nil {
		return err
	}
	if err := seedCollection(ctx, r.tasks, data.Tasks); err != nil {
		return err
	}
	if err := seedCollection(ctx, r.documents, data.Documents); err != nil {
		return err
	}
	return seedCollection(ctx, r.staff, data.Accountants)
}

func seedCollection[T any](ctx context.Context, col *mongo.Collection, items []T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.EstimatedDocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", col.Name(), err)
	}
	if n > 0 || len(items) == 0 {
		return nil
	}

	docs := make([]any, 0, len(items))
	for _, it := range items {
		docs = append(docs, it)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", col.Name(), err)
	}
	return nil
}

// EnsureIndexes creates the indexes used by list filters.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byAccountant := mongo.IndexModel{Keys: bson.D{{Key: "assigned_accountant_id", Value: 1}}}

	if _, err := r.companies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		byAccountant,
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("companies indexes: %w", err)
	}
	if _, err := r.tasks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		byAccountant,
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
		{Keys: bson.D{{Key: "due_date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("tasks indexes: %w", err)
	}
	if _, err := r.documents.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
		{Keys: bson.D{{Key: "upload_date", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("documents indexes: %w", err)
	}
	return nil
}
