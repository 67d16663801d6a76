package company

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	FindAll(ctx context.Context) ([]Company, error)
	Count(ctx context.Context) (int64, error)
	IncrementJobsPosted(ctx context.Context, id string, delta int64) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Company{}.CollectionName())}
}

// EnsureIndexes creates the uniqueness index on the public id.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(Company{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	_, err := r.col.InsertOne(ctx, company)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&company)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var companies []Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *repository) IncrementJobsPosted(ctx context.Context, id string, delta int64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"total_jobs_posted": delta}},
	)
	return err
}
