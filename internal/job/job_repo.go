package job

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mock/job_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	// FindByIDAndIncrementViews bumps the view counter and returns the
	// post-increment document in one atomic store operation.
	FindByIDAndIncrementViews(ctx context.Context, id string) (*Job, error)
	Search(ctx context.Context, q SearchQuery) ([]Job, int64, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	FindActiveByCompany(ctx context.Context, companyID string) ([]Job, error)
	FindAll(ctx context.Context) ([]Job, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	IncrementApplications(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Job{}.CollectionName())}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(Job{}.CollectionName()).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
	})
	return err
}

func (r *repository) Create(ctx context.Context, job *Job) error {
	_, err := r.col.InsertOne(ctx, job)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var job Job
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) FindByIDAndIncrementViews(ctx context.Context, id string) (*Job, error) {
	var job Job
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) Search(ctx context.Context, q SearchQuery) ([]Job, int64, error) {
	filter := searchFilter(q)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(searchSort(q.SortBy)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.PageSize))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Job, error) {
	cursor, err := r.col.Find(ctx, bson.M{"company_id": companyID, "is_active": true})
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Job, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"is_active": true})
}

func (r *repository) IncrementApplications(ctx context.Context, id string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"applications_count": 1}},
	)
	return err
}
