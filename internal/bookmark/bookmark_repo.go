package bookmark

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mock/bookmark_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, bm *Bookmark) error
	Exists(ctx context.Context, studentEmail, jobID string) (bool, error)
	// Delete returns mongo.ErrNoDocuments when no matching bookmark exists.
	Delete(ctx context.Context, studentEmail, jobID string) error
	FindByStudent(ctx context.Context, studentEmail string) ([]Bookmark, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Bookmark{}.CollectionName())}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(Bookmark{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "student_email", Value: 1}, {Key: "job_id", Value: 1}},
	})
	return err
}

func (r *repository) Create(ctx context.Context, bm *Bookmark) error {
	_, err := r.col.InsertOne(ctx, bm)
	return err
}

func (r *repository) Exists(ctx context.Context, studentEmail, jobID string) (bool, error) {
	count, err := r.col.CountDocuments(ctx,
		bson.M{"student_email": studentEmail, "job_id": jobID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Delete(ctx context.Context, studentEmail, jobID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"student_email": studentEmail, "job_id": jobID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repository) FindByStudent(ctx context.Context, studentEmail string) ([]Bookmark, error) {
	cursor, err := r.col.Find(ctx, bson.M{"student_email": studentEmail})
	if err != nil {
		return nil, err
	}
	var bookmarks []Bookmark
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
