package application

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mock/application_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, id string) (*Application, error)
	// ExistsForJobAndEmail backs the duplicate check. The check-then-insert
	// sequence is not atomic; see Service.Submit.
	ExistsForJobAndEmail(ctx context.Context, jobID, email string) (bool, error)
	FindByJob(ctx context.Context, jobID, status string) ([]Application, error)
	FindByEmail(ctx context.Context, email string) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string, notes *string) error
	FindAll(ctx context.Context) ([]Application, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Application{}.CollectionName())}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(Application{}.CollectionName()).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		// Lookup support for the duplicate check and per-job listings.
		{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_email", Value: 1}}},
	})
	return err
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	_, err := r.col.InsertOne(ctx, app)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Application, error) {
	var app Application
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) ExistsForJobAndEmail(ctx context.Context, jobID, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx,
		bson.M{"job_id": jobID, "applicant_email": email},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindByJob(ctx context.Context, jobID, status string) ([]Application, error) {
	filter := bson.M{"job_id": jobID}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var apps []Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]Application, error) {
	cursor, err := r.col.Find(ctx, bson.M{"applicant_email": email})
	if err != nil {
		return nil, err
	}
	var apps []Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string, notes *string) error {
	fields := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if notes != nil {
		fields["notes"] = *notes
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]Application, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var apps []Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
