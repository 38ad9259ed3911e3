package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const applicationsCollection = "applications"

type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID              string `bson:"_id"`
	Email           string `bson:"email"`
	JobTitle        string `bson:"job_title"`
	CompanyName     string `bson:"company_name"`
	ResumeName      string `bson:"resume_name"`
	CoverLetterName string `bson:"cover_letter_name"`
	SubmittedAt     int64  `bson:"submitted_at"`
}

// EnsureIndexes creates the per-user lookup index.
func (r *MongoApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "submitted_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create application index: %w", err)
	}
	return nil
}

func (r *MongoApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	doc := mongoApplication{
		ID:              app.ID,
		Email:           app.Email,
		JobTitle:        app.JobTitle,
		CompanyName:     app.CompanyName,
		ResumeName:      app.ResumeName,
		CoverLetterName: app.CoverLetterName,
		SubmittedAt:     app.SubmittedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *MongoApplicationRepository) ListByEmail(ctx context.Context, email string) ([]domain.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Application, 0)
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, toDomain(ma))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return out, nil
}

func toDomain(ma mongoApplication) domain.Application {
	return domain.Application{
		ID:              ma.ID,
		Email:           ma.Email,
		JobTitle:        ma.JobTitle,
		CompanyName:     ma.CompanyName,
		ResumeName:      ma.ResumeName,
		CoverLetterName: ma.CoverLetterName,
		SubmittedAt:     unixToTime(ma.SubmittedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

var _ ports.ApplicationRepository = (*MongoApplicationRepository)(nil)
