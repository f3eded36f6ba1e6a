package formsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/molatlhegiM/2Gether-Travels-sub000/database"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// FormsRepository persists contact messages and newsletter signups.
type FormsRepository interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	UpsertNewsletterSignup(ctx context.Context, signup *models.NewsletterSignup) error
}

// MongoFormsRepo is the MongoDB-backed FormsRepository.
type MongoFormsRepo struct {
	contacts   *mongo.Collection
	newsletter *mongo.Collection
}

func NewMongoFormsRepo() *MongoFormsRepo {
	db := database.MongoClient.Database("twogether")
	repo := &MongoFormsRepo{
		contacts:   db.Collection("contact_messages"),
		newsletter: db.Collection("newsletter_signups"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("failed to create forms indexes: %v", err))
	}
	return repo
}

func (r *MongoFormsRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.contacts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("failed to create contact index: %w", err)
	}
	if _, err := r.newsletter.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create newsletter index: %w", err)
	}
	return nil
}

func (r *MongoFormsRepo) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if _, err := r.contacts.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// UpsertNewsletterSignup records the email once; repeat signups refresh nothing
// and do not error.
func (r *MongoFormsRepo) UpsertNewsletterSignup(ctx context.Context, signup *models.NewsletterSignup) error {
	filter := bson.M{"email": signup.Email}
	update := bson.M{"$setOnInsert": bson.M{
		"email":      signup.Email,
		"created_at": signup.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.newsletter.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert newsletter signup: %w", err)
	}
	return nil
}
