// Package repository provides data access for kit cards.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// KitCardsRepository provides methods for kit card persistence.
type KitCardsRepository struct {
	collection *mongo.Collection
}

// NewKitCardsRepository creates a new kit cards repository.
func NewKitCardsRepository(db *MongoDB) *KitCardsRepository {
	return &KitCardsRepository{
		collection: db.KitCards,
	}
}

// Create inserts a new kit card.
func (r *KitCardsRepository) Create(ctx context.Context, card *model.KitCard) error {
	if card.ID.IsZero() {
		card.ID = primitive.NewObjectID()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, card)
	return err
}

// FindByID returns the kit card with the given ID, or nil when absent.
func (r *KitCardsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.KitCard, error) {
	var card model.KitCard
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByUserAndHash returns the user's kit card for the given file hash,
// or nil when the part has not been analyzed before.
func (r *KitCardsRepository) FindByUserAndHash(ctx context.Context, userID primitive.ObjectID, fileHash string) (*model.KitCard, error) {
	var card model.KitCard
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "file_hash": fileHash}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByUser returns the user's kit cards, newest first, with pagination.
func (r *KitCardsRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var cards []model.KitCard
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// CountByUser returns the number of kit cards the user owns.
func (r *KitCardsRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

// Delete removes a kit card owned by the given user. Returns the number
// of documents removed, so callers can distinguish missing from foreign
// cards.
func (r *KitCardsRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
