// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// KitCardsRepositoryInterface defines the interface for kit card repository operations.
type KitCardsRepositoryInterface interface {
	Create(ctx context.Context, card *model.KitCard) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.KitCard, error)
	FindByUserAndHash(ctx context.Context, userID primitive.ObjectID, fileHash string) (*model.KitCard, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
