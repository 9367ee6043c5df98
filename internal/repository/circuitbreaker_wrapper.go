// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/circuitbreaker"
	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// KitCardsRepositoryWithCircuitBreaker wraps KitCardsRepository with circuit breaker protection.
type KitCardsRepositoryWithCircuitBreaker struct {
	repo           *KitCardsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewKitCardsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewKitCardsRepositoryWithCircuitBreaker(repo *KitCardsRepository, cb *circuitbreaker.CircuitBreaker) *KitCardsRepositoryWithCircuitBreaker {
	return &KitCardsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a kit card with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) Create(ctx context.Context, card *model.KitCard) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, card)
	})
}

// FindByID fetches a kit card with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.KitCard, error) {
	var result *model.KitCard
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByUserAndHash fetches a kit card by file hash with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) FindByUserAndHash(ctx context.Context, userID primitive.ObjectID, fileHash string) (*model.KitCard, error) {
	var result *model.KitCard
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByUserAndHash(ctx, userID, fileHash)
		return cbErr
	})
	return result, err
}

// ListByUser lists kit cards with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error) {
	var result []model.KitCard
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByUser(ctx, userID, limit, skip)
		return cbErr
	})
	return result, err
}

// CountByUser counts kit cards with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountByUser(ctx, userID)
		return cbErr
	})
	return result, err
}

// Delete removes a kit card with circuit breaker protection.
func (r *KitCardsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id, userID primitive.ObjectID) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, id, userID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *KitCardsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the entries are dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
