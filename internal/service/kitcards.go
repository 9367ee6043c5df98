package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/domain/model"
	"github.com/kitforge/kitforge-service/internal/repository"
)

var (
	// ErrCardQuotaExceeded is returned when a free-tier user has used up
	// their monthly card allowance.
	ErrCardQuotaExceeded = errors.New("monthly card quota exceeded")
	// ErrCardNotFound is returned when a kit card does not exist or
	// belongs to another user.
	ErrCardNotFound = errors.New("kit card not found")
)

// KitCardService provides kit card lifecycle operations.
type KitCardService interface {
	// CreateCard runs the estimation pipeline for the request and persists
	// the resulting kit card, enforcing the free-tier monthly quota.
	CreateCard(ctx context.Context, userID primitive.ObjectID, req dto.CreateKitCardRequest) (*model.KitCard, error)

	// GetCard returns one of the user's kit cards.
	GetCard(ctx context.Context, userID, cardID primitive.ObjectID) (*model.KitCard, error)

	// ListCards returns the user's kit cards, newest first.
	ListCards(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error)

	// DeleteCard removes one of the user's kit cards.
	DeleteCard(ctx context.Context, userID, cardID primitive.ObjectID) error

	// ExportCard renders one of the user's kit cards in the given format.
	ExportCard(ctx context.Context, userID, cardID primitive.ObjectID, format ExportFormat) ([]byte, string, error)
}

// KitCardServiceImpl implements KitCardService.
type KitCardServiceImpl struct {
	cards         repository.KitCardsRepositoryInterface
	users         repository.UserRepositoryInterface
	estimator     Estimator
	renderer      *CardRenderer
	freeTierLimit int
}

// KitCardOption configures a KitCardServiceImpl.
type KitCardOption func(*KitCardServiceImpl)

// WithFreeTierLimit overrides the free-tier monthly card limit.
func WithFreeTierLimit(limit int) KitCardOption {
	return func(s *KitCardServiceImpl) {
		if limit > 0 {
			s.freeTierLimit = limit
		}
	}
}

// NewKitCardService creates a new kit card service.
func NewKitCardService(
	cards repository.KitCardsRepositoryInterface,
	users repository.UserRepositoryInterface,
	estimator Estimator,
	opts ...KitCardOption,
) KitCardService {
	s := &KitCardServiceImpl{
		cards:         cards,
		users:         users,
		estimator:     estimator,
		renderer:      NewCardRenderer(),
		freeTierLimit: model.DefaultFreeTierCardLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateCard runs the pipeline and persists the card. When the request
// carries a file hash the user has analyzed before, the existing card is
// returned without consuming quota.
func (s *KitCardServiceImpl) CreateCard(ctx context.Context, userID primitive.ObjectID, req dto.CreateKitCardRequest) (*model.KitCard, error) {
	if req.FileHash != "" {
		existing, err := s.cards.FindByUserAndHash(ctx, userID, req.FileHash)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing card: %w", err)
		}
		if existing != nil {
			log.Debug().
				Str("user_id", userID.Hex()).
				Str("file_hash", req.FileHash).
				Msg("Returning existing kit card for known file hash")
			return existing, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrCardNotFound
	}

	if err := s.rollQuotaWindow(ctx, user); err != nil {
		return nil, err
	}

	if !user.CanGenerateCard(s.freeTierLimit) {
		return nil, ErrCardQuotaExceeded
	}

	estimate, err := s.estimator.Estimate(req.Metrics, req.Material, req.Config)
	if err != nil {
		return nil, err
	}

	material, err := s.materialProfile(req.Material)
	if err != nil {
		return nil, err
	}

	card := &model.KitCard{
		UserID:   userID,
		PartName: req.PartName,
		FileHash: req.FileHash,
		Metrics:  req.Metrics,
		Material: material,
		Config:   req.Config,
		Estimate: estimate,
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to persist kit card: %w", err)
	}

	if err := s.users.IncrementCardCount(ctx, userID); err != nil {
		// The card is already persisted; the counter is best effort.
		log.Warn().Err(err).Str("user_id", userID.Hex()).Msg("Failed to increment card counter")
	}

	return card, nil
}

// rollQuotaWindow resets the user's monthly counter when the calendar
// month has changed since the last reset.
func (s *KitCardServiceImpl) rollQuotaWindow(ctx context.Context, user *model.User) error {
	now := time.Now()
	sameWindow := user.QuotaResetAt.Year() == now.Year() && user.QuotaResetAt.Month() == now.Month()
	if sameWindow {
		return nil
	}

	if err := s.users.ResetMonthlyQuota(ctx, user.ID, now); err != nil {
		return fmt.Errorf("failed to reset monthly quota: %w", err)
	}
	user.CardsThisMonth = 0
	user.QuotaResetAt = now
	return nil
}

func (s *KitCardServiceImpl) materialProfile(name string) (model.MaterialProfile, error) {
	if svc, ok := s.estimator.(*EstimatorService); ok {
		return svc.Catalog().Lookup(name)
	}
	return NewMaterialCatalog().Lookup(name)
}

// GetCard returns one of the user's kit cards.
func (s *KitCardServiceImpl) GetCard(ctx context.Context, userID, cardID primitive.ObjectID) (*model.KitCard, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.UserID != userID {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// ListCards returns the user's kit cards, newest first.
func (s *KitCardServiceImpl) ListCards(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error) {
	return s.cards.ListByUser(ctx, userID, limit, skip)
}

// DeleteCard removes one of the user's kit cards.
func (s *KitCardServiceImpl) DeleteCard(ctx context.Context, userID, cardID primitive.ObjectID) error {
	deleted, err := s.cards.Delete(ctx, cardID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ExportCard renders one of the user's kit cards. It returns the
// rendered bytes and the matching content type.
func (s *KitCardServiceImpl) ExportCard(ctx context.Context, userID, cardID primitive.ObjectID, format ExportFormat) ([]byte, string, error) {
	card, err := s.GetCard(ctx, userID, cardID)
	if err != nil {
		return nil, "", err
	}
	return s.renderer.Render(card, format)
}
