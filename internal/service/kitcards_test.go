package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/domain/model"
	"github.com/kitforge/kitforge-service/internal/mocks"
	"github.com/kitforge/kitforge-service/internal/service"
)

func createCardRequest() dto.CreateKitCardRequest {
	return dto.CreateKitCardRequest{
		PartName: "Tactical Grip",
		FileHash: "abc123",
		Metrics: model.MeshMetrics{
			VolumeCm3:      30,
			SurfaceAreaCm2: 62,
			BoundingBox:    model.BoundingBox{X: 5, Y: 3, Z: 2},
			TriangleCount:  12,
			IsWatertight:   true,
			ShellCount:     1,
		},
		Material: model.MaterialPLA,
		Config:   model.PrintConfig{InfillFraction: 0.20},
	}
}

func activeUser(tier string, cardsThisMonth int) *model.User {
	return &model.User{
		ID:             primitive.NewObjectID(),
		Email:          "maker@example.com",
		Username:       "maker",
		Tier:           tier,
		CardsThisMonth: cardsThisMonth,
		QuotaResetAt:   time.Now(),
		Active:         true,
	}
}

func TestKitCardService_CreateCard(t *testing.T) {
	t.Run("creates card with pipeline estimate", func(t *testing.T) {
		user := activeUser(model.TierFree, 0)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		cards.On("Create", mock.Anything, mock.AnythingOfType("*model.KitCard")).Return(nil)
		users.On("IncrementCardCount", mock.Anything, user.ID).Return(nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		card, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "Tactical Grip", card.PartName)
		assert.Equal(t, user.ID, card.UserID)
		assert.Equal(t, 16.37, card.Estimate.MassG)
		assert.Equal(t, 0.327, card.Estimate.CostUSD)
		assert.Equal(t, model.MaterialPLA, card.Material.Name)
		cards.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	t.Run("known file hash returns existing card without consuming quota", func(t *testing.T) {
		user := activeUser(model.TierFree, model.DefaultFreeTierCardLimit)
		existing := &model.KitCard{
			ID:       primitive.NewObjectID(),
			UserID:   user.ID,
			PartName: "Tactical Grip",
			FileHash: "abc123",
		}
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(existing, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		card, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		require.NoError(t, err)
		assert.Equal(t, existing.ID, card.ID)
		users.AssertNotCalled(t, "IncrementCardCount", mock.Anything, mock.Anything)
	})

	t.Run("free tier at the limit is rejected", func(t *testing.T) {
		user := activeUser(model.TierFree, model.DefaultFreeTierCardLimit)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		_, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		assert.ErrorIs(t, err, service.ErrCardQuotaExceeded)
		cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("paid tier has no limit", func(t *testing.T) {
		user := activeUser(model.TierPaid, 1000)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		cards.On("Create", mock.Anything, mock.AnythingOfType("*model.KitCard")).Return(nil)
		users.On("IncrementCardCount", mock.Anything, user.ID).Return(nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		_, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		require.NoError(t, err)
	})

	t.Run("stale quota window resets before the check", func(t *testing.T) {
		user := activeUser(model.TierFree, model.DefaultFreeTierCardLimit)
		user.QuotaResetAt = time.Now().AddDate(0, -1, 0)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		users.On("ResetMonthlyQuota", mock.Anything, user.ID, mock.AnythingOfType("time.Time")).Return(nil)
		cards.On("Create", mock.Anything, mock.AnythingOfType("*model.KitCard")).Return(nil)
		users.On("IncrementCardCount", mock.Anything, user.ID).Return(nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		_, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("unknown material aborts before persisting", func(t *testing.T) {
		user := activeUser(model.TierFree, 0)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		req := createCardRequest()
		req.Material = "Titanium"
		_, err := svc.CreateCard(context.Background(), user.ID, req)

		assert.ErrorIs(t, err, service.ErrUnknownMaterial)
		cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("custom free tier limit", func(t *testing.T) {
		user := activeUser(model.TierFree, 2)
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByUserAndHash", mock.Anything, user.ID, "abc123").Return(nil, nil)
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService(), service.WithFreeTierLimit(2))

		_, err := svc.CreateCard(context.Background(), user.ID, createCardRequest())

		assert.ErrorIs(t, err, service.ErrCardQuotaExceeded)
	})
}

func TestKitCardService_GetCard(t *testing.T) {
	userID := primitive.NewObjectID()
	cardID := primitive.NewObjectID()

	t.Run("returns own card", func(t *testing.T) {
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByID", mock.Anything, cardID).Return(&model.KitCard{ID: cardID, UserID: userID}, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		card, err := svc.GetCard(context.Background(), userID, cardID)

		require.NoError(t, err)
		assert.Equal(t, cardID, card.ID)
	})

	t.Run("missing card", func(t *testing.T) {
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByID", mock.Anything, cardID).Return(nil, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		_, err := svc.GetCard(context.Background(), userID, cardID)

		assert.ErrorIs(t, err, service.ErrCardNotFound)
	})

	t.Run("foreign card looks like a missing card", func(t *testing.T) {
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("FindByID", mock.Anything, cardID).Return(&model.KitCard{ID: cardID, UserID: primitive.NewObjectID()}, nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		_, err := svc.GetCard(context.Background(), userID, cardID)

		assert.ErrorIs(t, err, service.ErrCardNotFound)
	})
}

func TestKitCardService_DeleteCard(t *testing.T) {
	userID := primitive.NewObjectID()
	cardID := primitive.NewObjectID()

	t.Run("deletes own card", func(t *testing.T) {
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("Delete", mock.Anything, cardID, userID).Return(int64(1), nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		assert.NoError(t, svc.DeleteCard(context.Background(), userID, cardID))
	})

	t.Run("missing card", func(t *testing.T) {
		cards := new(mocks.MockKitCardsRepositoryInterface)
		users := new(mocks.MockUserRepositoryInterface)
		cards.On("Delete", mock.Anything, cardID, userID).Return(int64(0), nil)

		svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

		assert.ErrorIs(t, svc.DeleteCard(context.Background(), userID, cardID), service.ErrCardNotFound)
	})
}

func TestKitCardService_ExportCard(t *testing.T) {
	userID := primitive.NewObjectID()
	cardID := primitive.NewObjectID()
	card := &model.KitCard{
		ID:       cardID,
		UserID:   userID,
		PartName: "Bracket",
		Material: model.MaterialProfile{Name: model.MaterialPLA, DensityGCm3: 1.24, CostPerGram: 0.02},
		Estimate: model.EstimationResult{MassG: 16.37, CostUSD: 0.327, PrintTimeHours: 1.32},
	}

	cards := new(mocks.MockKitCardsRepositoryInterface)
	users := new(mocks.MockUserRepositoryInterface)
	cards.On("FindByID", mock.Anything, cardID).Return(card, nil)

	svc := service.NewKitCardService(cards, users, service.NewEstimatorService())

	t.Run("markdown export", func(t *testing.T) {
		data, contentType, err := svc.ExportCard(context.Background(), userID, cardID, service.FormatMarkdown)

		require.NoError(t, err)
		assert.Equal(t, "text/markdown; charset=utf-8", contentType)
		assert.Contains(t, string(data), "# Kit Card: Bracket")
	})

	t.Run("json export", func(t *testing.T) {
		data, contentType, err := svc.ExportCard(context.Background(), userID, cardID, service.FormatJSON)

		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.Contains(t, string(data), "\"part_name\": \"Bracket\"")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := svc.ExportCard(context.Background(), userID, cardID, service.ExportFormat("pdf"))

		assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
	})
}
