// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

type MockKitCardsRepositoryInterface struct {
	mock.Mock
}

func (m *MockKitCardsRepositoryInterface) Create(ctx context.Context, card *model.KitCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockKitCardsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.KitCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KitCard), args.Error(1)
}

func (m *MockKitCardsRepositoryInterface) FindByUserAndHash(ctx context.Context, userID primitive.ObjectID, fileHash string) (*model.KitCard, error) {
	args := m.Called(ctx, userID, fileHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KitCard), args.Error(1)
}

func (m *MockKitCardsRepositoryInterface) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error) {
	args := m.Called(ctx, userID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.KitCard), args.Error(1)
}

func (m *MockKitCardsRepositoryInterface) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockKitCardsRepositoryInterface) Delete(ctx context.Context, id, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}
