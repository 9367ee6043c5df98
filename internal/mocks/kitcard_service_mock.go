// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/domain/model"
	"github.com/kitforge/kitforge-service/internal/service"
)

type MockKitCardService struct {
	mock.Mock
}

func (m *MockKitCardService) CreateCard(ctx context.Context, userID primitive.ObjectID, req dto.CreateKitCardRequest) (*model.KitCard, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KitCard), args.Error(1)
}

func (m *MockKitCardService) GetCard(ctx context.Context, userID, cardID primitive.ObjectID) (*model.KitCard, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KitCard), args.Error(1)
}

func (m *MockKitCardService) ListCards(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]model.KitCard, error) {
	args := m.Called(ctx, userID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.KitCard), args.Error(1)
}

func (m *MockKitCardService) DeleteCard(ctx context.Context, userID, cardID primitive.ObjectID) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockKitCardService) ExportCard(ctx context.Context, userID, cardID primitive.ObjectID, format service.ExportFormat) ([]byte, string, error) {
	args := m.Called(ctx, userID, cardID, format)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
