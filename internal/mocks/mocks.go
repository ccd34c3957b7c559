package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain"
)

type MockCatalog struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockCatalog) Resolve(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockDispatcher) Fire(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockDispatcher) Teardown(orderNumber string) {
	m.Called(orderNumber)
}

func (m *MockDispatcher) Close() {
	m.Called()
}
