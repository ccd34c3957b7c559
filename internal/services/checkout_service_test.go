package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/mocks"
)

func TestCheckoutService_BuildOrder(t *testing.T) {
	customer := CreateMockCustomer("Jane Doe", "jane@example.com")

	tests := []struct {
		name          string
		items         []domain.OrderItem
		referrerID    string
		expectedTotal float64
	}{
		{
			name:          "empty item list",
			items:         nil,
			expectedTotal: 0,
		},
		{
			name: "single item",
			items: []domain.OrderItem{
				{Product: CreateMockProduct(TestProductID, TestProductName, TestProductPrice), Quantity: 1},
			},
			expectedTotal: 29.99,
		},
		{
			name: "single item with quantity",
			items: []domain.OrderItem{
				{Product: CreateMockProduct(TestProductID, TestProductName, TestProductPrice), Quantity: 3},
			},
			expectedTotal: 89.97,
		},
		{
			name: "two items sum both line totals",
			items: []domain.OrderItem{
				{Product: CreateMockProduct("apollo-running-shirt", "Performance Running Shirt", 29.99), Quantity: 1},
				{Product: CreateMockProduct("apollo-training-shorts", "Training Shorts", 34.99), Quantity: 2},
			},
			referrerID:    "joe-42",
			expectedTotal: 99.97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCheckoutService(catalog.NewStaticCatalog(), NewRandomOrderNumberGenerator(), nil)

			order := service.BuildOrder(tt.items, customer, tt.referrerID)

			assert.InDelta(t, tt.expectedTotal, order.Total, 0.001)
			assert.Equal(t, customer, order.Customer)
			assert.Equal(t, tt.items, order.Items)
			assert.Equal(t, tt.referrerID, order.ReferrerID)
			assert.Regexp(t, orderNumberPattern, order.OrderNumber)
			assert.WithinDuration(t, time.Now(), order.OrderDate, time.Second)
		})
	}
}

func TestCheckoutService_BuildOrder_FreeShipping(t *testing.T) {
	// The documented policy: shipping is free regardless of subtotal, so
	// an empty order totals exactly the shipping fee for zero.
	assert.Equal(t, 0.0, ShippingFee(0))
	assert.Equal(t, 0.0, ShippingFee(129.99))
}

func TestCheckoutService_ResolveProduct(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		expectedID string
	}{
		{name: "known identifier", productID: "apollo-training-shorts", expectedID: "apollo-training-shorts"},
		{name: "unknown identifier falls back", productID: "no-such-product", expectedID: catalog.DefaultProductID},
		{name: "empty identifier falls back", productID: "", expectedID: catalog.DefaultProductID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCheckoutService(catalog.NewStaticCatalog(), NewRandomOrderNumberGenerator(), nil)

			p := service.ResolveProduct(context.Background(), tt.productID)

			assert.Equal(t, tt.expectedID, p.ID)
		})
	}
}

func TestCheckoutService_ResolveProduct_CatalogFailure(t *testing.T) {
	mockCatalog := new(mocks.MockCatalog)
	mockCatalog.On("Resolve", mock.Anything, "apollo-running-shirt").
		Return(domain.Product{}, errors.New("catalog service returned status 500"))

	service := NewCheckoutService(mockCatalog, NewRandomOrderNumberGenerator(), nil)

	p := service.ResolveProduct(context.Background(), "apollo-running-shirt")

	assert.Equal(t, catalog.Default(), p)
	mockCatalog.AssertExpectations(t)
}

func TestCheckoutService_CompletePurchase(t *testing.T) {
	mockPublisher := new(mocks.MockPublisher)
	mockPublisher.On("Publish", mock.Anything, "order.completed", mock.Anything).Return(nil)

	service := NewCheckoutService(catalog.NewStaticCatalog(), NewRandomOrderNumberGenerator(), mockPublisher)
	customer := CreateMockCustomer("Jane Doe", "jane@example.com")

	order := service.CompletePurchase(context.Background(), TestProductID, 2, customer, "joe-42")

	assert.Len(t, order.Items, 1)
	assert.Equal(t, TestProductID, order.Items[0].Product.ID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 59.98, order.Total, 0.001)
	assert.Equal(t, "joe-42", order.ReferrerID)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)

	// Event publish happens off the request path.
	time.Sleep(100 * time.Millisecond)
	mockPublisher.AssertExpectations(t)
}

func TestCheckoutService_CompletePurchase_PublishFailureDoesNotFailPurchase(t *testing.T) {
	mockPublisher := new(mocks.MockPublisher)
	mockPublisher.On("Publish", mock.Anything, "order.completed", mock.Anything).
		Return(errors.New("broker unavailable"))

	service := NewCheckoutService(catalog.NewStaticCatalog(), NewRandomOrderNumberGenerator(), mockPublisher)

	order := service.CompletePurchase(context.Background(), TestProductID, 1, CreateMockCustomer("Jane Doe", "jane@example.com"), "")

	assert.Regexp(t, orderNumberPattern, order.OrderNumber)

	time.Sleep(100 * time.Millisecond)
	mockPublisher.AssertExpectations(t)
}
