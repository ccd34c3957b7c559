package referral

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain"
)

func singleItemOrder(customerName string) domain.Order {
	return domain.Order{
		OrderNumber: "ORD-ABC123",
		Customer: domain.Customer{
			Name:  customerName,
			Email: "jane.doe@example.com",
		},
		Items: []domain.OrderItem{
			{
				Product:  domain.Product{ID: "APOLLO-RUNNING-SHIRT-01", Price: 29.99},
				Quantity: 1,
			},
		},
		Total:     29.99,
		OrderDate: time.Now(),
	}
}

func TestBuildPayload(t *testing.T) {
	payload, err := BuildPayload(singleItemOrder("Jane Doe"))

	assert.NoError(t, err)
	assert.Equal(t, "Jane", payload.Get("firstname"))
	assert.Equal(t, "Doe", payload.Get("surname"))
	assert.Equal(t, "jane.doe@example.com", payload.Get("email"))
	assert.Equal(t, "jane.doe@example.com", payload.Get("signup_id"))
	assert.Equal(t, "ORD-ABC123", payload.Get("order_id"))
	assert.Equal(t, "29.99", payload.Get("transaction_total"))
	assert.Equal(t, "GBP", payload.Get("transaction_currency"))
	assert.Equal(t, "APOLLO-RUNNING-SHIRT-01", payload.Get("product_sku_1"))
	assert.Equal(t, "1", payload.Get("product_qty_1"))
	assert.Equal(t, "postpurchase", payload.Get("situation"))
	assert.Equal(t, "en_GB", payload.Get("locale"))
	assert.Len(t, payload, 11)
}

func TestBuildPayload_TotalAlwaysTwoDecimals(t *testing.T) {
	order := singleItemOrder("Jane Doe")
	order.Total = 30

	payload, err := BuildPayload(order)

	assert.NoError(t, err)
	assert.Equal(t, "30.00", payload.Get("transaction_total"))
}

func TestBuildPayload_NameWithoutSpace(t *testing.T) {
	payload, err := BuildPayload(singleItemOrder("Madonna"))

	assert.NoError(t, err)
	assert.Equal(t, "Madonna", payload.Get("firstname"))
	assert.Equal(t, "", payload.Get("surname"))
}

func TestBuildPayload_FirstItemOnly(t *testing.T) {
	order := singleItemOrder("Jane Doe")
	order.Items = append(order.Items, domain.OrderItem{
		Product:  domain.Product{ID: "apollo-training-shorts", Price: 34.99},
		Quantity: 2,
	})

	payload, err := BuildPayload(order)

	assert.NoError(t, err)
	assert.Equal(t, "APOLLO-RUNNING-SHIRT-01", payload.Get("product_sku_1"))
	assert.Equal(t, "1", payload.Get("product_qty_1"))
	assert.Empty(t, payload.Get("product_sku_2"))
}

func TestBuildPayload_EmptyOrder(t *testing.T) {
	order := singleItemOrder("Jane Doe")
	order.Items = nil

	payload, err := BuildPayload(order)

	assert.ErrorIs(t, err, ErrNoItems)
	assert.Nil(t, payload)
}
