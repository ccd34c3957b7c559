package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/events"
)

// ShippingFee is the shipping policy applied at checkout. The demo
// storefront ships free regardless of subtotal; swap this out for a
// flat-fee policy in one place if that ever changes.
func ShippingFee(subtotal float64) float64 {
	return 0
}

type CheckoutService struct {
	catalog   catalog.Repository
	numbers   OrderNumberGenerator
	publisher events.PublisherInterface
}

func NewCheckoutService(c catalog.Repository, g OrderNumberGenerator, pub events.PublisherInterface) *CheckoutService {
	return &CheckoutService{
		catalog:   c,
		numbers:   g,
		publisher: pub,
	}
}

// ResolveProduct looks the identifier up in the catalog. Unknown
// identifiers and catalog failures both resolve to the default product,
// so page rendering never depends on a lookup succeeding.
func (s *CheckoutService) ResolveProduct(ctx context.Context, id string) domain.Product {
	p, err := s.catalog.Resolve(ctx, id)
	if err != nil {
		log.Printf("catalog resolve %q: %v, using default", id, err)
		return catalog.Default()
	}
	return p
}

// BuildOrder assembles an immutable order from the cart contents. The
// total is the sum of line totals plus the shipping fee; an empty item
// list yields a zero subtotal.
func (s *CheckoutService) BuildOrder(items []domain.OrderItem, customer domain.Customer, referrerID string) domain.Order {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	return domain.Order{
		OrderNumber: s.numbers.Generate(),
		Customer:    customer,
		Items:       items,
		Total:       subtotal + ShippingFee(subtotal),
		OrderDate:   time.Now(),
		ReferrerID:  referrerID,
	}
}

// CompletePurchase resolves the product, assembles the order and hands
// it back to the caller. The completion event is published off the
// request path; a publish failure never fails the purchase.
func (s *CheckoutService) CompletePurchase(ctx context.Context, productID string, quantity int, customer domain.Customer, referrerID string) domain.Order {
	product := s.ResolveProduct(ctx, productID)

	order := s.BuildOrder([]domain.OrderItem{
		{Product: product, Quantity: quantity},
	}, customer, referrerID)

	if s.publisher != nil {
		go s.publishOrderCompletedEvent(context.Background(), order)
	}

	return order
}

func (s *CheckoutService) publishOrderCompletedEvent(ctx context.Context, order domain.Order) {
	evt := map[string]any{
		"eventId":     uuid.NewString(),
		"orderNumber": order.OrderNumber,
		"total":       order.Total,
		"referrerId":  order.ReferrerID,
		"orderDate":   order.OrderDate,
	}

	if err := s.publisher.Publish(ctx, "order.completed", evt); err != nil {
		log.Printf("Failed to publish order.completed for %s: %v", order.OrderNumber, err)
	}
}
