package catalog

import (
	"context"

	"storefront/internal/domain"
)

const DefaultProductID = "apollo-running-shirt"

// HeroProductID is the SKU shown on the product landing page and used by
// the confirmation fallback order.
const HeroProductID = "APOLLO-RUNNING-SHIRT-01"

var products = map[string]domain.Product{
	"apollo-running-shirt": {
		ID:          "apollo-running-shirt",
		Name:        "Performance Running Shirt",
		Brand:       "Apollo",
		Price:       29.99,
		Rating:      4.5,
		ReviewCount: 128,
		Image:       "/product-placeholder.jpg",
		Features:    []string{"Moisture-wicking", "Lightweight", "Quick-dry"},
		Description: "High-performance running shirt for athletes",
	},
	"apollo-training-shorts": {
		ID:          "apollo-training-shorts",
		Name:        "Training Shorts",
		Brand:       "Apollo",
		Price:       34.99,
		Rating:      4.7,
		ReviewCount: 95,
		Image:       "/product-placeholder.jpg",
		Features:    []string{"Breathable", "Elastic waist", "Multiple pockets"},
		Description: "Comfortable training shorts for any workout",
	},
	"APOLLO-RUNNING-SHIRT-01": {
		ID:            "APOLLO-RUNNING-SHIRT-01",
		Name:          "Performance Running Shirt",
		Brand:         "Apollo Sportswear",
		Price:         29.99,
		OriginalPrice: 39.99,
		Rating:        5,
		ReviewCount:   247,
		Image:         "/product-image.jpg",
		Features: []string{
			"Moisture-wicking fabric",
			"UV protection",
			"Lightweight",
			"Breathable mesh",
			"Reflective details",
			"Anti-odor",
		},
		Description: "Engineered for peak performance. This lightweight running shirt combines advanced moisture-wicking technology with a seamless construction for maximum comfort during your most intense training sessions.",
	},
}

// Default returns the product used whenever an identifier cannot be
// resolved.
func Default() domain.Product {
	return products[DefaultProductID]
}

// StaticCatalog serves the fixed demo catalog. Resolve is total: unknown
// or empty identifiers fall back to the default product and never error.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

func (c *StaticCatalog) Resolve(_ context.Context, id string) (domain.Product, error) {
	if p, ok := products[id]; ok {
		return p, nil
	}
	return products[DefaultProductID], nil
}

var _ Repository = (*StaticCatalog)(nil)
