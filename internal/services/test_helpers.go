package services

import (
	"storefront/internal/domain"
)

func CreateMockProduct(id, name string, price float64) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Brand:       "Apollo",
		Price:       price,
		Rating:      4.5,
		ReviewCount: 128,
	}
}

func CreateMockCustomer(name, email string) domain.Customer {
	return domain.Customer{
		Name:  name,
		Email: email,
		Address: domain.Address{
			Street:     "123 Demo Street",
			City:       "London",
			PostalCode: "SW1A 1AA",
			Country:    "United Kingdom",
		},
	}
}

const (
	TestProductID    = "apollo-running-shirt"
	TestProductName  = "Performance Running Shirt"
	TestProductPrice = 29.99
)
