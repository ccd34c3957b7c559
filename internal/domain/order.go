package domain

import "time"

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (i OrderItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Order is the immutable record of a completed purchase. It is never
// persisted; it lives only as a value handed to the presentation layer
// and the next navigation step.
type Order struct {
	OrderNumber string      `json:"orderNumber"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	OrderDate   time.Time   `json:"orderDate"`
	ReferrerID  string      `json:"referrerId,omitempty"`
}
