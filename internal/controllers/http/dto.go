package http

import "storefront/internal/domain"

// CheckoutForm carries the checkout fields. Required-field presence and
// the quantity floor are enforced here by binding, before any order
// assembly runs. Card fields are demo-only and never processed.
type CheckoutForm struct {
	Email      string `form:"email" binding:"required,email"`
	FirstName  string `form:"firstName" binding:"required"`
	LastName   string `form:"lastName" binding:"required"`
	Address    string `form:"address" binding:"required"`
	City       string `form:"city" binding:"required"`
	Postcode   string `form:"postcode" binding:"required"`
	CardNumber string `form:"cardNumber" binding:"required"`
	Expiry     string `form:"expiry" binding:"required"`
	CVV        string `form:"cvv" binding:"required"`
	Quantity   int    `form:"quantity" binding:"omitempty,min=1"`
}

func (f CheckoutForm) ToCustomer() domain.Customer {
	return domain.Customer{
		Name:  f.FirstName + " " + f.LastName,
		Email: f.Email,
		Address: domain.Address{
			Street:     f.Address,
			City:       f.City,
			PostalCode: f.Postcode,
			Country:    "United Kingdom",
		},
	}
}
