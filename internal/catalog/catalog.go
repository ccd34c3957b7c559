package catalog

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository resolves a product identifier to a catalog record.
type Repository interface {
	Resolve(ctx context.Context, id string) (domain.Product, error)
}
