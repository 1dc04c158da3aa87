package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateQuantity sets the stock and sold counters of a product.
	UpdateQuantity(ctx context.Context, id uuid.UUID, stock, sold int) error
}
