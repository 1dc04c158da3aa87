package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository defines the interface for ticket catalog persistence.
type TicketRepository interface {
	// FindByID retrieves a ticket by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// UpdateQuantity sets the available and sold counters of a ticket.
	UpdateQuantity(ctx context.Context, id uuid.UUID, available, sold int) error
}
