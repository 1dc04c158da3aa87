package postgres

import (
	"context"

	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the domain's TicketRepository interface using GORM.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

// FindByID retrieves a ticket by its unique ID.
func (repo *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticketM model.TicketModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ticketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by id")
	}

	return toTicketDomain(&ticketM), nil
}

// UpdateQuantity sets the available and sold counters of a ticket.
func (repo *ticketRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, available, sold int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity_available": available,
			"quantity_sold":      sold,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	return &entity.Ticket{
		ID:                data.ID,
		EventName:         data.EventName,
		Name:              data.Name,
		Price:             data.Price,
		QuantityAvailable: data.QuantityAvailable,
		QuantitySold:      data.QuantitySold,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
