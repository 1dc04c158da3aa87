package postgres

import (
	"context"

	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row. Line items are attached afterwards by
// re-parenting cart items, not through association inserts.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items, without ownership scoping.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUser retrieves an order with its items, scoped to its owner.
// A foreign order is indistinguishable from a missing one.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUserID lists a user's orders, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders for user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateTotal sets the order total.
func (repo *orderRepository) UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("total_amount", total)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order total")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteItems removes all line items of an order. Runs before Delete because
// of the foreign key direction.
func (repo *orderRepository) DeleteItems(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	return nil
}

// Delete removes the order row itself.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		Status:      entity.OrderStatus(data.Status),
		TotalAmount: data.TotalAmount,
		OrderDate:   data.OrderDate,
		Items:       items,
		Payment:     toPaymentDomain(data.Payment),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
