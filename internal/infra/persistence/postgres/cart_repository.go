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

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Create persists a new, empty cart.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("cart already exists for this user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindByUserID retrieves a user's cart with its active items. Soft-deleted
// items stay in the table but are filtered out here.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", "status = ?", string(entity.CartItemStatusActive)).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM), nil
}

// AddItem persists a new line item attached to a cart.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cart item must belong to exactly one of cart or order")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCartNotFound.WrapMessage("cart does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// SoftDeleteItem marks an active cart item as Deleted. The cart_id guard keeps
// this from ever touching items that have moved to an order.
func (repo *cartRepository) SoftDeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ? AND status = ?", itemID, cartID, string(entity.CartItemStatusActive)).
		Update("status", string(entity.CartItemStatusDeleted))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ReparentItems transfers the given items from their cart to an order in a
// single statement. cart_id is cleared so each item moves exactly once.
func (repo *cartRepository) ReparentItems(ctx context.Context, itemIDs []uuid.UUID, orderID uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id IN ? AND cart_id IS NOT NULL", itemIDs).
		Updates(map[string]any{
			"cart_id":  nil,
			"order_id": orderID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to move cart items to order")
	}
	if result.RowsAffected != int64(len(itemIDs)) {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		OrderID:   data.OrderID,
		ItemID:    data.ItemID,
		ItemType:  entity.ItemType(data.ItemType),
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Status:    entity.CartItemStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		OrderID:   data.OrderID,
		ItemID:    data.ItemID,
		ItemType:  string(data.ItemType),
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Status:    string(data.Status),
	}
}
