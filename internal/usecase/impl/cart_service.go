package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookify/internal/delivery/context"
	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	ticketRepo  repository.TicketRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	TicketRepo  repository.TicketRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		ticketRepo:  params.TicketRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart retrieves the user's cart with its active items.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem validates the referenced catalog item and appends a line item with
// a snapshotted unit price. The price is never taken from the client.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	}

	itemType, ok := entity.NormalizeItemType(input.ItemType)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnknownItemType, "item type must be ticket or product")
	}

	unitPrice, err := srv.snapshotPrice(ctx, itemType, input.ItemID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	cartID := cart.ID
	item := &entity.CartItem{
		CartID:    &cartID,
		ItemID:    input.ItemID,
		ItemType:  itemType,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice,
		Status:    entity.CartItemStatusActive,
	}

	if err := srv.cartRepo.AddItem(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("userID", input.UserID),
		slog.Any("itemID", input.ItemID),
		slog.String("itemType", string(itemType)),
		slog.Int("quantity", input.Quantity),
	)

	return item, nil
}

// RemoveItem soft-deletes an active item from the user's cart. Items that
// already moved to an order are out of reach here.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
		}

		return errors.Wrap(err, "failed to load cart")
	}

	if err := srv.cartRepo.SoftDeleteItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	srv.log(ctx).Debug("Cart item removed", slog.Any("userID", userID), slog.Any("itemID", itemID))

	return nil
}

// snapshotPrice reads the current catalog price for the referenced item.
func (srv *cartService) snapshotPrice(ctx context.Context, itemType entity.ItemType, itemID uuid.UUID) (decimal.Decimal, error) {
	switch itemType {
	case entity.ItemTypeTicket:
		ticket, err := srv.ticketRepo.FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return decimal.Zero, errors.Wrap(domainerrors.ErrTicketNotFound, "ticket not found")
			}

			return decimal.Zero, errors.Wrap(err, "failed to load ticket")
		}

		return ticket.Price, nil
	case entity.ItemTypeProduct:
		product, err := srv.productRepo.FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return decimal.Zero, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return decimal.Zero, errors.Wrap(err, "failed to load product")
		}

		return product.Price, nil
	default:
		return decimal.Zero, errors.Wrap(domainerrors.ErrUnknownItemType, "item type must be ticket or product")
	}
}
