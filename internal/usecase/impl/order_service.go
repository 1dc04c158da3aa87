package impl

import (
	"context"
	"log/slog"
	"time"

	"bookify/config"
	deliverycontext "bookify/internal/delivery/context"
	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/domain/service"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager         repository.TransactionManager
	orderRepo         repository.OrderRepository
	ticketPassService service.TicketPassService
	pointValue        decimal.Decimal
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	OrderRepo         repository.OrderRepository
	TicketPassService service.TicketPassService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	pointValue := decimal.NewFromFloat(config.DefaultLoyaltyPointValue)
	if params.Config != nil && params.Config.Loyalty != nil {
		pointValue = decimal.NewFromFloat(params.Config.Loyalty.PointValue)
	}

	return &orderService{
		txManager:         params.TxManager,
		orderRepo:         params.OrderRepo,
		ticketPassService: params.TicketPassService,
		pointValue:        pointValue,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the user's active cart items into a new Unpaid order.
// The whole conversion runs in one transaction: the order row is created,
// the cart items are re-parented to it, and the total is written once,
// including at most one pending redemption discount.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", userID))

	var checkedOutOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		orderRepo := repoFactory.NewOrderRepository()
		redemptionRepo := repoFactory.NewRedemptionRepository()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
			}

			return errors.Wrap(err, "failed to load cart for checkout")
		}

		if len(cart.Items) == 0 {
			return errors.Wrap(domainerrors.ErrCartEmpty, "no active items to check out")
		}

		subtotal := decimal.Zero
		itemIDs := make([]uuid.UUID, 0, len(cart.Items))
		for _, item := range cart.Items {
			subtotal = subtotal.Add(item.LineTotal())
			itemIDs = append(itemIDs, item.ID)
		}

		order := &entity.Order{
			UserID:      userID,
			Status:      entity.OrderStatusUnpaid,
			TotalAmount: subtotal,
			OrderDate:   time.Now().UTC(),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.ReparentItems(ctx, itemIDs, order.ID); err != nil {
			return errors.Wrap(err, "failed to move cart items to order")
		}

		total, err := srv.applyRedemptionDiscount(ctx, redemptionRepo, userID, subtotal)
		if err != nil {
			return err
		}

		if !total.Equal(subtotal) {
			if err := orderRepo.UpdateTotal(ctx, order.ID, total); err != nil {
				return errors.Wrap(err, "failed to apply discount to order total")
			}
			order.TotalAmount = total
		}

		orderID := order.ID
		for _, item := range cart.Items {
			item.CartID = nil
			item.OrderID = &orderID
		}
		order.Items = cart.Items
		checkedOutOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("userID", userID),
		slog.Any("orderID", checkedOutOrder.ID),
		slog.String("total", checkedOutOrder.TotalAmount.StringFixed(2)),
	)

	return checkedOutOrder, nil
}

// applyRedemptionDiscount consumes the user's oldest pending redemption, if
// any. The discount is points x point value, clamped so the total never goes
// negative. The redemption moves to Unused; it is finalized at settlement.
func (srv *orderService) applyRedemptionDiscount(ctx context.Context, redemptionRepo repository.RedemptionRepository, userID uuid.UUID, subtotal decimal.Decimal) (decimal.Decimal, error) {
	redemptions, err := redemptionRepo.FindByUserAndStatus(ctx, userID, entity.RedemptionStatusPending)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to load pending redemptions")
	}
	if len(redemptions) == 0 {
		return subtotal, nil
	}

	redemption := redemptions[0]
	discount := srv.pointValue.Mul(decimal.NewFromInt(int64(redemption.PointsSpent)))
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	if err := redemptionRepo.UpdateStatus(ctx, redemption.ID, entity.RedemptionStatusUnused); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to consume redemption discount")
	}

	srv.log(ctx).Debug("Applied redemption discount",
		slog.Any("userID", userID),
		slog.Any("redemptionID", redemption.ID),
		slog.String("discount", discount.StringFixed(2)),
	)

	return subtotal.Sub(discount), nil
}

// ListOrders lists the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one of the user's orders with its line items.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// DeleteOrder removes an order along with its payment and line items.
// Deletion order matters: payment first, then items, then the order row,
// following the foreign key direction.
func (srv *orderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", slog.Any("userID", userID), slog.Any("orderID", orderID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		order, err := orderRepo.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to load order for deletion")
		}

		if order.IsDelivered() {
			return errors.Wrap(domainerrors.ErrOrderDeleteDelivered, "delivered orders cannot be deleted")
		}

		payment, err := paymentRepo.FindByOrderID(ctx, orderID)
		if err != nil && !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to load payment for deletion")
		}
		if payment != nil {
			if err := paymentRepo.Delete(ctx, payment.ID); err != nil {
				return errors.Wrap(err, "failed to delete payment")
			}
		}

		if err := orderRepo.DeleteItems(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order items")
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order deletion transaction", slog.Any("orderID", orderID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", orderID))

	return nil
}

// TicketPass renders a QR entry pass for a ticket line item of a Delivered order.
func (srv *orderService) TicketPass(ctx context.Context, userID, orderID, itemID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order for ticket pass")
	}

	if !order.IsDelivered() {
		return nil, errors.Wrap(domainerrors.ErrOrderNotDelivered, "ticket passes are only issued for delivered orders")
	}

	var passItem *entity.CartItem
	for _, item := range order.Items {
		if item.ID == itemID {
			passItem = item

			break
		}
	}
	if passItem == nil || passItem.ItemType != entity.ItemTypeTicket {
		return nil, errors.Wrap(domainerrors.ErrOrderItemNotFound, "ticket item not found in order")
	}

	png, err := srv.ticketPassService.GeneratePassQR(orderID, passItem.ItemID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate ticket pass", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate ticket pass")
	}

	return png, nil
}
