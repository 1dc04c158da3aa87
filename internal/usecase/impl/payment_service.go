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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager      repository.TransactionManager
	paymentRepo    repository.PaymentRepository
	orderRepo      repository.OrderRepository
	eventPublisher service.EventPublisher
	earnRate       decimal.Decimal
	logger         *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PaymentRepo    repository.PaymentRepository
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	earnRate := decimal.NewFromFloat(config.DefaultLoyaltyEarnRate)
	if params.Config != nil && params.Config.Loyalty != nil {
		earnRate = decimal.NewFromFloat(params.Config.Loyalty.EarnRate)
	}

	return &paymentService{
		txManager:      params.TxManager,
		paymentRepo:    params.PaymentRepo,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		earnRate:       earnRate,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment files a Pending payment for an Unpaid order and moves the
// order to UnderReview. An order already under review keeps its outstanding
// payment; a delivered order is immutable.
func (srv *paymentService) CreatePayment(ctx context.Context, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Filing payment", slog.Any("orderID", input.OrderID))

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		order, err := orderRepo.FindByIDForUser(ctx, input.OrderID, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to load order for payment")
		}

		if order.IsDelivered() {
			return errors.Wrap(domainerrors.ErrOrderDelivered, "delivered orders cannot accept payments")
		}
		if order.Status == entity.OrderStatusUnderReview {
			return errors.Wrap(domainerrors.ErrPaymentOutstanding, "order already has a payment under review")
		}

		payment = &entity.Payment{
			OrderID:   input.OrderID,
			Method:    input.Method,
			Reference: input.Reference,
			Status:    entity.PaymentStatusPending,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			if errors.Is(err, repository.ErrDuplicatePayment) {
				return errors.Wrap(domainerrors.ErrPaymentOutstanding, "order already has a payment")
			}

			return errors.Wrap(err, "failed to create payment")
		}

		if err := orderRepo.UpdateStatus(ctx, input.OrderID, entity.OrderStatusUnderReview); err != nil {
			return errors.Wrap(err, "failed to move order under review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute payment creation transaction", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payment filed", slog.Any("paymentID", payment.ID), slog.Any("orderID", input.OrderID))

	return payment, nil
}

// UpdatePayment corrects the method or reference of a filed payment. Any
// correction resets the payment to Pending and puts the order back under
// review, so a declined payment can be retried.
func (srv *paymentService) UpdatePayment(ctx context.Context, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		loaded, order, err := srv.loadOwnedPayment(ctx, paymentRepo, orderRepo, input.PaymentID, input.UserID)
		if err != nil {
			return err
		}
		payment = loaded

		if order.IsDelivered() {
			return errors.Wrap(domainerrors.ErrOrderDelivered, "payments of delivered orders cannot be modified")
		}

		if input.Method != nil {
			payment.Method = *input.Method
		}
		if input.Reference != nil {
			payment.Reference = *input.Reference
		}
		payment.Status = entity.PaymentStatusPending

		if err := paymentRepo.Update(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to update payment")
		}

		if order.Status != entity.OrderStatusUnderReview {
			if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusUnderReview); err != nil {
				return errors.Wrap(err, "failed to move order under review")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute payment update transaction", slog.Any("paymentID", input.PaymentID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payment updated", slog.Any("paymentID", payment.ID))

	return payment, nil
}

// DeletePayment withdraws a filed payment. The order returns to Unpaid before
// the payment row is removed so a failed deletion never leaves an orphaned
// UnderReview order.
func (srv *paymentService) DeletePayment(ctx context.Context, userID, paymentID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		payment, order, err := srv.loadOwnedPayment(ctx, paymentRepo, orderRepo, paymentID, userID)
		if err != nil {
			return err
		}

		if order.IsDelivered() {
			return errors.Wrap(domainerrors.ErrOrderDelivered, "payments of delivered orders cannot be deleted")
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusUnpaid); err != nil {
			return errors.Wrap(err, "failed to return order to unpaid")
		}

		if err := paymentRepo.Delete(ctx, payment.ID); err != nil {
			return errors.Wrap(err, "failed to delete payment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute payment deletion transaction", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Payment deleted", slog.Any("paymentID", paymentID))

	return nil
}

// VerifyPayment settles or declines a pending payment on behalf of an admin.
// A Valid outcome finalizes matching redemptions, adjusts catalog inventory,
// accrues loyalty points, and delivers the order. Everything up to the event
// publish happens in one transaction; an inventory shortage rolls the whole
// settlement back.
func (srv *paymentService) VerifyPayment(ctx context.Context, input *usecase.VerifyPaymentInput) (*entity.Payment, error) {
	target, ok := entity.ParseVerificationStatus(input.Status)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentStatus, "verification status must be Valid or Declined")
	}

	srv.log(ctx).Info("Verifying payment",
		slog.Any("paymentID", input.PaymentID),
		slog.String("target", string(target)),
	)

	var payment *entity.Payment
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()
		orderRepo := repoFactory.NewOrderRepository()
		userRepo := repoFactory.NewUserRepository()

		var err error
		payment, err = paymentRepo.FindByID(ctx, input.PaymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
			}

			return errors.Wrap(err, "failed to load payment for verification")
		}

		if payment.Status != entity.PaymentStatusPending {
			return errors.Wrap(domainerrors.ErrPaymentNotPending, "payment has already been verified")
		}

		order, err = orderRepo.FindByID(ctx, payment.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for payment")
			}

			return errors.Wrap(err, "failed to load order for verification")
		}
		if len(order.Items) == 0 {
			return errors.Wrap(domainerrors.ErrOrderHasNoItems, "order has no items to settle")
		}

		user, err := userRepo.FindByID(ctx, order.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load order owner for verification")
		}

		if target == entity.PaymentStatusDeclined {
			return srv.declinePayment(ctx, paymentRepo, orderRepo, payment, order)
		}

		return srv.settlePayment(ctx, repoFactory, payment, order, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute payment verification transaction",
			slog.Any("paymentID", input.PaymentID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishVerificationEvent(ctx, input.RequestID, payment, order)

	return payment, nil
}

// loadOwnedPayment loads a payment and its order, scoped to the requesting
// user. A payment on someone else's order is reported as not found.
func (srv *paymentService) loadOwnedPayment(
	ctx context.Context,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	paymentID, userID uuid.UUID,
) (*entity.Payment, *entity.Order, error) {
	payment, err := paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
		}

		return nil, nil, errors.Wrap(err, "failed to load payment")
	}

	order, err := orderRepo.FindByIDForUser(ctx, payment.OrderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
		}

		return nil, nil, errors.Wrap(err, "failed to load order for payment")
	}

	return payment, order, nil
}

// declinePayment marks the payment Declined and returns the order to Unpaid
// so the user can correct and retry.
func (srv *paymentService) declinePayment(
	ctx context.Context,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	payment *entity.Payment,
	order *entity.Order,
) error {
	if err := paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusDeclined); err != nil {
		return errors.Wrap(err, "failed to decline payment")
	}
	if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusUnpaid); err != nil {
		return errors.Wrap(err, "failed to return order to unpaid")
	}

	payment.Status = entity.PaymentStatusDeclined
	order.Status = entity.OrderStatusUnpaid

	return nil
}

// settlePayment performs the Valid branch of verification. Line items are
// processed before loyalty accrual so an inventory failure rolls back without
// ever touching the loyalty balance.
func (srv *paymentService) settlePayment(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	payment *entity.Payment,
	order *entity.Order,
	user *entity.User,
) error {
	paymentRepo := repoFactory.NewPaymentRepository()
	orderRepo := repoFactory.NewOrderRepository()
	userRepo := repoFactory.NewUserRepository()
	redemptionRepo := repoFactory.NewRedemptionRepository()

	unusedRedemptions, err := redemptionRepo.FindByUserAndStatus(ctx, order.UserID, entity.RedemptionStatusUnused)
	if err != nil {
		return errors.Wrap(err, "failed to load unused redemptions")
	}

	for _, item := range order.Items {
		itemType, ok := entity.NormalizeItemType(string(item.ItemType))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnknownItemType, "order item has an unknown item type")
		}

		unusedRedemptions, err = srv.finalizeMatchingRedemption(ctx, redemptionRepo, unusedRedemptions, item)
		if err != nil {
			return err
		}

		if err := srv.adjustInventory(ctx, repoFactory, itemType, item); err != nil {
			return err
		}
	}

	earned := order.TotalAmount.Mul(srv.earnRate).Floor()
	if earned.IsPositive() {
		points := int(earned.IntPart())
		user.Profile.AddLoyaltyPoints(points)
		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			return errors.Wrap(err, "failed to accrue loyalty points")
		}

		srv.log(ctx).Debug("Loyalty points accrued",
			slog.Any("userID", user.ID),
			slog.Int("points", points),
		)
	}

	if err := paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusValid); err != nil {
		return errors.Wrap(err, "failed to mark payment valid")
	}
	if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered); err != nil {
		return errors.Wrap(err, "failed to deliver order")
	}

	payment.Status = entity.PaymentStatusValid
	order.Status = entity.OrderStatusDelivered

	return nil
}

// finalizeMatchingRedemption marks the oldest unused redemption referencing
// the same catalog item as Used. Each redemption finalizes at most once per
// settlement; the consumed entry is removed from the working slice.
func (srv *paymentService) finalizeMatchingRedemption(
	ctx context.Context,
	redemptionRepo repository.RedemptionRepository,
	unused []*entity.Redemption,
	item *entity.CartItem,
) ([]*entity.Redemption, error) {
	for i, redemption := range unused {
		if redemption.ItemID != item.ItemID {
			continue
		}

		if err := redemptionRepo.UpdateStatus(ctx, redemption.ID, entity.RedemptionStatusUsed); err != nil {
			return nil, errors.Wrap(err, "failed to finalize redemption")
		}

		return append(unused[:i], unused[i+1:]...), nil
	}

	return unused, nil
}

// adjustInventory checks and decrements the catalog inventory for one line
// item. A shortage aborts the settlement.
func (srv *paymentService) adjustInventory(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	itemType entity.ItemType,
	item *entity.CartItem,
) error {
	switch itemType {
	case entity.ItemTypeTicket:
		ticketRepo := repoFactory.NewTicketRepository()

		ticket, err := ticketRepo.FindByID(ctx, item.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				return errors.Wrap(domainerrors.ErrTicketNotFound, "ticket no longer exists")
			}

			return errors.Wrap(err, "failed to load ticket for settlement")
		}
		if ticket.QuantityAvailable < item.Quantity {
			return errors.Wrap(domainerrors.ErrTicketInventoryInsufficient, "not enough tickets remaining")
		}

		return errors.Wrap(
			ticketRepo.UpdateQuantity(ctx, ticket.ID, ticket.QuantityAvailable-item.Quantity, ticket.QuantitySold+item.Quantity),
			"failed to adjust ticket inventory",
		)
	case entity.ItemTypeProduct:
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, item.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product no longer exists")
			}

			return errors.Wrap(err, "failed to load product for settlement")
		}
		if product.StockQuantity < item.Quantity {
			return errors.Wrap(domainerrors.ErrProductInventoryInsufficient, "not enough stock remaining")
		}

		return errors.Wrap(
			productRepo.UpdateQuantity(ctx, product.ID, product.StockQuantity-item.Quantity, product.QuantitySold+item.Quantity),
			"failed to adjust product inventory",
		)
	default:
		return errors.Wrap(domainerrors.ErrUnknownItemType, "order item has an unknown item type")
	}
}

// publishVerificationEvent emits the terminal verification outcome after the
// transaction commits. Publishing failures are logged, never propagated; the
// settlement already committed.
func (srv *paymentService) publishVerificationEvent(ctx context.Context, requestID string, payment *entity.Payment, order *entity.Order) {
	eventType := OrderEventTypeFor(payment.Status)
	if eventType == "" {
		return
	}

	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	event := &service.OrderEvent{
		RequestID:   requestID,
		EventType:   eventType,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		PaymentID:   payment.ID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

// OrderEventTypeFor maps a terminal payment status to its event type.
func OrderEventTypeFor(status entity.PaymentStatus) string {
	switch status {
	case entity.PaymentStatusValid:
		return service.OrderEventSettled
	case entity.PaymentStatusDeclined:
		return service.OrderEventPaymentDeclined
	default:
		return ""
	}
}
