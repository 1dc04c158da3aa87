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

// paymentRepository implements the domain's PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment. The unique index on order_id rejects a
// second payment for the same order.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePayment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("order does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByOrderID retrieves the payment filed for an order, if any.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order id")
	}

	return toPaymentDomain(&paymentM), nil
}

// Update persists the method, reference, and status of a payment.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"method":    payment.Method,
			"reference": payment.Reference,
			"status":    string(payment.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// UpdateStatus sets the payment status.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// Delete removes a payment row.
func (repo *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Method:    data.Method,
		Reference: data.Reference,
		Status:    entity.PaymentStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Method:    data.Method,
		Reference: data.Reference,
		Status:    string(data.Status),
	}
}
