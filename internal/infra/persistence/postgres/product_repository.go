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

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// UpdateQuantity sets the stock and sold counters of a product.
func (repo *productRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, stock, sold int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_quantity": stock,
			"quantity_sold":  sold,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		QuantitySold:  data.QuantitySold,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
