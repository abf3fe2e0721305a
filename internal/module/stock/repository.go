package stock

import (
	"context"

	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "quantity", "product_id", "created_at", "updated_at"}
	allowedFilterFields = []string{"dealer_id", "product_id"}
)

// stockRepository implements domain.StockRepository using GORM.
type stockRepository struct {
	db *gorm.DB
}

// NewRepository creates a new StockRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.StockRepository {
	return &stockRepository{db: db}
}

// GetByID retrieves a stock record by its primary key.
func (r *stockRepository) GetByID(ctx context.Context, id uint) (*domain.Stock, error) {
	var stock domain.Stock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &stock, nil
}

// GetByDealerProduct retrieves the stock record for one dealer/product pair.
func (r *stockRepository) GetByDealerProduct(ctx context.Context, dealerID, productID uint) (*domain.Stock, error) {
	var stock domain.Stock
	err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND product_id = ?", dealerID, productID).
		First(&stock).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &stock, nil
}

// List returns a paginated list of stock records, optionally scoped to one dealer.
func (r *stockRepository) List(ctx context.Context, req domain.PageRequest, dealerID uint) (*domain.PageResult[domain.Stock], error) {
	base := r.db.WithContext(ctx).Model(&domain.Stock{}).
		Scopes(pkg.Filter(req, allowedFilterFields))
	if dealerID != 0 {
		base = base.Where("dealer_id = ?", dealerID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var stocks []domain.Stock
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&stocks).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.PageResultFrom(stocks, total, req), nil
}

// Save inserts or updates a stock record.
func (r *stockRepository) Save(ctx context.Context, stock *domain.Stock) error {
	if err := r.db.WithContext(ctx).Save(stock).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a stock record by ID.
func (r *stockRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Stock{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
