package sale

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "sold_at", "customer_name", "warranty_days", "created_at"}
	allowedFilterFields = []string{"dealer_id", "product_id", "serial", "sold_by_user_id"}
	searchColumns       = []string{"customer_name", "customer_phone", "serial"}
)

// saleRepository implements domain.SaleRepository using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewRepository creates a new SaleRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.SaleRepository {
	return &saleRepository{db: db}
}

// Create inserts the sale and consumes one unit of the dealer's stock of the
// product in the same transaction. A missing or empty stock row does not
// block the sale.
func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Stock{}).
			Where("dealer_id = ? AND product_id = ? AND quantity > 0", sale.DealerID, sale.ProductID).
			UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a sale by its primary key.
func (r *saleRepository) GetByID(ctx context.Context, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.db.WithContext(ctx).First(&sale, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &sale, nil
}

// GetBySerial retrieves a sale by its serial number.
func (r *saleRepository) GetBySerial(ctx context.Context, serial string) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.db.WithContext(ctx).Where("serial = ?", serial).First(&sale).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &sale, nil
}

// List returns a paginated list of sales, optionally scoped to one dealer.
func (r *saleRepository) List(ctx context.Context, req domain.PageRequest, dealerID uint) (*domain.PageResult[domain.Sale], error) {
	base := r.db.WithContext(ctx).Model(&domain.Sale{}).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)
	if dealerID != 0 {
		base = base.Where("dealer_id = ?", dealerID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var sales []domain.Sale
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&sales).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.PageResultFrom(sales, total, req), nil
}

// ListExpiringBetween returns sales whose warranty end date falls in [from, to).
// The end date is derived in Go to stay dialect-neutral; sold_at bounds
// narrow the scan server-side.
func (r *saleRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	var candidates []domain.Sale
	// end = sold_at + warranty_days*24h, so only rows sold before `to` can
	// have an end inside the window.
	err := r.db.WithContext(ctx).
		Where("sold_at < ?", to).
		Find(&candidates).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	sales := make([]domain.Sale, 0, len(candidates))
	for _, s := range candidates {
		end := s.SoldAt.Add(time.Duration(s.WarrantyDays) * 24 * time.Hour)
		if !end.Before(from) && end.Before(to) {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

// Delete removes a sale by ID.
func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Sale{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
