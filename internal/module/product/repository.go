package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "name", "sku", "warranty_days", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "sku", "company_id"}
	searchColumns       = []string{"name", "sku"}
)

// productRepository implements domain.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewRepository creates a new ProductRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a product by its primary key.
func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &product, nil
}

// List returns a paginated list of products, optionally scoped to one company.
func (r *productRepository) List(ctx context.Context, req domain.PageRequest, companyID uint) (*domain.PageResult[domain.Product], error) {
	base := r.db.WithContext(ctx).Model(&domain.Product{}).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)
	if companyID != 0 {
		base = base.Where("company_id = ?", companyID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var products []domain.Product
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&products).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.PageResultFrom(products, total, req), nil
}

// Update saves changes to an existing product.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a product by ID.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
