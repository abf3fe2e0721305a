package dealer

import (
	"context"

	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "name", "email", "city", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "email", "city", "company_id"}
	searchColumns       = []string{"name", "email", "city"}
)

// dealerRepository implements domain.DealerRepository using GORM.
type dealerRepository struct {
	db *gorm.DB
}

// NewRepository creates a new DealerRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.DealerRepository {
	return &dealerRepository{db: db}
}

// Create inserts a new dealer into the database.
func (r *dealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	if err := r.db.WithContext(ctx).Create(dealer).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a dealer by its primary key.
func (r *dealerRepository) GetByID(ctx context.Context, id uint) (*domain.Dealer, error) {
	var dealer domain.Dealer
	if err := r.db.WithContext(ctx).First(&dealer, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &dealer, nil
}

// List returns a paginated list of dealers, optionally scoped to one company.
// companyID zero means all companies.
func (r *dealerRepository) List(ctx context.Context, req domain.PageRequest, companyID uint) (*domain.PageResult[domain.Dealer], error) {
	base := r.db.WithContext(ctx).Model(&domain.Dealer{}).
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

	var dealers []domain.Dealer
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&dealers).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.PageResultFrom(dealers, total, req), nil
}

// Update saves changes to an existing dealer.
func (r *dealerRepository) Update(ctx context.Context, dealer *domain.Dealer) error {
	if err := r.db.WithContext(ctx).Save(dealer).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a dealer by ID.
func (r *dealerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Dealer{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
