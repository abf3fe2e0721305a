package company

import (
	"context"

	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// Allowed fields for sorting, filtering, and free-text search in List queries.
var (
	allowedSortFields   = []string{"id", "name", "email", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "email", "phone"}
	searchColumns       = []string{"name", "email", "address"}
)

// companyRepository implements domain.CompanyRepository using GORM.
type companyRepository struct {
	db *gorm.DB
}

// NewRepository creates a new CompanyRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.CompanyRepository {
	return &companyRepository{db: db}
}

// Create inserts a new company into the database.
func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a company by its primary key.
func (r *companyRepository) GetByID(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &company, nil
}

// List returns a paginated, sorted, searched, and filtered list of companies.
func (r *companyRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Company], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Company{}).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var companies []domain.Company
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&companies).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.PageResultFrom(companies, total, req), nil
}

// Update saves changes to an existing company.
func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a company by ID.
func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Company{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
