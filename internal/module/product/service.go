package product

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/warranty"
)

// productService implements domain.ProductService.
type productService struct {
	repo      domain.ProductRepository
	companies domain.CompanyRepository
}

// NewService creates a new ProductService. The company repository is used to
// verify the owning company exists.
func NewService(repo domain.ProductRepository, companies domain.CompanyRepository) domain.ProductService {
	return &productService{repo: repo, companies: companies}
}

// CreateProduct validates input, folds the warranty components into a day
// total, and persists the product.
func (s *productService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	in = normalizeInput(in)
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "company does not exist", nil)
		}
		return nil, err
	}

	product := &domain.Product{
		CompanyID:    in.CompanyID,
		Name:         in.Name,
		SKU:          in.SKU,
		WarrantyDays: warranty.TotalDays(in.WarrantyDaysIn, in.WarrantyMonths, in.WarrantyYears),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID.
func (s *productService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts returns a paginated list of products scoped to companyID (zero means all).
func (s *productService) ListProducts(ctx context.Context, req domain.PageRequest, companyID uint) (*domain.PageResult[domain.Product], error) {
	return s.repo.List(ctx, req, companyID)
}

// UpdateProduct loads the existing product, applies the changes, and
// recomputes the warranty day total from the submitted components.
func (s *productService) UpdateProduct(ctx context.Context, id uint, in domain.ProductInput) (*domain.Product, error) {
	in = normalizeInput(in)
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CompanyID != product.CompanyID {
		if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "company does not exist", nil)
			}
			return nil, err
		}
	}

	product.CompanyID = in.CompanyID
	product.Name = in.Name
	product.SKU = in.SKU
	product.WarrantyDays = warranty.TotalDays(in.WarrantyDaysIn, in.WarrantyMonths, in.WarrantyYears)

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by ID.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func normalizeInput(in domain.ProductInput) domain.ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	return in
}

func validateProduct(in domain.ProductInput) error {
	if in.CompanyID == 0 {
		return domain.NewAppError(domain.CodeValidation, "company_id is required", nil)
	}
	if in.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(in.Name) < 2 || utf8.RuneCountInString(in.Name) > 150 {
		return domain.NewAppError(domain.CodeValidation, "name must be between 2 and 150 characters", nil)
	}
	if in.SKU == "" {
		return domain.NewAppError(domain.CodeValidation, "sku is required", nil)
	}
	if len(in.SKU) > 64 {
		return domain.NewAppError(domain.CodeValidation, "sku must be at most 64 characters", nil)
	}
	return nil
}
