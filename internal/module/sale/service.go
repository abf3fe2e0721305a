package sale

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// saleService implements domain.SaleService.
type saleService struct {
	repo     domain.SaleRepository
	dealers  domain.DealerRepository
	products domain.ProductRepository
	now      func() time.Time
}

// NewService creates a new SaleService. Dealer and product repositories are
// used to resolve references; the product also supplies the warranty period
// copied onto the sale.
func NewService(repo domain.SaleRepository, dealers domain.DealerRepository, products domain.ProductRepository) domain.SaleService {
	return &saleService{repo: repo, dealers: dealers, products: products, now: time.Now}
}

// RecordSale validates the input, copies the product's warranty period when
// none is given, generates the serial, and persists the sale.
func (s *saleService) RecordSale(ctx context.Context, in domain.SaleInput) (*domain.Sale, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if err := validateSale(in); err != nil {
		return nil, err
	}

	if _, err := s.dealers.GetByID(ctx, in.DealerID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "dealer does not exist", nil)
		}
		return nil, err
	}
	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "product does not exist", nil)
		}
		return nil, err
	}

	warrantyDays := product.WarrantyDays
	if in.WarrantyDays != nil {
		warrantyDays = *in.WarrantyDays
		if warrantyDays < 0 {
			warrantyDays = 0
		}
	}

	soldAt := in.SoldAt
	if soldAt.IsZero() {
		soldAt = s.now()
	}

	sale := &domain.Sale{
		DealerID:      in.DealerID,
		ProductID:     in.ProductID,
		Serial:        uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		SoldAt:        soldAt,
		WarrantyDays:  warrantyDays,
		SoldByUserID:  in.SoldByUserID,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale retrieves a sale by ID.
func (s *saleService) GetSale(ctx context.Context, id uint) (*domain.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSales returns a paginated list of sales scoped to dealerID (zero means all).
func (s *saleService) ListSales(ctx context.Context, req domain.PageRequest, dealerID uint) (*domain.PageResult[domain.Sale], error) {
	return s.repo.List(ctx, req, dealerID)
}

// DeleteSale removes a sale by ID.
func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateSale(in domain.SaleInput) error {
	if in.DealerID == 0 {
		return domain.NewAppError(domain.CodeValidation, "dealer_id is required", nil)
	}
	if in.ProductID == 0 {
		return domain.NewAppError(domain.CodeValidation, "product_id is required", nil)
	}
	if in.CustomerName == "" {
		return domain.NewAppError(domain.CodeValidation, "customer_name is required", nil)
	}
	if utf8.RuneCountInString(in.CustomerName) < 2 || utf8.RuneCountInString(in.CustomerName) > 150 {
		return domain.NewAppError(domain.CodeValidation, "customer_name must be between 2 and 150 characters", nil)
	}
	return nil
}
