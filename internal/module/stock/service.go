package stock

import (
	"context"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// stockService implements domain.StockService.
type stockService struct {
	repo     domain.StockRepository
	dealers  domain.DealerRepository
	products domain.ProductRepository
}

// NewService creates a new StockService. Dealer and product repositories are
// used to verify references before creating a stock record.
func NewService(repo domain.StockRepository, dealers domain.DealerRepository, products domain.ProductRepository) domain.StockService {
	return &stockService{repo: repo, dealers: dealers, products: products}
}

// AdjustStock applies delta to the dealer's quantity of the product. The
// record is created on first adjustment; the quantity is clamped at zero so
// over-withdrawing empties the stock instead of failing.
func (s *stockService) AdjustStock(ctx context.Context, dealerID, productID uint, delta int) (*domain.Stock, error) {
	if dealerID == 0 || productID == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "dealer_id and product_id are required", nil)
	}

	stock, err := s.repo.GetByDealerProduct(ctx, dealerID, productID)
	switch {
	case err == nil:
		// existing record, adjust below
	case domain.IsNotFound(err):
		if _, err := s.dealers.GetByID(ctx, dealerID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "dealer does not exist", nil)
			}
			return nil, err
		}
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "product does not exist", nil)
			}
			return nil, err
		}
		stock = &domain.Stock{DealerID: dealerID, ProductID: productID}
	default:
		return nil, err
	}

	stock.Quantity += delta
	if stock.Quantity < 0 {
		stock.Quantity = 0
	}

	if err := s.repo.Save(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// GetStock retrieves a stock record by ID.
func (s *stockService) GetStock(ctx context.Context, id uint) (*domain.Stock, error) {
	return s.repo.GetByID(ctx, id)
}

// ListStock returns a paginated list of stock records scoped to dealerID (zero means all).
func (s *stockService) ListStock(ctx context.Context, req domain.PageRequest, dealerID uint) (*domain.PageResult[domain.Stock], error) {
	return s.repo.List(ctx, req, dealerID)
}

// DeleteStock removes a stock record by ID.
func (s *stockService) DeleteStock(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
