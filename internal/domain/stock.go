package domain

import "context"

// Stock represents a dealer's on-hand quantity of a product.
// DealerID is the scope filter for stock list queries; (DealerID, ProductID)
// is unique.
type Stock struct {
	BaseModel
	DealerID  uint `gorm:"index;not null;uniqueIndex:idx_stock_dealer_product" json:"dealer_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_stock_dealer_product" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

// StockRepository defines the data access interface for stock records.
type StockRepository interface {
	GetByID(ctx context.Context, id uint) (*Stock, error)
	GetByDealerProduct(ctx context.Context, dealerID, productID uint) (*Stock, error)
	List(ctx context.Context, req PageRequest, dealerID uint) (*PageResult[Stock], error)
	Save(ctx context.Context, stock *Stock) error
	Delete(ctx context.Context, id uint) error
}

// StockService defines the business logic interface for stock records.
type StockService interface {
	// AdjustStock adds delta (which may be negative) to the dealer's
	// quantity of the product, creating the record when absent. The
	// resulting quantity never goes below zero.
	AdjustStock(ctx context.Context, dealerID, productID uint, delta int) (*Stock, error)
	GetStock(ctx context.Context, id uint) (*Stock, error)
	ListStock(ctx context.Context, req PageRequest, dealerID uint) (*PageResult[Stock], error)
	DeleteStock(ctx context.Context, id uint) error
}
