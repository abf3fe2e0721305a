package domain

import (
	"context"
	"time"
)

// Sale records a product sold by a dealer to a customer. WarrantyDays is
// copied from the product at sale time so later product edits do not change
// the warranty of past sales. Serial is generated, unique, and immutable.
type Sale struct {
	BaseModel
	DealerID      uint      `gorm:"index;not null" json:"dealer_id"`
	ProductID     uint      `gorm:"index;not null" json:"product_id"`
	Serial        string    `gorm:"size:36;uniqueIndex;not null" json:"serial"`
	CustomerName  string    `gorm:"size:150;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:30" json:"customer_phone"`
	SoldAt        time.Time `gorm:"index;not null" json:"sold_at"`
	WarrantyDays  int       `gorm:"not null" json:"warranty_days"`
	SoldByUserID  uint      `gorm:"index" json:"sold_by_user_id"`
}

// SaleRepository defines the data access interface for sales.
type SaleRepository interface {
	// Create inserts the sale and, in the same transaction, consumes one
	// unit of the dealer's stock of the product when a stock row exists.
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, id uint) (*Sale, error)
	GetBySerial(ctx context.Context, serial string) (*Sale, error)
	List(ctx context.Context, req PageRequest, dealerID uint) (*PageResult[Sale], error)
	// ListExpiringBetween returns sales whose warranty end date falls in
	// [from, to), used by the expiry scan job.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]Sale, error)
	Delete(ctx context.Context, id uint) error
}

// SaleInput carries the fields needed to record a sale. When WarrantyDays
// is nil the product's current warranty period is used.
type SaleInput struct {
	DealerID      uint
	ProductID     uint
	CustomerName  string
	CustomerPhone string
	SoldAt        time.Time
	WarrantyDays  *int
	SoldByUserID  uint
}

// SaleService defines the business logic interface for sales.
// dealerID scopes list queries; zero means all dealers.
type SaleService interface {
	RecordSale(ctx context.Context, in SaleInput) (*Sale, error)
	GetSale(ctx context.Context, id uint) (*Sale, error)
	ListSales(ctx context.Context, req PageRequest, dealerID uint) (*PageResult[Sale], error)
	DeleteSale(ctx context.Context, id uint) error
}
