package domain

import "context"

// Product represents a sellable item with a warranty period.
// WarrantyDays stores the period as a single total; the days/months/years
// components accepted by the API are combined before persisting and
// decomposed again on read.
type Product struct {
	BaseModel
	CompanyID    uint   `gorm:"index;not null" json:"company_id"`
	Name         string `gorm:"size:150;not null" json:"name"`
	SKU          string `gorm:"size:64;uniqueIndex;not null" json:"sku"`
	WarrantyDays int    `gorm:"not null" json:"warranty_days"`
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, req PageRequest, companyID uint) (*PageResult[Product], error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductInput carries the editable product fields. The warranty period
// arrives as separate components, exactly as entered in the product form.
type ProductInput struct {
	CompanyID      uint
	Name           string
	SKU            string
	WarrantyYears  int
	WarrantyMonths int
	WarrantyDaysIn int
}

// ProductService defines the business logic interface for products.
type ProductService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, req PageRequest, companyID uint) (*PageResult[Product], error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}
