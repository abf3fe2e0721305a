package product

import (
	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/warranty"
)

// CreateProductRequest represents the input for creating a new product.
// The warranty period is entered as separate year/month/day components.
type CreateProductRequest struct {
	CompanyID      uint   `json:"company_id" form:"company_id" binding:"required"`
	Name           string `json:"name" form:"name" binding:"required,min=2,max=150"`
	SKU            string `json:"sku" form:"sku" binding:"required,max=64"`
	WarrantyYears  int    `json:"warranty_years" form:"warranty_years" binding:"omitempty,min=0"`
	WarrantyMonths int    `json:"warranty_months" form:"warranty_months" binding:"omitempty,min=0"`
	WarrantyDays   int    `json:"warranty_days" form:"warranty_days" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents the input for updating an existing product.
type UpdateProductRequest struct {
	CompanyID      uint   `json:"company_id" form:"company_id" binding:"required"`
	Name           string `json:"name" form:"name" binding:"required,min=2,max=150"`
	SKU            string `json:"sku" form:"sku" binding:"required,max=64"`
	WarrantyYears  int    `json:"warranty_years" form:"warranty_years" binding:"omitempty,min=0"`
	WarrantyMonths int    `json:"warranty_months" form:"warranty_months" binding:"omitempty,min=0"`
	WarrantyDays   int    `json:"warranty_days" form:"warranty_days" binding:"omitempty,min=0"`
}

// ProductResponse is the API representation of a product: the stored day
// total plus the period decomposed back into display components.
type ProductResponse struct {
	domain.Product
	Warranty warranty.Period `json:"warranty"`
}

// NewProductResponse builds a ProductResponse from a domain product.
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		Product:  p,
		Warranty: warranty.Decompose(p.WarrantyDays),
	}
}
