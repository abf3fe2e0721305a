package sale

import (
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/warranty"
)

// RecordSaleRequest represents the input for recording a sale. When
// warranty_days is omitted the product's current warranty period is copied.
// sold_at defaults to the current time when omitted.
type RecordSaleRequest struct {
	DealerID      uint       `json:"dealer_id" form:"dealer_id" binding:"required"`
	ProductID     uint       `json:"product_id" form:"product_id" binding:"required"`
	CustomerName  string     `json:"customer_name" form:"customer_name" binding:"required,min=2,max=150"`
	CustomerPhone string     `json:"customer_phone" form:"customer_phone" binding:"omitempty,max=30"`
	SoldAt        *time.Time `json:"sold_at" form:"sold_at" binding:"omitempty"`
	WarrantyDays  *int       `json:"warranty_days" form:"warranty_days" binding:"omitempty,min=0"`
}

// SaleResponse is the API representation of a sale: the stored row plus the
// derived warranty state at response time.
type SaleResponse struct {
	domain.Sale
	WarrantyStatus warranty.Status `json:"warranty_status"`
	DaysLeft       int             `json:"days_left"`
	WarrantyEnd    time.Time       `json:"warranty_end"`
}

// NewSaleResponse builds a SaleResponse with the warranty state computed at now.
func NewSaleResponse(s domain.Sale, now time.Time) SaleResponse {
	info := warranty.StatusAt(s.SoldAt, s.WarrantyDays, now)
	return SaleResponse{
		Sale:           s,
		WarrantyStatus: info.Status,
		DaysLeft:       info.DaysLeft,
		WarrantyEnd:    info.End,
	}
}
