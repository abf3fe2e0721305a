package stock

// AdjustStockRequest represents a stock level adjustment. Delta may be
// negative to remove units; the resulting quantity is clamped at zero.
type AdjustStockRequest struct {
	DealerID  uint `json:"dealer_id" form:"dealer_id" binding:"required"`
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
	Delta     int  `json:"delta" form:"delta" binding:"required"`
}
