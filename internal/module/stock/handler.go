package stock

import (
	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// StockHandler handles REST API requests for dealer stock levels.
type StockHandler struct {
	svc domain.StockService
}

// NewHandler creates a new StockHandler with the given service.
func NewHandler(svc domain.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Adjust handles POST /api/v1/stock/adjust.
func (h *StockHandler) Adjust(c *gin.Context) {
	var req AdjustStockRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	stock, err := h.svc.AdjustStock(c.Request.Context(), req.DealerID, req.ProductID, req.Delta)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, stock)
}

// Get handles GET /api/v1/stock/:id.
func (h *StockHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	stock, err := h.svc.GetStock(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, stock)
}

// List handles GET /api/v1/stock. An optional dealer_id query parameter
// scopes the result to one dealer.
func (h *StockHandler) List(c *gin.Context) {
	dealerID, err := pkg.ScopeID(c, "dealer_id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListStock(c.Request.Context(), req, dealerID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Delete handles DELETE /api/v1/stock/:id.
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteStock(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
