package sale

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/middleware"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// SaleHandler handles REST API requests for the sale resource.
type SaleHandler struct {
	svc domain.SaleService
}

// NewHandler creates a new SaleHandler with the given service.
func NewHandler(svc domain.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Record handles POST /api/v1/sales. The acting user from the auth
// middleware is stored as the selling user.
func (h *SaleHandler) Record(c *gin.Context) {
	var req RecordSaleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	in := domain.SaleInput{
		DealerID:      req.DealerID,
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		WarrantyDays:  req.WarrantyDays,
		SoldByUserID:  middleware.GetUserID(c),
	}
	if req.SoldAt != nil {
		in.SoldAt = *req.SoldAt
	}

	sale, err := h.svc.RecordSale(c.Request.Context(), in)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, NewSaleResponse(*sale, time.Now()))
}

// Get handles GET /api/v1/sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	sale, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, NewSaleResponse(*sale, time.Now()))
}

// List handles GET /api/v1/sales. An optional dealer_id query parameter
// scopes the result to one dealer. Each row carries the warranty state
// derived at response time.
func (h *SaleHandler) List(c *gin.Context) {
	dealerID, err := pkg.ScopeID(c, "dealer_id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListSales(c.Request.Context(), req, dealerID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	now := time.Now()
	pkg.List(c, &domain.PageResult[SaleResponse]{
		Skip:  result.Skip,
		Take:  result.Take,
		Total: result.Total,
		Data:  lo.Map(result.Data, func(s domain.Sale, _ int) SaleResponse { return NewSaleResponse(s, now) }),
	})
}

// Delete handles DELETE /api/v1/sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteSale(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
