package dealer

import (
	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// DealerHandler handles REST API requests for the dealer resource.
type DealerHandler struct {
	svc domain.DealerService
}

// NewHandler creates a new DealerHandler with the given service.
func NewHandler(svc domain.DealerService) *DealerHandler {
	return &DealerHandler{svc: svc}
}

// Create handles POST /api/v1/dealers.
func (h *DealerHandler) Create(c *gin.Context) {
	var req CreateDealerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dealer, err := h.svc.CreateDealer(c.Request.Context(), domain.DealerInput{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, dealer)
}

// Get handles GET /api/v1/dealers/:id.
func (h *DealerHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	dealer, err := h.svc.GetDealer(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, dealer)
}

// List handles GET /api/v1/dealers. An optional company_id query parameter
// scopes the result to one company.
func (h *DealerHandler) List(c *gin.Context) {
	companyID, err := pkg.ScopeID(c, "company_id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListDealers(c.Request.Context(), req, companyID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/dealers/:id.
func (h *DealerHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateDealerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dealer, err := h.svc.UpdateDealer(c.Request.Context(), id, domain.DealerInput{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, dealer)
}

// Delete handles DELETE /api/v1/dealers/:id.
func (h *DealerHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteDealer(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
