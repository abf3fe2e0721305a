package company

import (
	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// CompanyHandler handles REST API requests for the company resource.
type CompanyHandler struct {
	svc domain.CompanyService
}

// NewHandler creates a new CompanyHandler with the given service.
func NewHandler(svc domain.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// Create handles POST /api/v1/companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	company, err := h.svc.CreateCompany(c.Request.Context(), req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, company)
}

// Get handles GET /api/v1/companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	company, err := h.svc.GetCompany(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, company)
}

// List handles GET /api/v1/companies.
func (h *CompanyHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListCompanies(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateCompanyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	company, err := h.svc.UpdateCompany(c.Request.Context(), id, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, company)
}

// Delete handles DELETE /api/v1/companies/:id.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteCompany(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
