package product

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// ProductHandler handles REST API requests for the product resource.
type ProductHandler struct {
	svc domain.ProductService
}

// NewHandler creates a new ProductHandler with the given service.
func NewHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), domain.ProductInput{
		CompanyID:      req.CompanyID,
		Name:           req.Name,
		SKU:            req.SKU,
		WarrantyYears:  req.WarrantyYears,
		WarrantyMonths: req.WarrantyMonths,
		WarrantyDaysIn: req.WarrantyDays,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, NewProductResponse(*product))
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, NewProductResponse(*product))
}

// List handles GET /api/v1/products. An optional company_id query parameter
// scopes the result to one company.
func (h *ProductHandler) List(c *gin.Context) {
	companyID, err := pkg.ScopeID(c, "company_id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListProducts(c.Request.Context(), req, companyID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, &domain.PageResult[ProductResponse]{
		Skip:  result.Skip,
		Take:  result.Take,
		Total: result.Total,
		Data:  lo.Map(result.Data, func(p domain.Product, _ int) ProductResponse { return NewProductResponse(p) }),
	})
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), id, domain.ProductInput{
		CompanyID:      req.CompanyID,
		Name:           req.Name,
		SKU:            req.SKU,
		WarrantyYears:  req.WarrantyYears,
		WarrantyMonths: req.WarrantyMonths,
		WarrantyDaysIn: req.WarrantyDays,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, NewProductResponse(*product))
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
