package company

import "github.com/gin-gonic/gin"

// CompanyModule implements the app.Module interface for the company domain.
type CompanyModule struct {
	handler *CompanyHandler
}

// NewModule creates a new CompanyModule with the given handler.
// Panics if h is nil.
func NewModule(h *CompanyHandler) *CompanyModule {
	if h == nil {
		panic("company.NewModule: handler must not be nil")
	}
	return &CompanyModule{handler: h}
}

// RegisterRoutes registers company API routes.
func (m *CompanyModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/companies", m.handler.Create)
	api.GET("/companies/:id", m.handler.Get)
	api.GET("/companies", m.handler.List)
	api.PUT("/companies/:id", m.handler.Update)
	api.DELETE("/companies/:id", m.handler.Delete)
}
