package sale

import "github.com/gin-gonic/gin"

// SaleModule implements the app.Module interface for the sale domain.
type SaleModule struct {
	handler *SaleHandler
}

// NewModule creates a new SaleModule with the given handler.
// Panics if h is nil.
func NewModule(h *SaleHandler) *SaleModule {
	if h == nil {
		panic("sale.NewModule: handler must not be nil")
	}
	return &SaleModule{handler: h}
}

// RegisterRoutes registers sale API routes.
func (m *SaleModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sales", m.handler.Record)
	api.GET("/sales/:id", m.handler.Get)
	api.GET("/sales", m.handler.List)
	api.DELETE("/sales/:id", m.handler.Delete)
}
