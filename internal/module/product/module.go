package product

import "github.com/gin-gonic/gin"

// ProductModule implements the app.Module interface for the product domain.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a new ProductModule with the given handler.
// Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers product API routes.
func (m *ProductModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/products", m.handler.Create)
	api.GET("/products/:id", m.handler.Get)
	api.GET("/products", m.handler.List)
	api.PUT("/products/:id", m.handler.Update)
	api.DELETE("/products/:id", m.handler.Delete)
}
