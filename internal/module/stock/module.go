package stock

import "github.com/gin-gonic/gin"

// StockModule implements the app.Module interface for dealer stock levels.
type StockModule struct {
	handler *StockHandler
}

// NewModule creates a new StockModule with the given handler.
// Panics if h is nil.
func NewModule(h *StockHandler) *StockModule {
	if h == nil {
		panic("stock.NewModule: handler must not be nil")
	}
	return &StockModule{handler: h}
}

// RegisterRoutes registers stock API routes.
func (m *StockModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/stock/adjust", m.handler.Adjust)
	api.GET("/stock/:id", m.handler.Get)
	api.GET("/stock", m.handler.List)
	api.DELETE("/stock/:id", m.handler.Delete)
}
