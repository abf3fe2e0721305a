package dealer

import "github.com/gin-gonic/gin"

// DealerModule implements the app.Module interface for the dealer domain.
type DealerModule struct {
	handler *DealerHandler
}

// NewModule creates a new DealerModule with the given handler.
// Panics if h is nil.
func NewModule(h *DealerHandler) *DealerModule {
	if h == nil {
		panic("dealer.NewModule: handler must not be nil")
	}
	return &DealerModule{handler: h}
}

// RegisterRoutes registers dealer API routes.
func (m *DealerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/dealers", m.handler.Create)
	api.GET("/dealers/:id", m.handler.Get)
	api.GET("/dealers", m.handler.List)
	api.PUT("/dealers/:id", m.handler.Update)
	api.DELETE("/dealers/:id", m.handler.Delete)
}
