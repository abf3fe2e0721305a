package registry

import "github.com/gin-gonic/gin"

// RegistryModule implements the app.Module interface for the registry proxy.
// The proxy is read-only; it never registers mutating routes.
type RegistryModule struct {
	handler *RegistryHandler
}

// NewModule creates a new RegistryModule with the given handler.
// Panics if h is nil.
func NewModule(h *RegistryHandler) *RegistryModule {
	if h == nil {
		panic("registry.NewModule: handler must not be nil")
	}
	return &RegistryModule{handler: h}
}

// RegisterRoutes registers registry proxy API routes.
func (m *RegistryModule) RegisterRoutes(api *gin.RouterGroup) {
	reg := api.Group("/registry")
	reg.GET("/products", m.handler.Products)
	reg.GET("/dealers", m.handler.Dealers)
}
