package sale

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSaleModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")

	NewModule(&SaleHandler{}).RegisterRoutes(api)

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/sales"},
		{http.MethodGet, "/api/v1/sales/:id"},
		{http.MethodGet, "/api/v1/sales"},
		{http.MethodDelete, "/api/v1/sales/:id"},
	}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}

	for _, exp := range expected {
		if !registered[exp.method+":"+exp.path] {
			t.Errorf("expected route %s %s to be registered", exp.method, exp.path)
		}
	}

	// Sales are immutable; no update route.
	if registered[http.MethodPut+":"+"/api/v1/sales/:id"] {
		t.Error("PUT /api/v1/sales/:id must not be registered")
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil)
}
