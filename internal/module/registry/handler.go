package registry

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
	"github.com/dealerdesk/dealerdesk/internal/remote"
	"github.com/dealerdesk/dealerdesk/internal/table"
)

// RegistryHandler proxies read-only list queries to the upstream dealer
// registry through long-lived table sessions. Each (root field, scope)
// pair keeps its own session, so repeat queries are served from cache,
// slow upstream responses can never clobber newer ones, and a failed
// refresh keeps the previous page on screen alongside the error.
type RegistryHandler struct {
	products *sessionPool[ProductRow]
	dealers  *sessionPool[DealerRow]
}

// NewHandler creates a RegistryHandler over the given upstream client.
// cacheSize bounds each session's response cache.
func NewHandler(client *remote.Client, cacheSize int) *RegistryHandler {
	return &RegistryHandler{
		products: newSessionPool[ProductRow](client, "registryProducts", "products", cacheSize),
		dealers:  newSessionPool[DealerRow](client, "registryDealers", "dealers", cacheSize),
	}
}

// Products handles GET /api/v1/registry/products.
func (h *RegistryHandler) Products(c *gin.Context) {
	serve(c, h.products, []string{"company_id"})
}

// Dealers handles GET /api/v1/registry/dealers.
func (h *RegistryHandler) Dealers(c *gin.Context) {
	serve(c, h.dealers, []string{"company_id", "city"})
}

// InvalidateAll drops every cached registry page. Wired to mutation paths
// elsewhere, never exposed as a route of this module.
func (h *RegistryHandler) InvalidateAll() {
	h.products.invalidateAll()
	h.dealers.invalidateAll()
}

// serve resolves one proxy request: the query parameters become the
// session's state, and `refresh=true` forces a cache-bypassing retry.
func serve[T any](c *gin.Context, pool *sessionPool[T], scopeParams []string) {
	scope := make(map[string]string)
	for _, p := range scopeParams {
		if v := c.Query(p); v != "" {
			scope[p] = v
		}
	}

	sess, err := pool.get(scope)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "create registry session", err))
		return
	}

	page := parseIntDefault(c.Query("page"), 1)
	pageSize := parseIntDefault(c.Query("page_size"), 0)

	sess.Update(func(st *table.State) {
		st.SetSearch(c.Query("search"))
		st.SetSorts(parseSorts(c.Query("sort")))
		if pageSize > 0 {
			st.SetPageSize(pageSize)
		}
		// Last: search and page-size changes above reset the index.
		st.SetPageIndex(page - 1)
	})

	var res *domain.PageResult[T]
	if c.Query("refresh") == "true" {
		res, err = sess.Retry(c.Request.Context())
	} else {
		res, err = sess.Load(c.Request.Context())
	}

	if err != nil {
		// The previous page rides along as placeholder data.
		status := domain.HTTPStatusCode(err)
		msg := "internal error"
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		c.JSON(status, pkg.Response{Code: status, Message: msg, Data: res})
		return
	}

	pkg.List(c, res)
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// parseSorts parses the "col:dir,col:dir" wire form. Unknown directions
// default to ascending.
func parseSorts(raw string) []table.SortSpec {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	specs := make([]table.SortSpec, 0, len(parts))
	for _, p := range parts {
		col, dir, _ := strings.Cut(strings.TrimSpace(p), ":")
		if col == "" {
			continue
		}
		d := table.Ascending
		if dir == string(table.Descending) {
			d = table.Descending
		}
		specs = append(specs, table.SortSpec{Column: col, Direction: d})
	}
	return specs
}
