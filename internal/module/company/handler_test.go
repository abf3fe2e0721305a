package company

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// --- mock service ---

type mockCompanyService struct {
	companies map[uint]*domain.Company
	nextID    uint
	createErr error
	listErr   error
}

func newMockService() *mockCompanyService {
	return &mockCompanyService{companies: make(map[uint]*domain.Company), nextID: 1}
}

func (m *mockCompanyService) CreateCompany(_ context.Context, name, email, phone, address string) (*domain.Company, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	c := &domain.Company{
		BaseModel: domain.BaseModel{ID: m.nextID},
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
	}
	m.nextID++
	m.companies[c.ID] = c
	return c, nil
}

func (m *mockCompanyService) GetCompany(_ context.Context, id uint) (*domain.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCompanyService) ListCompanies(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Company], error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	items := make([]domain.Company, 0, len(m.companies))
	for _, c := range m.companies {
		items = append(items, *c)
	}
	return &domain.PageResult[domain.Company]{
		Skip:  req.Offset(),
		Take:  req.PageSize,
		Total: int64(len(items)),
		Data:  items,
	}, nil
}

func (m *mockCompanyService) UpdateCompany(_ context.Context, id uint, name, email, phone, address string) (*domain.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Name, c.Email, c.Phone, c.Address = name, email, phone, address
	return c, nil
}

func (m *mockCompanyService) DeleteCompany(_ context.Context, id uint) error {
	if _, ok := m.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.companies, id)
	return nil
}

// setupAPIRouter creates a gin engine with the company routes for handler testing.
func setupAPIRouter(h *CompanyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(h).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestCompanyHandler_Create(t *testing.T) {
	svc := newMockService()
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	body := `{"name":"Acme Pumps","email":"info@acme.example"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != http.StatusCreated {
		t.Errorf("expected response code 201, got %d", resp.Code)
	}
}

func TestCompanyHandler_Create_ValidationError(t *testing.T) {
	svc := newMockService()
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	body := `{"name":"","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp pkg.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, ok := resp.Errors["name"]; !ok {
		t.Error("expected 'name' field in errors map")
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Error("expected 'email' field in errors map")
	}
}

func TestCompanyHandler_Create_Conflict(t *testing.T) {
	svc := newMockService()
	svc.createErr = domain.NewAppError(domain.CodeAlreadyExists, "company already exists", nil)
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	body := `{"name":"Acme Pumps"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestCompanyHandler_Get(t *testing.T) {
	svc := newMockService()
	svc.companies[1] = &domain.Company{BaseModel: domain.BaseModel{ID: 1}, Name: "Acme Pumps"}
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCompanyHandler_Get_NotFound(t *testing.T) {
	svc := newMockService()
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCompanyHandler_Get_InvalidID(t *testing.T) {
	svc := newMockService()
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCompanyHandler_List(t *testing.T) {
	svc := newMockService()
	svc.companies[1] = &domain.Company{BaseModel: domain.BaseModel{ID: 1}, Name: "Acme Pumps"}
	svc.companies[2] = &domain.Company{BaseModel: domain.BaseModel{ID: 2}, Name: "Borealis Motors"}
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Code int                               `json:"code"`
		Data domain.PageResult[domain.Company] `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Errorf("Total=%d; want 2", resp.Data.Total)
	}
	if resp.Data.Take != 10 || resp.Data.Skip != 0 {
		t.Errorf("Skip=%d Take=%d; want 0 10", resp.Data.Skip, resp.Data.Take)
	}
}

func TestCompanyHandler_Update(t *testing.T) {
	svc := newMockService()
	svc.companies[1] = &domain.Company{BaseModel: domain.BaseModel{ID: 1}, Name: "Acme Pumps"}
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	body := `{"name":"Acme Pumps Ltd"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/companies/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.companies[1].Name != "Acme Pumps Ltd" {
		t.Errorf("Name=%q; want Acme Pumps Ltd", svc.companies[1].Name)
	}
}

func TestCompanyHandler_Delete(t *testing.T) {
	svc := newMockService()
	svc.companies[1] = &domain.Company{BaseModel: domain.BaseModel{ID: 1}, Name: "Acme Pumps"}
	h := NewHandler(svc)
	r := setupAPIRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/companies/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if _, ok := svc.companies[1]; ok {
		t.Error("expected company to be deleted")
	}
}
