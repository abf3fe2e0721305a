package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// --- mocks ---

type mockSaleRepo struct {
	sales  map[uint]*domain.Sale
	nextID uint
}

func newMockRepo() *mockSaleRepo {
	return &mockSaleRepo{sales: make(map[uint]*domain.Sale), nextID: 1}
}

func (m *mockSaleRepo) Create(_ context.Context, sale *domain.Sale) error {
	for _, s := range m.sales {
		if s.Serial == sale.Serial {
			return domain.NewAppError(domain.CodeAlreadyExists, "already exists", nil)
		}
	}
	sale.ID = m.nextID
	m.nextID++
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepo) GetByID(_ context.Context, id uint) (*domain.Sale, error) {
	s, ok := m.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockSaleRepo) GetBySerial(_ context.Context, serial string) (*domain.Sale, error) {
	for _, s := range m.sales {
		if s.Serial == serial {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSaleRepo) List(_ context.Context, req domain.PageRequest, dealerID uint) (*domain.PageResult[domain.Sale], error) {
	items := make([]domain.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		if dealerID == 0 || s.DealerID == dealerID {
			items = append(items, *s)
		}
	}
	return &domain.PageResult[domain.Sale]{
		Skip:  req.Offset(),
		Take:  req.PageSize,
		Total: int64(len(items)),
		Data:  items,
	}, nil
}

func (m *mockSaleRepo) ListExpiringBetween(_ context.Context, _, _ time.Time) ([]domain.Sale, error) {
	return nil, nil
}

func (m *mockSaleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sales, id)
	return nil
}

type stubDealerRepo struct{ existing map[uint]bool }

func (s *stubDealerRepo) Create(_ context.Context, _ *domain.Dealer) error { return nil }
func (s *stubDealerRepo) GetByID(_ context.Context, id uint) (*domain.Dealer, error) {
	if !s.existing[id] {
		return nil, domain.ErrNotFound
	}
	return &domain.Dealer{BaseModel: domain.BaseModel{ID: id}}, nil
}
func (s *stubDealerRepo) List(_ context.Context, _ domain.PageRequest, _ uint) (*domain.PageResult[domain.Dealer], error) {
	return nil, nil
}
func (s *stubDealerRepo) Update(_ context.Context, _ *domain.Dealer) error { return nil }
func (s *stubDealerRepo) Delete(_ context.Context, _ uint) error           { return nil }

type stubProductRepo struct{ products map[uint]*domain.Product }

func (s *stubProductRepo) Create(_ context.Context, _ *domain.Product) error { return nil }
func (s *stubProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (s *stubProductRepo) List(_ context.Context, _ domain.PageRequest, _ uint) (*domain.PageResult[domain.Product], error) {
	return nil, nil
}
func (s *stubProductRepo) Update(_ context.Context, _ *domain.Product) error { return nil }
func (s *stubProductRepo) Delete(_ context.Context, _ uint) error            { return nil }

func newService() domain.SaleService {
	return NewService(
		newMockRepo(),
		&stubDealerRepo{existing: map[uint]bool{1: true}},
		&stubProductRepo{products: map[uint]*domain.Product{
			10: {BaseModel: domain.BaseModel{ID: 10}, CompanyID: 1, Name: "Circulation Pump", SKU: "CP-100", WarrantyDays: 365},
		}},
	)
}

// --- tests ---

func TestRecordSale_CopiesProductWarranty(t *testing.T) {
	svc := newService()

	sale, err := svc.RecordSale(context.Background(), domain.SaleInput{
		DealerID:     1,
		ProductID:    10,
		CustomerName: "Maria Costa",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if sale.WarrantyDays != 365 {
		t.Errorf("WarrantyDays=%d; want 365 copied from product", sale.WarrantyDays)
	}
	if sale.Serial == "" {
		t.Error("expected a generated serial")
	}
	if sale.SoldAt.IsZero() {
		t.Error("expected SoldAt to default to now")
	}
}

func TestRecordSale_WarrantyOverride(t *testing.T) {
	svc := newService()

	override := 90
	sale, err := svc.RecordSale(context.Background(), domain.SaleInput{
		DealerID:     1,
		ProductID:    10,
		CustomerName: "Maria Costa",
		WarrantyDays: &override,
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if sale.WarrantyDays != 90 {
		t.Errorf("WarrantyDays=%d; want 90", sale.WarrantyDays)
	}
}

func TestRecordSale_NegativeOverrideCoerced(t *testing.T) {
	svc := newService()

	override := -5
	sale, err := svc.RecordSale(context.Background(), domain.SaleInput{
		DealerID:     1,
		ProductID:    10,
		CustomerName: "Maria Costa",
		WarrantyDays: &override,
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if sale.WarrantyDays != 0 {
		t.Errorf("WarrantyDays=%d; want 0", sale.WarrantyDays)
	}
}

func TestRecordSale_UniqueSerials(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	in := domain.SaleInput{DealerID: 1, ProductID: 10, CustomerName: "Maria Costa"}
	first, err := svc.RecordSale(ctx, in)
	if err != nil {
		t.Fatalf("first RecordSale: %v", err)
	}
	second, err := svc.RecordSale(ctx, in)
	if err != nil {
		t.Fatalf("second RecordSale: %v", err)
	}
	if first.Serial == second.Serial {
		t.Errorf("serials collide: %q", first.Serial)
	}
}

func TestRecordSale_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.SaleInput
	}{
		{"missing dealer", domain.SaleInput{ProductID: 10, CustomerName: "Maria Costa"}},
		{"unknown dealer", domain.SaleInput{DealerID: 99, ProductID: 10, CustomerName: "Maria Costa"}},
		{"missing product", domain.SaleInput{DealerID: 1, CustomerName: "Maria Costa"}},
		{"unknown product", domain.SaleInput{DealerID: 1, ProductID: 999, CustomerName: "Maria Costa"}},
		{"missing customer", domain.SaleInput{DealerID: 1, ProductID: 10}},
		{"short customer", domain.SaleInput{DealerID: 1, ProductID: 10, CustomerName: "M"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			_, err := svc.RecordSale(context.Background(), tt.in)
			var appErr *domain.AppError
			if !errors.As(err, &appErr) || appErr.Code != domain.CodeValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
