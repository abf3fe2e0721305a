package sale

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Sale{}, &domain.Stock{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newSale(serial string) *domain.Sale {
	return &domain.Sale{
		DealerID:     1,
		ProductID:    10,
		Serial:       serial,
		CustomerName: "Maria Costa",
		SoldAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		WarrantyDays: 365,
	}
}

func TestRepository_Create_ConsumesStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	stock := &domain.Stock{DealerID: 1, ProductID: 10, Quantity: 3}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	if err := repo.Create(ctx, newSale("S-001")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got domain.Stock
	if err := db.First(&got, stock.ID).Error; err != nil {
		t.Fatalf("reload stock: %v", err)
	}
	if got.Quantity != 2 {
		t.Errorf("Quantity=%d; want 2", got.Quantity)
	}
}

func TestRepository_Create_NoStockRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// A sale without a matching stock row still succeeds.
	if err := repo.Create(context.Background(), newSale("S-001")); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestRepository_Create_EmptyStockNotDecremented(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	stock := &domain.Stock{DealerID: 1, ProductID: 10, Quantity: 0}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	if err := repo.Create(ctx, newSale("S-001")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got domain.Stock
	if err := db.First(&got, stock.ID).Error; err != nil {
		t.Fatalf("reload stock: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("Quantity=%d; want 0", got.Quantity)
	}
}

func TestRepository_Create_DuplicateSerial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newSale("S-001")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, newSale("S-001"))
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepository_GetBySerial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newSale("S-042")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySerial(ctx, "S-042")
	if err != nil {
		t.Fatalf("GetBySerial: %v", err)
	}
	if got.CustomerName != "Maria Costa" {
		t.Errorf("CustomerName=%q; want Maria Costa", got.CustomerName)
	}

	if _, err := repo.GetBySerial(ctx, "missing"); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_ListExpiringBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		// ends Jan 11
		{DealerID: 1, ProductID: 10, Serial: "A", CustomerName: "One", SoldAt: base, WarrantyDays: 10},
		// ends Jan 31
		{DealerID: 1, ProductID: 10, Serial: "B", CustomerName: "Two", SoldAt: base, WarrantyDays: 30},
		// ends Dec 27 next year
		{DealerID: 1, ProductID: 10, Serial: "C", CustomerName: "Three", SoldAt: base, WarrantyDays: 725},
	}
	for i := range sales {
		if err := repo.Create(ctx, &sales[i]); err != nil {
			t.Fatalf("Create %s: %v", sales[i].Serial, err)
		}
	}

	from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListExpiringBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("ListExpiringBetween: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sales; want 2", len(got))
	}
	serials := map[string]bool{got[0].Serial: true, got[1].Serial: true}
	if !serials["A"] || !serials["B"] {
		t.Errorf("got serials %v; want A and B", serials)
	}
}

func TestRepository_List_DealerScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	s1 := newSale("S-001")
	s2 := newSale("S-002")
	s2.DealerID = 2
	if err := repo.Create(ctx, s1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, s2); err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := repo.List(ctx, domain.PageRequest{Page: 1, PageSize: 20, Sort: "id:asc"}, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}
