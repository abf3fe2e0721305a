package dealer

import (
	"context"
	"fmt"
	"testing"

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
	if err := db.AutoMigrate(&domain.Company{}, &domain.Dealer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dealer := &domain.Dealer{CompanyID: 1, Name: "Harbor Supply", Email: "harbor@example.com"}
	if err := repo.Create(ctx, dealer); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, dealer.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Harbor Supply" || got.CompanyID != 1 {
		t.Errorf("got %+v; want Harbor Supply in company 1", got)
	}
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	d1 := &domain.Dealer{CompanyID: 1, Name: "Harbor Supply", Email: "dup@example.com"}
	if err := repo.Create(ctx, d1); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	d2 := &domain.Dealer{CompanyID: 2, Name: "Dockside Traders", Email: "dup@example.com"}
	err := repo.Create(ctx, d2)
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepository_List_CompanyScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		companyID := uint(1)
		if i > 4 {
			companyID = 2
		}
		d := &domain.Dealer{
			CompanyID: companyID,
			Name:      fmt.Sprintf("Dealer%02d", i),
			Email:     fmt.Sprintf("dealer%02d@example.com", i),
		}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create dealer %d: %v", i, err)
		}
	}

	req := domain.PageRequest{Page: 1, PageSize: 20, Sort: "id:asc"}

	scoped, err := repo.List(ctx, req, 1)
	if err != nil {
		t.Fatalf("List scoped: %v", err)
	}
	if scoped.Total != 4 {
		t.Errorf("scoped Total=%d; want 4", scoped.Total)
	}
	for _, d := range scoped.Data {
		if d.CompanyID != 1 {
			t.Errorf("dealer %q has CompanyID=%d; want 1", d.Name, d.CompanyID)
		}
	}

	all, err := repo.List(ctx, req, 0)
	if err != nil {
		t.Fatalf("List unscoped: %v", err)
	}
	if all.Total != 6 {
		t.Errorf("unscoped Total=%d; want 6", all.Total)
	}
}

func TestRepository_List_SearchWithinScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dealers := []domain.Dealer{
		{CompanyID: 1, Name: "Harbor Supply", Email: "a@example.com", City: "Lisbon"},
		{CompanyID: 1, Name: "Dockside Traders", Email: "b@example.com", City: "Porto"},
		{CompanyID: 2, Name: "Harbor Outlet", Email: "c@example.com", City: "Lisbon"},
	}
	for i := range dealers {
		if err := repo.Create(ctx, &dealers[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.PageRequest{
		Page:     1,
		PageSize: 20,
		Sort:     "id:asc",
		Search:   "Harbor",
	}, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1 (search scoped to company 1)", result.Total)
	}
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	err := repo.Delete(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
