package pkg

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// txConn implements gorm.ConnPool + gorm.TxCommitter, acting as the
// transaction connection returned by BeginTx.
type txConn struct {
	committed  bool
	rolledBack bool
}

func (m *txConn) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }
func (m *txConn) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (m *txConn) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (m *txConn) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (m *txConn) Commit() error                                                    { m.committed = true; return nil }
func (m *txConn) Rollback() error                                                  { m.rolledBack = true; return nil }

// txBeginner implements gorm.ConnPool + gorm.ConnPoolBeginner.
type txBeginner struct {
	conn     *txConn
	beginErr error
}

func (m *txBeginner) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }
func (m *txBeginner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (m *txBeginner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (m *txBeginner) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (m *txBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (gorm.ConnPool, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return m.conn, nil
}

func newMockDB(beginner *txBeginner) *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{
		DB:       db,
		ConnPool: beginner,
	}
	return db
}

func TestWithTx_CommitOnSuccess(t *testing.T) {
	conn := &txConn{}
	db := newMockDB(&txBeginner{conn: conn})

	err := WithTx(db, func(tx *gorm.DB) error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !conn.committed {
		t.Fatal("expected Commit to be called")
	}
	if conn.rolledBack {
		t.Fatal("Rollback should not be called on success")
	}
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	conn := &txConn{}
	db := newMockDB(&txBeginner{conn: conn})

	fnErr := errors.New("fn failed")
	err := WithTx(db, func(tx *gorm.DB) error {
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if !conn.rolledBack {
		t.Fatal("expected Rollback to be called")
	}
	if conn.committed {
		t.Fatal("Commit should not be called on fn error")
	}
}

func TestWithTx_RollbackAndRepanic(t *testing.T) {
	conn := &txConn{}
	db := newMockDB(&txBeginner{conn: conn})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "boom" {
			t.Fatalf("expected panic value 'boom', got %v", r)
		}
		if !conn.rolledBack {
			t.Fatal("expected Rollback on panic")
		}
		if conn.committed {
			t.Fatal("Commit should not be called on panic")
		}
	}()

	WithTx(db, func(tx *gorm.DB) error {
		panic("boom")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := newMockDB(&txBeginner{beginErr: errors.New("begin failed")})

	err := WithTx(db, func(tx *gorm.DB) error {
		t.Fatal("fn should not be called when Begin fails")
		return nil
	})
	if err == nil {
		t.Fatal("expected error from Begin, got nil")
	}
}

// saleRow mirrors the shape of the sale-plus-stock write that runs inside
// WithTx in production, reduced to one table for the integration check.
type saleRow struct {
	ID     uint   `gorm:"primaryKey"`
	Serial string `gorm:"size:36;uniqueIndex"`
}

func newTxTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&saleRow{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestWithTx_SQLite_CommitOnSuccess(t *testing.T) {
	db := newTxTestDB(t)

	err := WithTx(db, func(tx *gorm.DB) error {
		return tx.Create(&saleRow{Serial: "SN-001"}).Error
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var count int64
	db.Model(&saleRow{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row after commit, got %d", count)
	}
}

func TestWithTx_SQLite_RollbackOnError(t *testing.T) {
	db := newTxTestDB(t)

	fnErr := errors.New("second write failed")
	err := WithTx(db, func(tx *gorm.DB) error {
		if err := tx.Create(&saleRow{Serial: "SN-002"}).Error; err != nil {
			t.Fatalf("insert should succeed: %v", err)
		}
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Fatalf("expected fn error, got %v", err)
	}

	var count int64
	db.Model(&saleRow{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected 0 rows after rollback, got %d", count)
	}
}

func TestWithTx_SQLite_RollbackOnPanic(t *testing.T) {
	db := newTxTestDB(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}

		var count int64
		db.Model(&saleRow{}).Count(&count)
		if count != 0 {
			t.Fatalf("expected 0 rows after panic rollback, got %d", count)
		}
	}()

	WithTx(db, func(tx *gorm.DB) error {
		if err := tx.Create(&saleRow{Serial: "SN-003"}).Error; err != nil {
			t.Fatalf("insert should succeed: %v", err)
		}
		panic("kaboom")
	})
}
