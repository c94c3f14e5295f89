package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/storecore/catalog-api/internal/core/domain"
)

func newTestProductRepo(t *testing.T) (*ProductRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewProductRepository(db), mock, db
}

func productColumns() []string {
	return []string{"id", "sku", "name", "price", "currency", "description", "created_at", "updated_at"}
}

func TestProductInsert_AssignsID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	p := &domain.Product{SKU: "SKU-1", Name: "Widget", Price: 10.50, Currency: "EUR", Description: "a widget", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("SKU-1", "Widget", 10.50, "EUR", sqlmock.AnyArg(), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	if err := repo.Insert(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("expected id=7, got %d", p.ID)
	}
}

func TestProductInsert_DuplicateSKU(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	p := &domain.Product{SKU: "SKU-1", Name: "Widget", Price: 10.50, Currency: "EUR", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	if err := repo.Insert(context.Background(), p); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductFindByID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, sku, name, price, currency, description, created_at, updated_at").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(7, "SKU-1", "Widget", 10.50, "EUR", "a widget", now, now))

	p, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 || p.SKU != "SKU-1" || p.Price != 10.50 || p.Description != "a widget" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestProductFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, sku, name, price, currency, description, created_at, updated_at").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.FindByID(context.Background(), 42); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductFindByID_NullDescription(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, sku, name, price, currency, description, created_at, updated_at").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(7, "SKU-1", "Widget", 10.50, "EUR", nil, now, now))

	p, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description != "" {
		t.Fatalf("expected empty description, got %q", p.Description)
	}
}

func TestProductList_InsertionOrder(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, sku, name, price, currency, description, created_at, updated_at").
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(1, "SKU-B", "B", 1.0, "EUR", nil, now, now).
			AddRow(2, "SKU-A", "A", 2.0, "EUR", nil, now, now))

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].SKU != "SKU-B" || products[1].SKU != "SKU-A" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductUpdatePrice(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()
	mock.ExpectQuery("UPDATE products").
		WithArgs(19.99, updated, int64(7)).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(7, "SKU-1", "Widget", 19.99, "EUR", nil, created, updated))

	p, err := repo.UpdatePrice(context.Background(), 7, 19.99, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 19.99 {
		t.Fatalf("expected price 19.99, got %v", p.Price)
	}
}

func TestProductUpdatePrice_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE products").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.UpdatePrice(context.Background(), 42, 5, time.Now().UTC()); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 42); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
