package repository

import (
	"context"

	"github.com/andy/playbill/internal/domain"
)

// CatalogRepository supplies the play catalog
type CatalogRepository interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

// InvoiceRepository supplies invoices in file order
type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByCustomer(ctx context.Context, customer string) (*domain.Invoice, error) // Returns nil if no invoice matches
}
