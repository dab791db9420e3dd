package repository

import (
	"context"
	"strings"

	"github.com/andy/playbill/internal/domain"
)

// InvoiceRepo is a file implementation of InvoiceRepository
type InvoiceRepo struct {
	path string
}

// NewInvoiceRepo creates a new InvoiceRepo reading from path
func NewInvoiceRepo(path string) *InvoiceRepo {
	return &InvoiceRepo{path: path}
}

// List reads every invoice in file order
func (r *InvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var invoices []domain.Invoice
	if err := decodeFile(r.path, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetByCustomer returns the first invoice for customer (case-insensitive), or nil
func (r *InvoiceRepo) GetByCustomer(ctx context.Context, customer string) (*domain.Invoice, error) {
	invoices, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		if strings.EqualFold(strings.TrimSpace(inv.Customer), strings.TrimSpace(customer)) {
			found := inv
			return &found, nil
		}
	}
	return nil, nil
}
