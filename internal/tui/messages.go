package tui

import (
	"github.com/andy/playbill/internal/domain"
	"github.com/andy/playbill/internal/service"
)

// dataMsg carries the invoices and catalog loaded from disk
type dataMsg struct {
	invoices []domain.Invoice
	catalog  domain.Catalog
	err      error
}

// statementMsg carries a rendered statement or the reason it was rejected
type statementMsg struct {
	customer string
	result   *service.StatementResult
	err      error
}
