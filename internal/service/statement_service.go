package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andy/playbill/internal/domain"
	"github.com/andy/playbill/internal/pricing"
	"github.com/andy/playbill/internal/repository"
	"github.com/andy/playbill/internal/statement"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// StatementResult is a rendered statement together with the data behind it
type StatementResult struct {
	Invoice   domain.Invoice
	Statement *pricing.Statement
	Text      string
}

// InvoiceSummary is a one-line overview of an invoice
type InvoiceSummary struct {
	Customer     string
	Performances int
	Audience     int
	TotalAmount  int64
	TotalCredits int
}

// StatementService loads invoices and plays and produces statements
type StatementService interface {
	// Catalog returns the current play catalog
	Catalog(ctx context.Context) (domain.Catalog, error)

	// ListInvoices returns all invoices in file order
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// Summaries computes totals for every invoice
	Summaries(ctx context.Context) ([]InvoiceSummary, error)

	// Render renders the statement for the named customer
	Render(ctx context.Context, customer string) (*StatementResult, error)

	// RenderAll renders every invoice. Any failure aborts the whole run.
	RenderAll(ctx context.Context) ([]*StatementResult, error)

	// RenderInvoice renders a single invoice against the given catalog
	RenderInvoice(ctx context.Context, inv domain.Invoice, catalog domain.Catalog) (*StatementResult, error)
}

type statementService struct {
	catalogRepo repository.CatalogRepository
	invoiceRepo repository.InvoiceRepository
	renderer    *statement.Renderer
	logger      *zap.Logger
}

// NewStatementService creates a new statement service
func NewStatementService(
	catalogRepo repository.CatalogRepository,
	invoiceRepo repository.InvoiceRepository,
	renderer *statement.Renderer,
	logger *zap.Logger,
) StatementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if renderer == nil {
		renderer = &statement.Renderer{}
	}
	return &statementService{
		catalogRepo: catalogRepo,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (s *statementService) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plays: %w", err)
	}
	s.logger.Debug("loaded play catalog", zap.Int("plays", len(catalog)))
	return catalog, nil
}

func (s *statementService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	s.logger.Debug("loaded invoices", zap.Int("invoices", len(invoices)))
	return invoices, nil
}

func (s *statementService) Summaries(ctx context.Context) ([]InvoiceSummary, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]InvoiceSummary, 0, len(invoices))
	for i, inv := range invoices {
		amount, err := pricing.TotalAmount(inv, catalog)
		if err != nil {
			return nil, fmt.Errorf("invoice %d (%s): %w", i+1, inv.Customer, err)
		}
		credits, err := pricing.TotalVolumeCredits(inv, catalog)
		if err != nil {
			return nil, fmt.Errorf("invoice %d (%s): %w", i+1, inv.Customer, err)
		}
		summaries = append(summaries, InvoiceSummary{
			Customer:     inv.Customer,
			Performances: len(inv.Performances),
			Audience:     inv.TotalAudience(),
			TotalAmount:  amount,
			TotalCredits: credits,
		})
	}
	return summaries, nil
}

func (s *statementService) Render(ctx context.Context, customer string) (*StatementResult, error) {
	inv, err := s.invoiceRepo.GetByCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: customer %q", ErrInvoiceNotFound, customer)
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.RenderInvoice(ctx, *inv, catalog)
}

func (s *statementService) RenderAll(ctx context.Context) ([]*StatementResult, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*StatementResult, 0, len(invoices))
	for i, inv := range invoices {
		result, err := s.RenderInvoice(ctx, inv, catalog)
		if err != nil {
			return nil, fmt.Errorf("invoice %d (%s): %w", i+1, inv.Customer, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *statementService) RenderInvoice(
	ctx context.Context,
	inv domain.Invoice,
	catalog domain.Catalog,
) (*StatementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stmt, err := pricing.BuildStatement(inv, catalog)
	if err != nil {
		s.logger.Warn("statement rejected",
			zap.String("customer", inv.Customer),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("statement rendered",
		zap.String("customer", stmt.Customer),
		zap.Int("lines", len(stmt.Lines)),
		zap.Int64("total_amount", stmt.TotalAmount),
		zap.Int("total_credits", stmt.TotalCredits))

	return &StatementResult{
		Invoice:   inv.Clone(),
		Statement: stmt,
		Text:      s.renderer.RenderStatement(stmt),
	}, nil
}
