// Package statement renders billing statements as plain text.
package statement

import (
	"fmt"
	"strings"

	"github.com/andy/playbill/internal/domain"
	"github.com/andy/playbill/internal/pricing"
)

// Renderer turns invoices into statement text using a currency formatter and labels.
// The zero value renders US dollars with Korean labels.
type Renderer struct {
	Format Formatter
	Labels Labels
}

// New creates a renderer
func New(format Formatter, labels Labels) *Renderer {
	return &Renderer{Format: format, Labels: labels}
}

// Render computes and renders the statement for an invoice.
// On error no text is returned.
func (r *Renderer) Render(inv domain.Invoice, catalog domain.Catalog) (string, error) {
	stmt, err := pricing.BuildStatement(inv, catalog)
	if err != nil {
		return "", err
	}
	return r.RenderStatement(stmt), nil
}

// RenderStatement renders already computed statement data
func (r *Renderer) RenderStatement(stmt *pricing.Statement) string {
	format := r.Format
	if format == nil {
		format = USD
	}
	labels := r.Labels
	if labels == (Labels{}) {
		labels = KoreanLabels
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(labels.Header, stmt.Customer) + "\n")
	for _, line := range stmt.Lines {
		b.WriteString(fmt.Sprintf(labels.Line, line.PlayName, format(line.Amount), line.Audience) + "\n")
	}
	b.WriteString(fmt.Sprintf(labels.Total, format(stmt.TotalAmount)) + "\n")
	b.WriteString(fmt.Sprintf(labels.Credits, stmt.TotalCredits) + "\n")
	return b.String()
}

// Render renders an invoice with the default renderer
func Render(inv domain.Invoice, catalog domain.Catalog) (string, error) {
	return (&Renderer{}).Render(inv, catalog)
}
