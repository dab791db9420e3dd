package pricing

import (
	"github.com/andy/playbill/internal/domain"
)

// EnrichedPerformance is a copy of a performance with its resolved play attached
type EnrichedPerformance struct {
	domain.Performance
	Play domain.Play
}

// Line is one computed statement line
type Line struct {
	PlayID   string
	PlayName string
	Genre    domain.Genre
	Audience int
	Amount   int64
	Credits  int
}

// Statement is the computed data behind a rendered statement
type Statement struct {
	Customer     string
	Lines        []Line
	TotalAmount  int64
	TotalCredits int
}

// Enrich resolves every performance's play. The result shares no memory with the inputs.
func Enrich(inv domain.Invoice, catalog domain.Catalog) ([]EnrichedPerformance, error) {
	out := make([]EnrichedPerformance, 0, len(inv.Performances))
	for i, perf := range inv.Performances {
		play, err := catalog.Resolve(perf.PlayID)
		if err != nil {
			return nil, &PerformanceError{Index: i, PlayID: perf.PlayID, Err: err}
		}
		out = append(out, EnrichedPerformance{Performance: perf, Play: play})
	}
	return out, nil
}

// BuildStatement computes every line and the totals for an invoice.
// Any lookup or pricing error aborts the whole statement.
func BuildStatement(inv domain.Invoice, catalog domain.Catalog) (*Statement, error) {
	perfs, err := Enrich(inv, catalog)
	if err != nil {
		return nil, err
	}

	stmt := &Statement{
		Customer: inv.Customer,
		Lines:    make([]Line, 0, len(perfs)),
	}

	for i, perf := range perfs {
		amount, err := AmountFor(perf.Performance, perf.Play)
		if err != nil {
			return nil, &PerformanceError{Index: i, PlayID: perf.PlayID, Err: err}
		}
		credits := VolumeCreditsFor(perf.Performance, perf.Play)

		stmt.Lines = append(stmt.Lines, Line{
			PlayID:   perf.PlayID,
			PlayName: perf.Play.Name,
			Genre:    perf.Play.Genre,
			Audience: perf.Audience,
			Amount:   amount,
			Credits:  credits,
		})
		stmt.TotalAmount += amount
		stmt.TotalCredits += credits
	}

	return stmt, nil
}
