// Package pricing computes performance charges and loyalty volume credits.
//
// All money is int64 minor currency units (cents). Nothing here rounds or formats;
// that happens in the statement package.
package pricing

import (
	"github.com/andy/playbill/internal/domain"
)

const (
	tragedyBase          = 40000
	tragedyAudienceLimit = 30
	tragedyPerExtraSeat  = 1000

	comedyBase          = 30000
	comedyAudienceLimit = 20
	comedyLargeHouseFee = 10000
	comedyPerExtraSeat  = 500
	comedyPerSeat       = 300

	creditAudienceLimit = 30
	comedyCreditDivisor = 5
)

// AmountFor returns the charge for a single performance of the given play
func AmountFor(perf domain.Performance, play domain.Play) (int64, error) {
	audience := int64(perf.Audience)
	var result int64

	switch play.Genre {
	case domain.GenreTragedy:
		result = tragedyBase
		if audience > tragedyAudienceLimit {
			result += tragedyPerExtraSeat * (audience - tragedyAudienceLimit)
		}
	case domain.GenreComedy:
		result = comedyBase
		if audience > comedyAudienceLimit {
			result += comedyLargeHouseFee + comedyPerExtraSeat*(audience-comedyAudienceLimit)
		}
		result += comedyPerSeat * audience
	default:
		return 0, &domain.UnknownGenreError{Genre: play.Genre}
	}

	return result, nil
}

// VolumeCreditsFor returns the loyalty credits earned by a single performance.
// Unknown genres earn the base credit only; they are not rejected here.
func VolumeCreditsFor(perf domain.Performance, play domain.Play) int {
	result := max(perf.Audience-creditAudienceLimit, 0)
	if play.Genre == domain.GenreComedy {
		result += perf.Audience / comedyCreditDivisor
	}
	return result
}

// TotalAmount sums AmountFor over the invoice's performances in order
func TotalAmount(inv domain.Invoice, catalog domain.Catalog) (int64, error) {
	var total int64
	for i, perf := range inv.Performances {
		play, err := catalog.Resolve(perf.PlayID)
		if err != nil {
			return 0, &PerformanceError{Index: i, PlayID: perf.PlayID, Err: err}
		}
		amount, err := AmountFor(perf, play)
		if err != nil {
			return 0, &PerformanceError{Index: i, PlayID: perf.PlayID, Err: err}
		}
		total += amount
	}
	return total, nil
}

// TotalVolumeCredits sums VolumeCreditsFor over the invoice's performances in order.
// It only fails when a play cannot be resolved.
func TotalVolumeCredits(inv domain.Invoice, catalog domain.Catalog) (int, error) {
	total := 0
	for i, perf := range inv.Performances {
		play, err := catalog.Resolve(perf.PlayID)
		if err != nil {
			return 0, &PerformanceError{Index: i, PlayID: perf.PlayID, Err: err}
		}
		total += VolumeCreditsFor(perf, play)
	}
	return total, nil
}
