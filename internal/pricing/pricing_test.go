package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/playbill/internal/domain"
)

var (
	hamlet = domain.Play{Name: "Hamlet", Genre: domain.GenreTragedy}
	asLike = domain.Play{Name: "As You Like It", Genre: domain.GenreComedy}
	farce  = domain.Play{Name: "Noises Off", Genre: "farce"}
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		"hamlet":  hamlet,
		"as-like": asLike,
		"othello": {Name: "Othello", Genre: domain.GenreTragedy},
		"noises":  farce,
	}
}

func TestAmountFor_Tragedy(t *testing.T) {
	tests := []struct {
		audience int
		want     int64
	}{
		{0, 40000},
		{1, 40000},
		{30, 40000},
		{31, 41000},
		{40, 50000},
		{55, 65000},
	}

	for _, tt := range tests {
		got, err := AmountFor(domain.Performance{PlayID: "hamlet", Audience: tt.audience}, hamlet)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "audience %d", tt.audience)
	}
}

func TestAmountFor_Comedy(t *testing.T) {
	tests := []struct {
		audience int
		want     int64
	}{
		{0, 30000},
		{10, 33000},
		{20, 36000},
		{21, 30000 + 10000 + 500 + 300*21},
		{35, 58000},
	}

	for _, tt := range tests {
		got, err := AmountFor(domain.Performance{PlayID: "as-like", Audience: tt.audience}, asLike)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "audience %d", tt.audience)
	}
}

func TestAmountFor_UnknownGenre(t *testing.T) {
	_, err := AmountFor(domain.Performance{PlayID: "noises", Audience: 10}, farce)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownGenre))

	var uge *domain.UnknownGenreError
	require.True(t, errors.As(err, &uge))
	assert.Equal(t, domain.Genre("farce"), uge.Genre)
}

func TestVolumeCreditsFor(t *testing.T) {
	tests := []struct {
		name     string
		play     domain.Play
		audience int
		want     int
	}{
		{"tragedy below threshold", hamlet, 30, 0},
		{"tragedy above threshold", hamlet, 55, 25},
		{"comedy small house", asLike, 12, 2},
		{"comedy above threshold", asLike, 35, 12},
		{"comedy exact threshold", asLike, 30, 6},
		{"unknown genre gets base only", farce, 40, 10},
		{"unknown genre below threshold", farce, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VolumeCreditsFor(domain.Performance{Audience: tt.audience}, tt.play)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotals(t *testing.T) {
	inv := domain.NewInvoice("BigCo",
		domain.Performance{PlayID: "hamlet", Audience: 55},
		domain.Performance{PlayID: "as-like", Audience: 35},
		domain.Performance{PlayID: "othello", Audience: 40},
	)

	amount, err := TotalAmount(inv, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, int64(65000+58000+50000), amount)

	credits, err := TotalVolumeCredits(inv, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 25+12+10, credits)
}

func TestTotalAmount_OrderIndependent(t *testing.T) {
	forward := domain.NewInvoice("BigCo",
		domain.Performance{PlayID: "hamlet", Audience: 55},
		domain.Performance{PlayID: "as-like", Audience: 35},
	)
	reversed := domain.NewInvoice("BigCo",
		domain.Performance{PlayID: "as-like", Audience: 35},
		domain.Performance{PlayID: "hamlet", Audience: 55},
	)

	a, err := TotalAmount(forward, testCatalog())
	require.NoError(t, err)
	b, err := TotalAmount(reversed, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTotals_Empty(t *testing.T) {
	inv := domain.NewInvoice("BigCo")

	amount, err := TotalAmount(inv, testCatalog())
	require.NoError(t, err)
	assert.Zero(t, amount)

	credits, err := TotalVolumeCredits(inv, testCatalog())
	require.NoError(t, err)
	assert.Zero(t, credits)
}

func TestTotalAmount_PropagatesErrors(t *testing.T) {
	inv := domain.NewInvoice("BigCo",
		domain.Performance{PlayID: "hamlet", Audience: 55},
		domain.Performance{PlayID: "noises", Audience: 20},
	)

	_, err := TotalAmount(inv, testCatalog())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)

	var pe *PerformanceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Equal(t, "noises", pe.PlayID)
}

func TestTotalVolumeCredits_UnknownGenreStillCounts(t *testing.T) {
	inv := domain.NewInvoice("BigCo", domain.Performance{PlayID: "noises", Audience: 40})

	credits, err := TotalVolumeCredits(inv, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 10, credits)
}

func TestTotals_UnknownPlay(t *testing.T) {
	inv := domain.NewInvoice("BigCo", domain.Performance{PlayID: "macbeth", Audience: 40})

	_, err := TotalAmount(inv, testCatalog())
	assert.ErrorIs(t, err, domain.ErrUnknownPlay)

	_, err = TotalVolumeCredits(inv, testCatalog())
	assert.ErrorIs(t, err, domain.ErrUnknownPlay)
}
