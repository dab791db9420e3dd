package domain

import (
	"sort"
)

// Genre classifies a play for pricing
type Genre string

const (
	GenreTragedy Genre = "tragedy"
	GenreComedy  Genre = "comedy"
)

// Known returns true if the genre has pricing rules
func (g Genre) Known() bool {
	return g == GenreTragedy || g == GenreComedy
}

// Play is the catalog record for a play. The data files call the genre "type".
type Play struct {
	Name  string `json:"name" yaml:"name"`
	Genre Genre  `json:"type" yaml:"type"`
}

// Catalog maps play IDs to their records. It is read-only once loaded.
type Catalog map[string]Play

// Resolve looks up the play for the given ID
func (c Catalog) Resolve(playID string) (Play, error) {
	play, ok := c[playID]
	if !ok {
		return Play{}, &UnknownPlayError{PlayID: playID}
	}
	return play, nil
}

// IDs returns the catalog's play IDs in sorted order
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a copy of the catalog
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for id, play := range c {
		out[id] = play
	}
	return out
}
