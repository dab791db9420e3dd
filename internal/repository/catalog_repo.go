package repository

import (
	"context"

	"github.com/andy/playbill/internal/domain"
)

// CatalogRepo is a file implementation of CatalogRepository
type CatalogRepo struct {
	path string
}

// NewCatalogRepo creates a new CatalogRepo reading from path
func NewCatalogRepo(path string) *CatalogRepo {
	return &CatalogRepo{path: path}
}

// Load reads the catalog file. Each call returns a fresh map.
func (r *CatalogRepo) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := domain.Catalog{}
	if err := decodeFile(r.path, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
