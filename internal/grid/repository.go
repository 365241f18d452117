package grid

import (
	"context"
	"errors"
)

// ErrGridNotFound is returned when no grid is stored under a name.
var ErrGridNotFound = errors.New("grid not found")

// Summary describes a stored grid without its cells.
type Summary struct {
	Name     string
	NumDays  int
	NumSlots int
}

// Repository defines the storage interface for grids.
type Repository interface {
	// SaveGrid stores a grid under its name, replacing any previous version.
	SaveGrid(ctx context.Context, g *Grid) error

	// LoadGrid retrieves a grid by name. Returns ErrGridNotFound if missing.
	LoadGrid(ctx context.Context, name string) (*Grid, error)

	// ListGrids returns summaries of all stored grids ordered by name.
	ListGrids(ctx context.Context) ([]Summary, error)

	// DeleteGrid removes a grid. Returns ErrGridNotFound if missing.
	DeleteGrid(ctx context.Context, name string) error

	// Close releases any resources held by the repository.
	Close() error
}
