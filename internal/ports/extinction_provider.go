package ports

import (
	"context"
	"ned-extinction-service/internal/domain"
)

// Port: a boundary for retrieving the per-band extinction table for one sky
// position.
type ExtinctionProvider interface {
	// Return every band extinction row the calculator reports for the
	// given position. Row order follows the calculator's output.
	GetExtinctions(ctx context.Context, ra, dec domain.Coordinate, frame domain.Frame) ([]domain.BandExtinction, error)
}
