package ned

import (
	"context"
	"ned-extinction-service/internal/domain"
)

// MockProvider serves a canned band table, standing in for the live
// calculator in tests.
type MockProvider struct {
	Bands []domain.BandExtinction
	Err   error
}

func (m *MockProvider) GetExtinctions(ctx context.Context, ra, dec domain.Coordinate, frame domain.Frame) ([]domain.BandExtinction, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	return m.Bands, nil
}
