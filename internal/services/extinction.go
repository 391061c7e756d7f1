package services

import (
	"context"
	"errors"
	"fmt"
	"ned-extinction-service/internal/domain"
	"ned-extinction-service/internal/ports"
	"strings"
)

// Request describes one extinction lookup: a sky position, the reference
// frame to interpret it in, and the filter names to resolve against the
// calculator's band table.
type Request struct {
	RA      domain.Coordinate
	Dec     domain.Coordinate
	Filters []string
	Frame   domain.Frame
}

// Result holds one value per requested filter, positionally aligned with the
// request, plus the structured warnings produced while matching.
type Result struct {
	Filters  []string
	Values   []domain.Value
	Warnings []domain.Warning
}

// ByFilter returns the filter-name -> value mapping. Duplicate filter
// strings in the request collapse to a single key.
func (r Result) ByFilter() map[string]domain.Value {
	out := make(map[string]domain.Value, len(r.Filters))
	for i, f := range r.Filters {
		out[f] = r.Values[i]
	}
	return out
}

// RequestExtinctions fetches the band table for the requested position and
// resolves each requested filter against it by case-sensitive substring
// containment ("SDSS g" matches the "SDSS g (0.48)" row). An unmatched
// filter yields an absent value and a no-match warning; several matches
// yield their arithmetic mean and a multi-match warning. Only transport and
// HTTP failures abort the call.
func RequestExtinctions(
	ctx context.Context,
	req Request,
	provider ports.ExtinctionProvider,
) (Result, error) {
	if len(req.Filters) == 0 {
		return Result{}, errors.New("at least one filter is required")
	}

	frame := req.Frame
	if frame.IsZero() {
		frame = domain.DefaultFrame()
	}

	bands, err := provider.GetExtinctions(ctx, req.RA, req.Dec, frame)
	if err != nil {
		return Result{}, fmt.Errorf("get extinctions: %w", err)
	}

	res := Result{
		Filters: req.Filters,
		Values:  make([]domain.Value, 0, len(req.Filters)),
	}

	for _, filt := range req.Filters {
		var matches []float64
		for _, b := range bands {
			if strings.Contains(b.Band, filt) {
				matches = append(matches, b.Magnitude)
			}
		}

		switch len(matches) {
		case 0:
			res.Warnings = append(res.Warnings, domain.Warning{
				Filter:  filt,
				Kind:    domain.WarningNoMatch,
				Message: fmt.Sprintf("no filter found matching %q", filt),
			})
			res.Values = append(res.Values, domain.Value{})
		case 1:
			res.Values = append(res.Values, domain.Value{Magnitude: matches[0], OK: true})
		default:
			res.Warnings = append(res.Warnings, domain.Warning{
				Filter:  filt,
				Kind:    domain.WarningMultiMatch,
				Message: fmt.Sprintf("multiple filters found matching %q, averaging %d values", filt, len(matches)),
			})
			res.Values = append(res.Values, domain.Value{Magnitude: mean(matches), OK: true})
		}
	}

	return res, nil
}

// RequestExtinction is the single-filter convenience form.
func RequestExtinction(
	ctx context.Context,
	ra, dec domain.Coordinate,
	filter string,
	provider ports.ExtinctionProvider,
) (domain.Value, []domain.Warning, error) {
	res, err := RequestExtinctions(ctx, Request{RA: ra, Dec: dec, Filters: []string{filter}}, provider)
	if err != nil {
		return domain.Value{}, nil, err
	}

	return res.Values[0], res.Warnings, nil
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
