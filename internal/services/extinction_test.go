package services

import (
	"context"
	"errors"
	"math"
	"ned-extinction-service/internal/adapters/ned"
	"ned-extinction-service/internal/domain"
	"testing"
)

func testBands() []domain.BandExtinction {
	return []domain.BandExtinction{
		{Band: "Landolt U", Magnitude: 0.427},
		{Band: "Landolt B", Magnitude: 0.358},
		{Band: "Landolt V", Magnitude: 0.270},
		{Band: "SDSS g", Magnitude: 0.329},
		{Band: "SDSS r", Magnitude: 0.227},
		{Band: "UKIRT V", Magnitude: 0.272},
	}
}

func testRequest(filters ...string) Request {
	return Request{
		RA:      domain.DecimalDegrees(150.0),
		Dec:     domain.DecimalDegrees(2.5),
		Filters: filters,
	}
}

func TestRequestExtinctionsSingleMatch(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	res, err := RequestExtinctions(context.Background(), testRequest("SDSS g"), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(res.Values))
	}
	if !res.Values[0].OK {
		t.Fatal("expected a present value")
	}
	if res.Values[0].Magnitude != 0.329 {
		t.Errorf("magnitude = %v, want 0.329", res.Values[0].Magnitude)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
}

func TestRequestExtinctionsMultipleMatchesAveraged(t *testing.T) {
	provider := &ned.MockProvider{Bands: []domain.BandExtinction{
		{Band: "Landolt V", Magnitude: 0.10},
		{Band: "UKIRT V", Magnitude: 0.30},
	}}

	res, err := RequestExtinctions(context.Background(), testRequest("V"), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.Values[0].Magnitude-0.20) > 1e-12 {
		t.Errorf("magnitude = %v, want 0.20", res.Values[0].Magnitude)
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if res.Warnings[0].Kind != domain.WarningMultiMatch {
		t.Errorf("warning kind = %s, want %s", res.Warnings[0].Kind, domain.WarningMultiMatch)
	}
	if res.Warnings[0].Filter != "V" {
		t.Errorf("warning filter = %q, want %q", res.Warnings[0].Filter, "V")
	}
}

func TestRequestExtinctionsNoMatch(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	res, err := RequestExtinctions(context.Background(), testRequest("F125W"), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Values[0].OK {
		t.Error("expected an absent value")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if res.Warnings[0].Kind != domain.WarningNoMatch {
		t.Errorf("warning kind = %s, want %s", res.Warnings[0].Kind, domain.WarningNoMatch)
	}
}

func TestRequestExtinctionsOutputAlignsWithInput(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	filters := []string{"SDSS r", "F160W", "SDSS g"}
	res, err := RequestExtinctions(context.Background(), testRequest(filters...), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Values) != len(filters) {
		t.Fatalf("expected %d values, got %d", len(filters), len(res.Values))
	}
	if res.Values[0].Magnitude != 0.227 {
		t.Errorf("values[0] = %v, want 0.227", res.Values[0].Magnitude)
	}
	if res.Values[1].OK {
		t.Error("values[1] should be absent")
	}
	if res.Values[2].Magnitude != 0.329 {
		t.Errorf("values[2] = %v, want 0.329", res.Values[2].Magnitude)
	}
}

func TestResultByFilter(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	res, err := RequestExtinctions(context.Background(), testRequest("SDSS g", "SDSS r"), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byFilter := res.ByFilter()
	if len(byFilter) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(byFilter))
	}
	if v := byFilter["SDSS g"]; v.Magnitude != 0.329 {
		t.Errorf("SDSS g = %v, want 0.329", v.Magnitude)
	}
	if v := byFilter["SDSS r"]; v.Magnitude != 0.227 {
		t.Errorf("SDSS r = %v, want 0.227", v.Magnitude)
	}
}

func TestRequestExtinctionScalar(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	v, warnings, err := RequestExtinction(
		context.Background(),
		domain.DecimalDegrees(150.0),
		domain.DecimalDegrees(2.5),
		"SDSS g",
		provider,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Magnitude != 0.329 {
		t.Errorf("magnitude = %v, want 0.329", v.Magnitude)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestRequestExtinctionsProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	provider := &ned.MockProvider{Err: wantErr}

	_, err := RequestExtinctions(context.Background(), testRequest("SDSS g"), provider)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error %v does not wrap provider error", err)
	}
}

func TestRequestExtinctionsRequiresFilters(t *testing.T) {
	provider := &ned.MockProvider{Bands: testBands()}

	if _, err := RequestExtinctions(context.Background(), testRequest(), provider); err == nil {
		t.Fatal("expected error for empty filter list")
	}
}
