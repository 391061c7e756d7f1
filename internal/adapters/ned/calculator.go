package ned

import (
	"context"
	"fmt"
	"ned-extinction-service/internal/domain"
	"ned-extinction-service/internal/platform/obs"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "http://ned.ipac.caltech.edu"
	calcPath       = "/cgi-bin/calc"

	// The calculator has been queried with this misspelled output frame
	// since the original CGI went up and still honors it. Do not correct
	// the spelling without checking the live service first.
	outCoordSystem = "Equitorial"
	outEquinox     = "J2000.0"
	positionAngle  = "0.0"

	defaultTimeout = 30 * time.Second
)

// Calculator implements ExtinctionProvider against the NED Galactic
// Reddening and Extinction Calculator. The values it reports are the
// Schlafly & Finkbeiner 2011 recalibration of the Schlegel, Finkbeiner &
// Davis 1998 extinction map.
//
// One synchronous GET per call, no shared state between calls; the
// calculator is safe for concurrent use.
type Calculator struct {
	session *http.Client
	baseURL string
}

type Option func(*Calculator)

// WithBaseURL overrides the calculator endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Calculator) { c.baseURL = u }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Calculator) { c.session.Timeout = d }
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		session: &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetExtinctions issues one GET against the calculator and returns the
// parsed band table for the given position. A non-200 response yields a
// *StatusError.
func (c *Calculator) GetExtinctions(
	ctx context.Context,
	ra, dec domain.Coordinate,
	frame domain.Frame,
) (_ []domain.BandExtinction, err error) {
	defer obs.Time(ctx, "ned.GetExtinctions")(&err)

	if frame.IsZero() {
		frame = domain.DefaultFrame()
	}

	q := url.Values{}
	q.Set("lon", ra.QueryValue())
	q.Set("lat", dec.QueryValue())
	q.Set("pa", positionAngle)
	q.Set("in_csys", frame.System)
	q.Set("in_equinox", frame.Equinox)
	q.Set("obs_epoch", frame.ObsEpoch)
	q.Set("out_csys", outCoordSystem)
	q.Set("out_equinox", outEquinox)

	req, err := c.newRequest(ctx, c.baseURL+calcPath+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("extinction calculator request: %w", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query extinction calculator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Reason: reasonPhrase(resp)}
	}

	bands, err := parseBandTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse calculator response: %w", err)
	}

	return bands, nil
}
