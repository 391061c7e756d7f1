package domain

import (
	"strconv"
	"strings"
)

// Coordinate is one axis of a sky position: either a bare value in decimal
// degrees or a preformatted string in any format NED accepts (sexagesimal,
// "12h03m45s", ...). Raw strings are never interpreted locally; the remote
// calculator validates them.
type Coordinate struct {
	raw     string
	degrees float64
	decimal bool
}

// DecimalDegrees wraps a numeric coordinate value in degrees.
func DecimalDegrees(v float64) Coordinate {
	return Coordinate{degrees: v, decimal: true}
}

// RawCoordinate wraps an already-formatted coordinate string.
func RawCoordinate(s string) Coordinate {
	return Coordinate{raw: s}
}

// ParseCoordinate classifies a free-form token. Values that parse as a float
// become decimal degrees; anything else passes through as a raw NED format.
func ParseCoordinate(s string) Coordinate {
	trimmed := strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return DecimalDegrees(v)
	}
	return RawCoordinate(trimmed)
}

// QueryValue renders the coordinate for the calculator query string. Decimal
// degrees get the "d" unit suffix so the service reads them as degrees; raw
// strings are sent unchanged.
func (c Coordinate) QueryValue() string {
	if c.decimal {
		return strconv.FormatFloat(c.degrees, 'g', -1, 64) + "d"
	}
	return c.raw
}

// Frame holds the reference-frame parameters needed to interpret a sky
// position. All fields are passed to the calculator verbatim; validity is
// delegated to the remote service.
type Frame struct {
	System   string // Equatorial, Galactic, Ecliptic or Supergalactic
	Equinox  string // J2000.0 or B1950.0
	ObsEpoch string
}

// DefaultFrame returns the calculator's conventional input frame.
func DefaultFrame() Frame {
	return Frame{
		System:   "Equatorial",
		Equinox:  "J2000.0",
		ObsEpoch: "2000",
	}
}

// IsZero reports whether no frame parameter was set.
func (f Frame) IsZero() bool {
	return f == Frame{}
}
