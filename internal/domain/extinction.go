package domain

// BandExtinction is one row of the calculator's band table: a free-text
// photometric band name (e.g. "SDSS g") and its extinction A_lambda in
// magnitudes.
type BandExtinction struct {
	Band      string
	Magnitude float64
}

// Value is an extinction magnitude that may be absent when no band matched
// the requested filter.
type Value struct {
	Magnitude float64
	OK        bool
}

type WarningKind string

const (
	WarningNoMatch    WarningKind = "no-match"
	WarningMultiMatch WarningKind = "multi-match"
)

// Warning is a structured diagnostic produced while matching requested
// filters against the band table. Warnings travel with the result instead of
// going to a process-wide warning stream.
type Warning struct {
	Filter  string
	Kind    WarningKind
	Message string
}
