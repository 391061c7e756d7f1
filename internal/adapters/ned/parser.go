package ned

import (
	"fmt"
	"io"
	"ned-extinction-service/internal/domain"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// parseState tracks where the band-table scan is inside the document.
type parseState int

const (
	stateOutside parseState = iota // before/after the moreBANDS container
	stateInContainer               // inside the container, between rows
	stateInRow                     // inside a <tr>, collecting text fragments
)

// parseBandTable extracts (band, magnitude) rows from the calculator's HTML
// output. The per-band extinctions live inside <div id="moreBANDS">; within a
// row the first two text fragments form the band name and the last fragment
// is the magnitude. Rows whose last fragment does not parse as a float
// (headers, separators) are dropped. A duplicate band name keeps the last
// value seen.
//
// A missing container is not an error: it yields an empty table, which the
// matching layer surfaces as no-match warnings.
func parseBandTable(r io.Reader) ([]domain.BandExtinction, error) {
	z := html.NewTokenizer(r)

	state := stateOutside
	divDepth := 0
	var fragments []string
	index := make(map[string]int)
	var bands []domain.BandExtinction

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("scan html: %w", err)
			}
			return bands, nil

		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "div":
				if state == stateOutside {
					if attrValue(tok, "id") == "moreBANDS" {
						state = stateInContainer
						divDepth = 0
					}
				} else {
					divDepth++
				}
			case "tr":
				if state != stateOutside {
					state = stateInRow
					fragments = fragments[:0]
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "div":
				if state == stateOutside {
					break
				}
				if divDepth == 0 {
					state = stateOutside
				} else {
					divDepth--
				}
			case "tr":
				if state != stateInRow {
					break
				}
				state = stateInContainer
				band, ok := ingestRow(fragments)
				if !ok {
					break
				}
				if i, dup := index[band.Band]; dup {
					bands[i] = band
				} else {
					index[band.Band] = len(bands)
					bands = append(bands, band)
				}
			}

		case html.TextToken:
			if state == stateInRow {
				if s := strings.TrimSpace(string(z.Text())); s != "" {
					fragments = append(fragments, s)
				}
			}
		}
	}
}

// ingestRow folds one row's text fragments into a band entry: the first two
// fragments joined form the name, the last fragment is the magnitude.
func ingestRow(fragments []string) (domain.BandExtinction, bool) {
	if len(fragments) < 2 {
		return domain.BandExtinction{}, false
	}

	mag, err := strconv.ParseFloat(fragments[len(fragments)-1], 64)
	if err != nil {
		return domain.BandExtinction{}, false
	}

	return domain.BandExtinction{
		Band:      strings.Join(fragments[:2], " "),
		Magnitude: mag,
	}, true
}

func attrValue(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
