package domain

import "testing"

func TestParseCoordinateClassification(t *testing.T) {
	cases := []struct {
		in      string
		decimal bool
		query   string
	}{
		{"150.0", true, "150d"},
		{"2.5", true, "2.5d"},
		{"-30.25", true, "-30.25d"},
		{"12h03m45s", false, "12h03m45s"},
		{"00d45m17.5s", false, "00d45m17.5s"},
		{" 150.0 ", true, "150d"},
	}

	for _, c := range cases {
		coord := ParseCoordinate(c.in)
		if got := coord.QueryValue(); got != c.query {
			t.Errorf("ParseCoordinate(%q).QueryValue() = %q, want %q", c.in, got, c.query)
		}
	}
}

func TestDecimalDegreesQueryValueHasDegreeSuffix(t *testing.T) {
	if got := DecimalDegrees(150.0).QueryValue(); got != "150d" {
		t.Errorf("QueryValue() = %q, want %q", got, "150d")
	}
	if got := DecimalDegrees(2.5).QueryValue(); got != "2.5d" {
		t.Errorf("QueryValue() = %q, want %q", got, "2.5d")
	}
}

func TestRawCoordinatePassesThroughUnchanged(t *testing.T) {
	raw := "10 03 45.2"
	if got := RawCoordinate(raw).QueryValue(); got != raw {
		t.Errorf("QueryValue() = %q, want %q", got, raw)
	}
}

func TestDefaultFrame(t *testing.T) {
	f := DefaultFrame()
	if f.System != "Equatorial" || f.Equinox != "J2000.0" || f.ObsEpoch != "2000" {
		t.Errorf("unexpected default frame: %+v", f)
	}
	if f.IsZero() {
		t.Error("default frame should not be zero")
	}
	if !(Frame{}).IsZero() {
		t.Error("empty frame should be zero")
	}
}
