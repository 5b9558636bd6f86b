package ui

import "testing"

func TestValidateLocation_AcceptsWellFormedInput(t *testing.T) {
	loc, err := validateLocation("CH", "City Hall", "16.4023", "120.596", "Mon-Fri")
	if err != nil {
		t.Fatalf("validateLocation: %v", err)
	}
	if loc.Label != "CH" || loc.Address != "City Hall" || loc.Lat != 16.4023 || loc.Lng != 120.596 {
		t.Fatalf("loc = %#v", loc)
	}
	if loc.ID != "" {
		t.Fatalf("ID = %q, want unset (assigned by caller)", loc.ID)
	}
}

func TestValidateLocation_TrimsWhitespace(t *testing.T) {
	loc, err := validateLocation("  CH  ", " City Hall ", " 16.4 ", " 120.6 ", " Mon ")
	if err != nil {
		t.Fatalf("validateLocation: %v", err)
	}
	if loc.Label != "CH" || loc.Address != "City Hall" || loc.Schedule != "Mon" {
		t.Fatalf("loc = %#v", loc)
	}
}

func TestValidateLocation_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name                               string
		label, address, lat, lng, schedule string
	}{
		{"empty label", "", "City Hall", "16.4", "120.6", ""},
		{"blank label", "   ", "City Hall", "16.4", "120.6", ""},
		{"empty address", "CH", "", "16.4", "120.6", ""},
		{"non-numeric latitude", "CH", "City Hall", "north", "120.6", ""},
		{"empty latitude", "CH", "City Hall", "", "120.6", ""},
		{"NaN latitude", "CH", "City Hall", "NaN", "120.6", ""},
		{"infinite longitude", "CH", "City Hall", "16.4", "+Inf", ""},
		{"latitude above range", "CH", "City Hall", "90.5", "120.6", ""},
		{"latitude below range", "CH", "City Hall", "-91", "120.6", ""},
		{"longitude above range", "CH", "City Hall", "16.4", "180.1", ""},
		{"longitude below range", "CH", "City Hall", "16.4", "-181", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := validateLocation(tc.label, tc.address, tc.lat, tc.lng, tc.schedule); err == nil {
				t.Fatalf("validateLocation accepted %s", tc.name)
			}
		})
	}
}

func TestValidateLocation_AcceptsBoundaryCoordinates(t *testing.T) {
	for _, pair := range [][2]string{{"90", "180"}, {"-90", "-180"}, {"0", "0"}} {
		if _, err := validateLocation("CH", "City Hall", pair[0], pair[1], ""); err != nil {
			t.Fatalf("validateLocation(%s, %s): %v", pair[0], pair[1], err)
		}
	}
}
