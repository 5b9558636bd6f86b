package state

import (
	"reflect"
	"strings"
	"testing"
)

func TestCodec_RoundTrip(t *testing.T) {
	s := AppState{
		Locations: []Location{
			{ID: "a", Lat: 16.402100000000001, Lng: 120.59599, Address: "City Hall", Schedule: "Mon-Fri 8am-5pm", Label: "CH"},
			{ID: "b", Lat: -16.4, Lng: -120.6, Address: "Public Market", Schedule: "", Label: "PM"},
		},
		Announcements: "Unicode ok: baño, 電子ごみ",
		ContactInfo:   ContactInfo{Email: "enro@city.gov", Phone: "074-123-4567", Office: "ENRO"},
	}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip changed state:\n got %#v\nwant %#v", got, s)
	}
}

func TestEncode_EmitsStableLayout(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, key := range []string{`"locations":[]`, `"announcements":""`, `"contactInfo"`, `"email"`, `"phone"`, `"office"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("encoded default state missing %s: %s", key, data)
		}
	}
}

func TestDecode_UnknownFieldsTolerated(t *testing.T) {
	blob := `{"locations":[{"id":"a","lat":1,"lng":2,"address":"x","schedule":"","label":"X","extra":true}],"announcements":"hi","contactInfo":{"email":"e","phone":"p","office":"o"},"version":7}`

	got, err := Decode([]byte(blob))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Locations) != 1 || got.Locations[0].ID != "a" || got.Announcements != "hi" {
		t.Fatalf("Decode = %#v", got)
	}
}

func TestDecode_AbsentFieldsFallBackToDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"announcements":"only this"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Locations == nil || len(got.Locations) != 0 {
		t.Fatalf("Locations = %#v, want empty non-nil", got.Locations)
	}
	if got.Announcements != "only this" {
		t.Fatalf("Announcements = %q", got.Announcements)
	}
	if got.ContactInfo != (ContactInfo{}) {
		t.Fatalf("ContactInfo = %#v, want defaults", got.ContactInfo)
	}
}

func TestDecode_CorruptBlobReturnsDefaultsAndError(t *testing.T) {
	got, err := Decode([]byte(`{"locations": [not json`))
	if err == nil {
		t.Fatal("Decode accepted corrupt blob")
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("corrupt decode = %#v, want Default()", got)
	}
}
