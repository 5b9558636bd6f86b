package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	label := "Dañó ñiño baño señal ibañez"

	got := truncate(label, 24)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 24 {
		t.Fatalf("rune count = %d, want 24", n)
	}
	if got != "Dañó ñiño baño señal ib…" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestTruncate_ShortValuesUntouched(t *testing.T) {
	for _, v := range []string{"", "CH", "baño", "exactly24-runes-ñññññññ"} {
		if got := truncate(v, 24); got != v {
			t.Fatalf("truncate(%q) = %q, want unchanged", v, got)
		}
	}
}

func TestPadRight_CountsRunesNotBytes(t *testing.T) {
	got := padRight("baño", 8)
	if utf8.RuneCountInString(got) != 8 {
		t.Fatalf("padded width = %d runes, want 8 (%q)", utf8.RuneCountInString(got), got)
	}

	// Same display width for ASCII and non-ASCII values of equal rune count.
	if a, b := padRight("bano", 8), padRight("baño", 8); utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		t.Fatalf("padding skewed by bytes: %q vs %q", a, b)
	}
}

func TestPadRight_WideValuesUntouched(t *testing.T) {
	v := "a string well past the width"
	if got := padRight(v, 8); got != v {
		t.Fatalf("padRight(%q) = %q, want unchanged", v, got)
	}
}
