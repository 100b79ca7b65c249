package currency

import (
	"strings"
	"testing"

	"workwise/internal/locale"
)

func TestResolvePrecedence(t *testing.T) {
	src := locale.Static{LangTag: "en-IN"}

	if got := Resolve("EUR", src); got != EUR {
		t.Fatalf("override EUR resolved to %s", got)
	}
	if got := Resolve("AUTO", src); got != INR {
		t.Fatalf("AUTO over en-IN resolved to %s, want INR", got)
	}
	if got := Resolve("", src); got != INR {
		t.Fatalf("empty override over en-IN resolved to %s, want INR", got)
	}
	if got := Resolve("", nil); got != USD {
		t.Fatalf("no locale source resolved to %s, want USD", got)
	}
}

func TestDetectRules(t *testing.T) {
	cases := []struct {
		tag  string
		want Code
	}{
		{"en-IN", INR},
		{"ja-JP", JPY},
		{"ko-KR", KRW},
		{"de-DE", EUR},
		{"fr-FR", EUR},
		{"es-ES", EUR},
		{"en-GB", GBP},
		{"en-US", USD},
		{"", USD},
	}
	for _, c := range cases {
		if got := Detect(c.tag); got != c.want {
			t.Fatalf("Detect(%q)=%s, want %s", c.tag, got, c.want)
		}
	}
}

func TestFormatIsDeterministicAndTableDriven(t *testing.T) {
	f := NewFormatter(INR, nil)
	first := f.Format(19)
	for i := 0; i < 3; i++ {
		if got := f.Format(19); got != first {
			t.Fatalf("format not deterministic: %q vs %q", got, first)
		}
	}
	if !strings.Contains(first, "1577") {
		t.Fatalf("INR 19 formatted as %q, want the 83x scaled value", first)
	}

	// Overridden table wins over the canonical one.
	custom := NewFormatter(INR, map[Code]float64{INR: 100})
	if got := custom.Format(19); !strings.Contains(got, "1900") {
		t.Fatalf("custom-rate format=%q, want 1900", got)
	}
}

func TestZeroDecimalCurrenciesHaveNoPoint(t *testing.T) {
	for _, code := range []Code{JPY, KRW} {
		f := NewFormatter(code, nil)
		for _, amount := range []float64{0, 1, 19, 19.99, 1234.56} {
			if got := f.Format(amount); strings.Contains(got, ".") {
				t.Fatalf("%s format of %v contains a decimal point: %q", code, amount, got)
			}
		}
	}
}

func TestUnknownCodeFallsBackToRateOne(t *testing.T) {
	f := NewFormatter(Code("XXX"), nil)
	if got := f.Format(19); got != "XXX19.00" {
		t.Fatalf("unknown code format=%q, want XXX19.00", got)
	}
}
