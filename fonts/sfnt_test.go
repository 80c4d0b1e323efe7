package fonts

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSFNT(t *testing.T) {
	f, err := ParseSFNT(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("ParseSFNT: %v", err)
	}
	if f.Name() == "" {
		t.Error("Name() is empty")
	}

	ext := f.Extents(0)
	if ext.Ascent <= 0 || ext.Descent <= 0 {
		t.Fatalf("Extents = %+v, want positive ascent and descent", ext)
	}

	m, ok := f.Metrics('H', 0)
	if !ok {
		t.Fatal("Metrics('H') reported missing glyph")
	}
	if m.Advance <= 0 || m.Ref.GID == 0 {
		t.Errorf("Metrics('H') = %+v", m)
	}
	if m.Bounds.MinY >= 0 || math.Abs(m.Bounds.MaxY) > 0.5 {
		t.Errorf("Bounds = %+v, want top above baseline and bottom on it", m.Bounds)
	}

	if _, ok := f.Metrics('\U0001F600', 0); ok {
		t.Error("Go Regular has no emoji, want a missing glyph")
	}
}

func TestParseSFNT_AgreesWithGoText(t *testing.T) {
	st, err := ParseSFNT(goregular.TTF, 32)
	if err != nil {
		t.Fatalf("ParseSFNT: %v", err)
	}
	gt, err := ParseGoText(goregular.TTF, 32)
	if err != nil {
		t.Fatalf("ParseGoText: %v", err)
	}

	for _, r := range "Hamburgefonstiv" {
		a, _ := st.Metrics(r, 0)
		b, _ := gt.Metrics(r, 0)
		if math.Abs(a.Advance-b.Advance) > 0.01 {
			t.Errorf("advance of %q: sfnt %v, gotext %v", r, a.Advance, b.Advance)
		}
	}
}

func TestParseSFNT_Errors(t *testing.T) {
	if _, err := ParseSFNT(nil, 12); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("nil data: err = %v, want ErrEmptyFontData", err)
	}
	if _, err := ParseSFNT(goregular.TTF, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero size: err = %v, want ErrInvalidSize", err)
	}
	if _, err := ParseSFNT([]byte("not a font"), 12); err == nil {
		t.Error("garbage data: expected an error")
	}
}
