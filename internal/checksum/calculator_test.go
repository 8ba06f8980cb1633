package checksum

import (
	"testing"
)

func TestCalculateRaw_KnownDigest(t *testing.T) {
	c := New()

	// sha256("")
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := c.CalculateRaw(nil); got != want {
		t.Errorf("CalculateRaw(nil) = %s, want %s", got, want)
	}
}

func TestCalculateRaw_DetectsWhitespace(t *testing.T) {
	c := New()

	if c.CalculateRaw([]byte("a\n")) == c.CalculateRaw([]byte("a\r\n")) {
		t.Error("raw checksums must differ on line endings")
	}
}

func TestCalculateNormalized_Equivalences(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		a, b string
	}{
		{"crlf", "line one\nline two\n", "line one\r\nline two\r\n"},
		{"lone cr", "a\nb", "a\rb"},
		{"trailing spaces", "a\nb", "a  \nb\t"},
		{"trailing newlines", "a\nb", "a\nb\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.CalculateNormalized([]byte(tt.a)) != c.CalculateNormalized([]byte(tt.b)) {
				t.Errorf("normalized checksums differ for %q and %q", tt.a, tt.b)
			}
		})
	}
}

func TestCalculateNormalized_KeepsContentChanges(t *testing.T) {
	c := New()

	if c.CalculateNormalized([]byte("a b")) == c.CalculateNormalized([]byte("a  b")) {
		t.Error("inner whitespace is content and must change the checksum")
	}
	if c.CalculateNormalized([]byte("Hello")) == c.CalculateNormalized([]byte("hello")) {
		t.Error("case is content and must change the checksum")
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("x  \r\ny\t\r\n\r\n")
	if got != "x\ny" {
		t.Errorf("normalizeText() = %q, want %q", got, "x\ny")
	}
}
