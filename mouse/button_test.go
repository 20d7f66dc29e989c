package mouse

import (
	"errors"
	"testing"
)

// TestParseButton_Names verifies accepted names and aliases.
func TestParseButton_Names(t *testing.T) {
	cases := map[string]Button{
		"":       Left,
		"left":   Left,
		"RIGHT":  Right,
		"middle": Middle,
		"wheel":  Middle,
		"x":      X1,
		"x1":     X1,
		" x2 ":   X2,
	}
	for in, want := range cases {
		got, err := ParseButton(in)
		if err != nil || got != want {
			t.Fatalf("ParseButton(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
}

// TestParseButton_Unknown verifies unknown names wrap ErrInvalidButton.
func TestParseButton_Unknown(t *testing.T) {
	if _, err := ParseButton("thumb"); !errors.Is(err, ErrInvalidButton) {
		t.Fatalf("expected ErrInvalidButton, got %v", err)
	}
}

// TestButtonString_RoundTrip verifies String output parses back to the same button.
func TestButtonString_RoundTrip(t *testing.T) {
	for _, b := range []Button{Left, Right, Middle, X1, X2} {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Fatalf("expected %s, got %s (%v)", b, got, err)
		}
	}
	if s := Button(12).String(); s != "button(12)" {
		t.Fatalf("unexpected string for unknown button: %q", s)
	}
}
