package longest

import (
	"testing"

	"github.com/bornholm/traitkit/pkg/lifetime"
	"github.com/pkg/errors"
)

func TestSelect(t *testing.T) {
	type testCase struct {
		Mode          string
		First, Second string
		Expected      string
	}

	testCases := []testCase{
		{Mode: ModeBytes, First: "long string is long", Second: "xyz", Expected: "long string is long"},
		{Mode: ModeBytes, First: "abc", Second: "xyz", Expected: "abc"},
		{Mode: ModeRunes, First: "ööö", Second: "oooo", Expected: "oooo"},
		{Mode: ModeLexical, First: "zzzzz", Second: "zaunö", Expected: "zzzzz"},
		{Mode: ModeCollated, First: "äpfel", Second: "birne", Expected: "birne"},
	}

	for _, tc := range testCases {
		choose, err := Chooser(tc.Mode, "de")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		selected, err := Select(tc.First, tc.Second, choose, false)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.Expected, selected; e != g {
			t.Errorf("%s(%q, %q): expected '%v', got '%v'", tc.Mode, tc.First, tc.Second, e, g)
		}
	}
}

func TestSelectOutlive(t *testing.T) {
	if _, err := Select("long string is long", "xyz", lifetime.Longest, true); !errors.Is(err, lifetime.ErrLifetimeViolation) {
		t.Errorf("expected error '%v', got '%v'", lifetime.ErrLifetimeViolation, err)
	}
}

func TestChooserErrors(t *testing.T) {
	if _, err := Chooser("unknown", "de"); err == nil {
		t.Error("expected an error for an unknown mode")
	}

	if _, err := Chooser(ModeCollated, "not a language tag!"); err == nil {
		t.Error("expected an error for an invalid language")
	}
}
