package domain

import (
	"errors"
	"testing"
)

func TestCategoryLabelRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := CategoryFromLabel(c.Label())
		if err != nil {
			t.Fatalf("resolve %q: %v", c.Label(), err)
		}
		if got != c {
			t.Fatalf("expected %d for %q, got %d", c, c.Label(), got)
		}
	}
}

func TestDifficultyLabelRoundTrip(t *testing.T) {
	for _, d := range Difficulties() {
		got, err := DifficultyFromLabel(d.Label())
		if err != nil {
			t.Fatalf("resolve %q: %v", d.Label(), err)
		}
		if got != d {
			t.Fatalf("expected %v, got %v", d, got)
		}
	}
}

func TestTypeLabelRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := TypeFromLabel(typ.Label())
		if err != nil {
			t.Fatalf("resolve %q: %v", typ.Label(), err)
		}
		if got != typ {
			t.Fatalf("expected %v, got %v", typ, got)
		}
	}
}

func TestLabelsAcceptWireValues(t *testing.T) {
	if c, err := CategoryFromLabel("15"); err != nil || c != CategoryVideoGames {
		t.Fatalf("expected video games from id, got %v %v", c, err)
	}
	if d, err := DifficultyFromLabel("hard"); err != nil || d != DifficultyHard {
		t.Fatalf("expected hard, got %v %v", d, err)
	}
	if typ, err := TypeFromLabel("boolean"); err != nil || typ != TypeBoolean {
		t.Fatalf("expected boolean, got %v %v", typ, err)
	}
	if c, err := CategoryFromLabel("entertainment: video games"); err != nil || c != CategoryVideoGames {
		t.Fatalf("expected case-insensitive match, got %v %v", c, err)
	}
	if d, err := DifficultyFromLabel(""); err != nil || d != DifficultyAny {
		t.Fatalf("expected empty label to mean any, got %v %v", d, err)
	}
}

func TestUnknownLabelsAreConfigurationErrors(t *testing.T) {
	if _, err := CategoryFromLabel("Cooking"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, err := CategoryFromLabel("8"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for unknown id, got %v", err)
	}
	if _, err := DifficultyFromLabel("impossible"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	_, err := TypeFromLabel("essay")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if cfgErr.Axis != "type" || cfgErr.Label != "essay" {
		t.Fatalf("unexpected error detail %+v", cfgErr)
	}
}

func TestMustPanicsOnUnknownLabel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustDifficulty("nightmare")
}

func TestWireValues(t *testing.T) {
	if CategoryAny.Wire() != 0 || !CategoryAny.IsAny() {
		t.Fatalf("expected any category to be 0")
	}
	if CategoryVideoGames.Wire() != 15 {
		t.Fatalf("expected 15, got %d", CategoryVideoGames.Wire())
	}
	if DifficultyAny.Wire() != "" || TypeAny.Wire() != "" {
		t.Fatalf("expected any difficulty/type to have no wire value")
	}
	if TypeMultiple.Wire() != "multiple" || DifficultyMedium.Wire() != "medium" {
		t.Fatalf("unexpected wire values")
	}
	if typ, ok := TypeFromWire("boolean"); !ok || typ != TypeBoolean {
		t.Fatalf("expected boolean from wire")
	}
	if _, ok := DifficultyFromWire(""); ok {
		t.Fatalf("empty wire value must not resolve")
	}
}

func TestNewTriviaOptionsValidatesAmount(t *testing.T) {
	if _, err := NewTriviaOptions(0, CategoryAny, DifficultyAny, TypeAny); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for 0, got %v", err)
	}
	if _, err := NewTriviaOptions(MaxAmount+1, CategoryAny, DifficultyAny, TypeAny); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error above cap, got %v", err)
	}
	opts, err := NewTriviaOptions(5, CategoryVideoGames, DifficultyEasy, TypeBoolean)
	if err != nil {
		t.Fatalf("new options: %v", err)
	}
	if opts.Amount != 5 || opts.Category != CategoryVideoGames {
		t.Fatalf("unexpected options %+v", opts)
	}
}
