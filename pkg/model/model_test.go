package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestObjectID(t *testing.T) {
	tests := []struct {
		name   string
		obj    Object
		wantID string
		wantOK bool
	}{
		{name: "with id", obj: Object{"id": "5"}, wantID: "5", wantOK: true},
		{name: "without id", obj: Object{"name": "x"}, wantOK: false},
		{name: "empty", obj: Object{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.obj.ID()
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("ID() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestObjectMicros(t *testing.T) {
	obj := Object{"amount": "1500000", "name": "budget", "nested": Object{}}

	got, err := obj.Micros("amount")
	if err != nil {
		t.Fatalf("Micros returned error: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("Micros = %s, want 1.5", got)
	}

	if _, err := obj.Micros("name"); err == nil {
		t.Fatal("expected error for non-numeric field")
	}
	if _, err := obj.Micros("nested"); err == nil {
		t.Fatal("expected error for non-leaf field")
	}
}

func TestUnitsToMicros(t *testing.T) {
	if got := UnitsToMicros(decimal.RequireFromString("0.0123456")); got != 12345 {
		t.Fatalf("UnitsToMicros = %d, want 12345", got)
	}
	if got := UnitsToMicros(MicrosToUnits(42_000_000)); got != 42_000_000 {
		t.Fatalf("round trip = %d", got)
	}
}

func TestResultAccessors(t *testing.T) {
	var nilResult *Result
	if nilResult.Value() != nil {
		t.Fatal("nil result should have nil value")
	}
	if l := nilResult.List(); l == nil || len(l) != 0 {
		t.Fatalf("nil result List() = %v, want empty non-nil slice", l)
	}

	single := &Result{Kind: Single, Items: []any{"x"}}
	if single.Value() != "x" {
		t.Fatalf("Value() = %v", single.Value())
	}

	many := &Result{Kind: Many, Items: []any{"a", "b"}}
	if many.Value() != nil {
		t.Fatal("Value() of many result should be nil")
	}
	if len(many.List()) != 2 {
		t.Fatalf("List() = %v", many.List())
	}
}

func TestCardinalityString(t *testing.T) {
	if Plural.String() != "plural" || Singular.String() != "singular" {
		t.Fatalf("unexpected strings: %s %s", Plural, Singular)
	}
}
