package resource

import (
	"errors"
	"testing"
)

func TestTableRegisterLookup(t *testing.T) {
	tbl := NewTable[string]()

	h1 := tbl.Register("paddle", "=")
	h2 := tbl.Register("face", "o")

	if !h1.Valid() || !h2.Valid() || h1 == h2 {
		t.Fatalf("handles should be valid and distinct, got %d and %d", h1, h2)
	}

	got, err := tbl.Lookup("face")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if got != h2 {
		t.Errorf("Lookup() = %d, expected %d", got, h2)
	}

	v, ok := tbl.Get(h1)
	if !ok || v != "=" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if tbl.Name(h2) != "face" {
		t.Errorf("Name() = %q, expected face", tbl.Name(h2))
	}
}

func TestTableReplaceKeepsHandle(t *testing.T) {
	tbl := NewTable[int]()

	h := tbl.Register("block", 1)
	if again := tbl.Register("block", 2); again != h {
		t.Errorf("re-register changed handle: %d -> %d", h, again)
	}
	if v, _ := tbl.Get(h); v != 2 {
		t.Errorf("Get() = %d, expected replaced value 2", v)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tbl.Len())
	}
}

func TestTableMissing(t *testing.T) {
	tbl := NewTable[int]()

	if _, err := tbl.Lookup("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, expected ErrNotFound", err)
	}
	if _, ok := tbl.Get(0); ok {
		t.Error("zero handle should not resolve")
	}
	if _, ok := tbl.Get(42); ok {
		t.Error("unknown handle should not resolve")
	}
}

func TestLookupAll(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Register("a", 1)
	tbl.Register("b", 2)

	got, err := LookupAll(tbl, "a", "b")
	if err != nil {
		t.Fatalf("LookupAll() error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LookupAll() returned %d handles", len(got))
	}

	if _, err := LookupAll(tbl, "a", "c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupAll() error = %v, expected ErrNotFound", err)
	}
}

func TestNamesSorted(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Register("zeta", 1)
	tbl.Register("alpha", 2)

	names := tbl.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Names() = %v", names)
	}
}

func TestMustGet(t *testing.T) {
	tbl := NewTable[rune]()
	h := tbl.Register("face", 'o')

	if got := tbl.MustGet(h); got != 'o' {
		t.Errorf("MustGet() = %q, expected 'o'", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet(0) should panic")
		}
	}()
	tbl.MustGet(0)
}
