package collect

import (
	"errors"
	"fmt"
	"testing"
)

type island struct {
	Name   string
	Cities []string
}

func TestNatural(t *testing.T) {
	eq := Natural[string]()
	if !eq("Medan", "Medan") || eq("Medan", "medan") {
		t.Errorf("natural equality is broken")
	}
}

func TestStructural(t *testing.T) {
	eq := Structural[island]()
	java := island{Name: "Java", Cities: []string{"Jakarta", "Bandung"}}
	if !eq(java, island{Name: "Java", Cities: []string{"Jakarta", "Bandung"}}) {
		t.Errorf("expected structurally equal islands to compare equal")
	}
	if eq(java, island{Name: "Java", Cities: []string{"Bandung", "Jakarta"}}) {
		t.Errorf("expected city order to matter")
	}
}

func TestErrorWrapping(t *testing.T) {
	err := fmt.Errorf("%w: index 4, size 4", ErrIndexOutOfRange)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected wrapped error to match")
	}
	if errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected error kinds to be distinct")
	}
	if NotStarted.String() != "not-started" || Exhausted.String() != "exhausted" {
		t.Errorf("unexpected cursor state names")
	}
}
