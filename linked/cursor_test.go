package linked

import (
	"errors"
	"testing"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collectAll[T any](t *testing.T, it collect.Iterator[T]) []T {
	t.Helper()
	var values []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error during iteration: %v", err)
		}
		values = append(values, v)
	}
	return values
}

// Scenario C
func TestIterateEmptyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := New[string]()
	if l.HasNext() {
		t.Errorf("never-iterated empty list should not have a next element")
	}
	l.Reset()
	if l.HasNext() {
		t.Errorf("empty list should not have a next element after reset")
	}
	if _, err := l.Next(); !errors.Is(err, collect.ErrIteratorExhausted) {
		t.Errorf("expected ErrIteratorExhausted, have %v", err)
	}
	if l.State() != collect.NotStarted {
		t.Errorf("expected cursor to be not-started, is %s", l.State())
	}
}

// Scenario D
func TestIterateTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := From("Jakarta", "Bandung", "Medan")
	l.Reset()
	first := collectAll[string](t, l)
	if !equalSlices(first, l.ToArray()) {
		t.Errorf("expected iteration to yield %v, have %v", l.ToArray(), first)
	}
	if l.State() != collect.Exhausted {
		t.Errorf("expected cursor to be exhausted, is %s", l.State())
	}
	if _, err := l.Next(); !errors.Is(err, collect.ErrIteratorExhausted) {
		t.Errorf("expected ErrIteratorExhausted, have %v", err)
	}
	l.Reset()
	second := collectAll[string](t, l)
	if !equalSlices(first, second) {
		t.Errorf("second iteration differs: %v vs %v", first, second)
	}
}

func TestCursorStates(t *testing.T) {
	l := From(1, 2)
	c := l.Iterator()
	if c.State() != collect.NotStarted {
		t.Errorf("expected not-started, is %s", c.State())
	}
	c.Next()
	if c.State() != collect.InProgress {
		t.Errorf("expected in-progress, is %s", c.State())
	}
	c.Next()
	if c.State() != collect.Exhausted {
		t.Errorf("expected exhausted, is %s", c.State())
	}
	c.Reset()
	c.Reset()
	if c.State() != collect.NotStarted {
		t.Errorf("expected not-started after reset, is %s", c.State())
	}
}

func TestIndependentCursors(t *testing.T) {
	l := From("a", "b", "c")
	c1, c2 := l.Iterator(), l.Iterator()
	c1.Next()
	c1.Next()
	v, _ := c2.Next()
	if v != "a" {
		t.Errorf("expected second cursor to start at a, is at %s", v)
	}
	v, _ = c1.Next()
	if v != "c" {
		t.Errorf("expected first cursor to be at c, is at %s", v)
	}
	if first, _ := l.Next(); first != "a" {
		t.Errorf("built-in cursor should be unaffected, is at %s", first)
	}
}

func TestCursorFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := From("a", "b", "c")
	l.Reset()
	l.Next()
	l.Remove("a") // removes the cursor's node
	if !l.HasNext() {
		t.Errorf("invalidated cursor should report a pending element")
	}
	if _, err := l.Next(); !errors.Is(err, collect.ErrConcurrentModification) {
		t.Errorf("expected ErrConcurrentModification, have %v", err)
	}
	l.Reset()
	if values := collectAll[string](t, l); !equalSlices(values, []string{"b", "c"}) {
		t.Errorf("expected [b c] after reset, have %v", values)
	}
	// exhausted cursor, then add
	l.Add("d")
	if _, err := l.Next(); !errors.Is(err, collect.ErrConcurrentModification) {
		t.Errorf("expected ErrConcurrentModification after Add, have %v", err)
	}
}

func TestCursorToleratesSet(t *testing.T) {
	l := From("a", "b", "c")
	c := l.Iterator()
	c.Next()
	if err := l.Set(0, "A"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set(1, "B"); err != nil {
		t.Fatal(err)
	}
	v, err := c.Next()
	if err != nil || v != "B" {
		t.Errorf("expected B, have %q, %v", v, err)
	}
}

func TestNotStartedCursorSurvivesModification(t *testing.T) {
	l := From(1, 2)
	c := l.Iterator()
	l.Add(3)
	l.Remove(1)
	values := collectAll[int](t, c)
	if len(values) != 2 || values[0] != 2 || values[1] != 3 {
		t.Errorf("expected [2 3], have %v", values)
	}
}

func TestClearResetsBuiltinCursor(t *testing.T) {
	l := From(1, 2)
	other := l.Iterator()
	other.Next()
	l.Next()
	l.Clear()
	if l.State() != collect.NotStarted {
		t.Errorf("expected built-in cursor to be reset by Clear, is %s", l.State())
	}
	if l.HasNext() {
		t.Errorf("cleared list should have no next element")
	}
	if _, err := other.Next(); !errors.Is(err, collect.ErrConcurrentModification) {
		t.Errorf("expected ErrConcurrentModification for other cursor, have %v", err)
	}
}
