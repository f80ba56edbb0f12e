package linked

import (
	"errors"
	"testing"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkChain verifies the structural invariants of a list.
func checkChain[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.count == 0) {
		t.Fatalf("head/tail/count disagree: head=%v, tail=%v, count=%d", l.head, l.tail, l.count)
	}
	if l.head == nil {
		return
	}
	if l.head.prev != nil {
		t.Errorf("head has a predecessor: %v", l.head.prev)
	}
	if l.tail.next != nil {
		t.Errorf("tail has a successor: %v", l.tail.next)
	}
	cnt := 0
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			t.Errorf("broken back-link after node #%d", cnt)
		}
		last = n
		cnt++
	}
	if last != l.tail {
		t.Errorf("chain does not end at tail")
	}
	if cnt != l.count {
		t.Errorf("count is %d, but chain has %d nodes", l.count, cnt)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddAndToArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := New[string]()
	checkChain(t, l)
	for _, city := range []string{"Jakarta", "Bandung", "Surabaya", "Medan"} {
		if !l.Add(city) {
			t.Errorf("Add(%q) returned false", city)
		}
		checkChain(t, l)
	}
	expected := []string{"Jakarta", "Bandung", "Surabaya", "Medan"}
	if arr := l.ToArray(); !equalSlices(arr, expected) {
		t.Errorf("expected %v, have %v", expected, arr)
	}
	if l.Size() != 4 {
		t.Errorf("expected size to be 4, is %d", l.Size())
	}
	for i, city := range l.ToArray() {
		if v, err := l.Get(i); err != nil || v != city {
			t.Errorf("Get(%d) = %q, %v; expected %q", i, v, err, city)
		}
	}
}

func TestToArrayIsIndependent(t *testing.T) {
	l := From("a", "b")
	arr := l.ToArray()
	arr[0] = "x"
	if v, _ := l.Get(0); v != "a" {
		t.Errorf("modifying the result of ToArray changed the list")
	}
}

// Scenario A + B
func TestSetRemoveIndexOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := From("Jakarta", "Bandung", "Surabaya", "Medan")
	if err := l.Set(1, "Yogyakarta"); err != nil {
		t.Fatal(err)
	}
	expected := []string{"Jakarta", "Yogyakarta", "Surabaya", "Medan"}
	if arr := l.ToArray(); !equalSlices(arr, expected) {
		t.Errorf("expected %v, have %v", expected, arr)
	}
	if !l.Remove("Surabaya") {
		t.Errorf("expected Remove(Surabaya) to succeed")
	}
	checkChain(t, l)
	expected = []string{"Jakarta", "Yogyakarta", "Medan"}
	if arr := l.ToArray(); !equalSlices(arr, expected) {
		t.Errorf("expected %v, have %v", expected, arr)
	}
	if i := l.IndexOf("Medan"); i != 2 {
		t.Errorf("expected IndexOf(Medan) = 2, is %d", i)
	}
	if i := l.IndexOf("Nonexistent"); i != -1 {
		t.Errorf("expected IndexOf(Nonexistent) = -1, is %d", i)
	}
	if !l.Contains("Yogyakarta") {
		t.Errorf("expected list to contain Yogyakarta")
	}
	if l.Remove("Surabaya") {
		t.Errorf("Surabaya removed twice")
	}
}

func TestRemoveEndpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := From(1, 2, 3, 4)
	l.Remove(1)
	checkChain(t, l)
	l.Remove(4)
	checkChain(t, l)
	if f, _ := l.Front(); f != 2 {
		t.Errorf("expected front to be 2, is %d", f)
	}
	if b, _ := l.Back(); b != 3 {
		t.Errorf("expected back to be 3, is %d", b)
	}
	l.Remove(2)
	l.Remove(3)
	checkChain(t, l)
	if !l.IsEmpty() {
		t.Errorf("expected list to be empty")
	}
	if _, err := l.Front(); !errors.Is(err, collect.ErrEmptyContainer) {
		t.Errorf("expected ErrEmptyContainer, have %v", err)
	}
}

func TestRemoveAt(t *testing.T) {
	l := From("a", "b", "c", "d", "e")
	for _, tc := range []struct {
		index    int
		removed  string
		expected []string
	}{
		{3, "d", []string{"a", "b", "c", "e"}},
		{0, "a", []string{"b", "c", "e"}},
		{2, "e", []string{"b", "c"}},
		{1, "c", []string{"b"}},
		{0, "b", []string{}},
	} {
		v, err := l.RemoveAt(tc.index)
		if err != nil || v != tc.removed {
			t.Errorf("RemoveAt(%d) = %q, %v; expected %q", tc.index, v, err, tc.removed)
		}
		checkChain(t, l)
		if arr := l.ToArray(); !equalSlices(arr, tc.expected) {
			t.Errorf("expected %v, have %v", tc.expected, arr)
		}
	}
}

func TestIndexBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := From("x", "y", "z")
	if _, err := l.Get(-1); !errors.Is(err, collect.ErrIndexOutOfRange) {
		t.Errorf("Get(-1): expected ErrIndexOutOfRange, have %v", err)
	}
	if _, err := l.Get(l.Size()); !errors.Is(err, collect.ErrIndexOutOfRange) {
		t.Errorf("Get(size): expected ErrIndexOutOfRange, have %v", err)
	}
	if err := l.Set(3, "w"); !errors.Is(err, collect.ErrIndexOutOfRange) {
		t.Errorf("Set(size): expected ErrIndexOutOfRange, have %v", err)
	}
	if _, err := l.RemoveAt(l.Size()); !errors.Is(err, collect.ErrIndexOutOfRange) {
		t.Errorf("RemoveAt(size): expected ErrIndexOutOfRange, have %v", err)
	}
	// failures must not touch the chain
	checkChain(t, l)
	if l.String() != "[x y z]" {
		t.Errorf("expected list to be unchanged, is %s", l)
	}
}

func TestClearTwice(t *testing.T) {
	l := From(1, 2, 3)
	l.Clear()
	if l.Size() != 0 {
		t.Errorf("expected size 0 after Clear, is %d", l.Size())
	}
	l.Clear()
	if l.Size() != 0 || !l.IsEmpty() {
		t.Errorf("expected size 0 after second Clear, is %d", l.Size())
	}
	checkChain(t, l)
	l.Add(4)
	checkChain(t, l)
	if l.String() != "[4]" {
		t.Errorf("expected [4], have %s", l)
	}
}

func TestEach(t *testing.T) {
	l := From(10, 20, 30, 40)
	sum := 0
	l.Each(func(i int, v int) bool {
		sum += v
		return i < 1
	})
	if sum != 30 {
		t.Errorf("expected Each to stop after 2 elements, sum is %d", sum)
	}
}

type city struct {
	Name    string
	Islands []string
}

func TestStructuralEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collect.linked")
	defer teardown()
	//
	l := NewWithEquality(collect.Structural[city]())
	l.Add(city{Name: "Jakarta", Islands: []string{"Java"}})
	l.Add(city{Name: "Makassar", Islands: []string{"Sulawesi"}})
	if i := l.IndexOf(city{Name: "Makassar", Islands: []string{"Sulawesi"}}); i != 1 {
		t.Errorf("expected structurally equal city at position 1, have %d", i)
	}
	if l.Contains(city{Name: "Makassar"}) {
		t.Errorf("city without islands should not match")
	}
}
