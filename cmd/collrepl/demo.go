package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/arraylist"
	"github.com/npillmayer/collect/hashmap"
	"github.com/npillmayer/collect/linked"
	"github.com/npillmayer/collect/queue"
	"github.com/npillmayer/collect/stack"
)

// A demo replays a fixed session with one kind of container and reports
// what happened, line by line.
type demo struct {
	title string
	run   func(out *demoOutput)
}

type demoOutput struct {
	lines []string
	err   error // first error encountered
}

func (o *demoOutput) printf(format string, args ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, args...))
}

func (o *demoOutput) check(err error) bool {
	if err != nil && o.err == nil {
		o.err = err
	}
	return err == nil
}

// drain runs the built-in cursor of it to the end, calling f for every
// element. It stops at the first error.
func drain[T any](out *demoOutput, it collect.Iterator[T], f func(T)) {
	for it.HasNext() {
		v, err := it.Next()
		if !out.check(err) {
			return
		}
		f(v)
	}
}

var demos = []demo{
	{"ArrayList", arrayListDemo},
	{"HashMap", hashMapDemo},
	{"LinkedList", linkedListDemo},
	{"Queue", queueDemo},
	{"Stack", stackDemo},
}

// runDemos runs all demos, returning titles and output lines.
func runDemos() ([]string, [][]string, error) {
	titles := make([]string, len(demos))
	outputs := make([][]string, len(demos))
	for i, d := range demos {
		out := &demoOutput{}
		d.run(out)
		if out.err != nil {
			return nil, nil, fmt.Errorf("demo %s: %w", d.title, out.err)
		}
		titles[i] = d.title
		outputs[i] = out.lines
	}
	return titles, outputs, nil
}

func arrayListDemo(out *demoOutput) {
	l := arraylist.New[string]()
	for _, fruit := range []string{"Apple", "Banana", "Cherry", "Date"} {
		l.Add(fruit)
	}
	out.printf("fruits: %s (size %d)", strings.Join(l.ToArray(), ", "), l.Size())
	if v, err := l.Get(2); out.check(err) {
		out.printf("index 2: %s", v)
	}
	out.printf("index of Banana: %d", l.IndexOf("Banana"))
	out.printf("contains Date: %s", yesNo(l.Contains("Date")))
	if out.check(l.Set(1, "Blueberry")) {
		out.printf("after set(1, Blueberry): %s", strings.Join(l.ToArray(), ", "))
	}
	if v, err := l.RemoveAt(2); out.check(err) {
		out.printf("removed index 2: %s", v)
	}
	l.Reset()
	drain[string](out, l, func(v string) {
		out.printf("  - %s", v)
	})
}

func hashMapDemo(out *demoOutput) {
	m := hashmap.New[string, interface{}]()
	m.Put("nama", "Budi Santoso")
	m.Put("npm", "2024001")
	m.Put("jurusan", "Informatika")
	m.Put("semester", 5)
	m.Put("ipk", 3.75)
	if v, err := m.Get("nama"); out.check(err) {
		out.printf("nama: %v", v)
	}
	out.printf("keys: %s", strings.Join(m.Keys(), ", "))
	out.printf("values: %v", m.Values())
	out.printf("contains key npm: %s", yesNo(m.ContainsKey("npm")))
	m.Put("semester", 6)
	if v, err := m.Get("semester"); out.check(err) {
		out.printf("semester updated to %v", v)
	}
	if v, err := m.Remove("ipk"); out.check(err) {
		out.printf("removed ipk: %v (size %d)", v, m.Size())
	}
	m.Reset()
	drain[collect.Entry[string, interface{}]](out, m, func(e collect.Entry[string, interface{}]) {
		out.printf("  %s: %v", e.Key, e.Value)
	})
}

func linkedListDemo(out *demoOutput) {
	l := linked.New[string]()
	for _, city := range []string{"Jakarta", "Bandung", "Surabaya", "Medan"} {
		l.Add(city)
	}
	out.printf("cities: %s (size %d)", strings.Join(l.ToArray(), " -> "), l.Size())
	if v, err := l.Get(0); out.check(err) {
		out.printf("index 0: %s", v)
	}
	if v, err := l.Get(2); out.check(err) {
		out.printf("index 2: %s", v)
	}
	out.printf("index of Bandung: %d", l.IndexOf("Bandung"))
	out.printf("contains Surabaya: %s", yesNo(l.Contains("Surabaya")))
	if out.check(l.Set(1, "Yogyakarta")) {
		out.printf("after set(1, Yogyakarta): %s", strings.Join(l.ToArray(), " -> "))
	}
	l.Remove("Surabaya")
	out.printf("after remove(Surabaya): %s", strings.Join(l.ToArray(), " -> "))
	l.Reset()
	drain[string](out, l, func(v string) {
		out.printf("  - %s", v)
	})
}

func queueDemo(out *demoOutput) {
	q := queue.New[string]()
	for i := 1; i <= 4; i++ {
		q.Enqueue(fmt.Sprintf("Pelanggan %d", i))
	}
	out.printf("queue: %s", strings.Join(q.ToArray(), " <- "))
	if v, err := q.Peek(); out.check(err) {
		out.printf("front: %s", v)
	}
	for i := 0; i < 2; i++ {
		if v, err := q.Dequeue(); out.check(err) {
			out.printf("served: %s", v)
		}
	}
	q.Enqueue("Pelanggan 5")
	q.Reset()
	no := 1
	drain[string](out, q, func(v string) {
		out.printf("  %d. %s", no, v)
		no++
	})
}

func stackDemo(out *demoOutput) {
	s := stack.New[string]()
	for i := 1; i <= 4; i++ {
		s.Push(fmt.Sprintf("Piring %d", i))
	}
	out.printf("stack (bottom to top): %s", strings.Join(s.ToArray(), ", "))
	if v, err := s.Peek(); out.check(err) {
		out.printf("top: %s", v)
	}
	for i := 0; i < 2; i++ {
		if v, err := s.Pop(); out.check(err) {
			out.printf("popped: %s", v)
		}
	}
	out.printf("contains Piring 2: %s", yesNo(s.Contains("Piring 2")))
	s.Reset()
	drain[string](out, s, func(v string) {
		out.printf("  - %s", v)
	})
}
