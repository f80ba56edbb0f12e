package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/arraylist"
	"github.com/npillmayer/collect/hashmap"
	"github.com/npillmayer/collect/linked"
	"github.com/npillmayer/collect/queue"
	"github.com/npillmayer/collect/stack"
)

// errUnknownOp is returned by handlers for operations they do not support.
var errUnknownOp = errors.New("unknown operation")

// handler executes operations on a container. All REPL containers hold
// strings.
type handler interface {
	exec(op string, args []token) (string, error)
	values() []string // contents, rendered for display
	size() int
	ops() []string // names of supported operations
}

func newHandler(k Kind) handler {
	switch k {
	case LinkedListKind:
		return &listHandler{l: linked.New[string]()}
	case ArrayListKind:
		return &listHandler{l: arraylist.New[string]()}
	case HashMapKind:
		return &mapHandler{m: hashmap.New[string, string]()}
	case QueueKind:
		return &queueHandler{q: queue.New[string]()}
	case StackKind:
		return &stackHandler{s: stack.New[string]()}
	}
	return nil
}

// --- Shared operations -----------------------------------------------------

var collectionOps = []string{"add", "remove", "contains", "size", "empty", "clear", "show"}
var iteratorOps = []string{"hasnext", "next", "reset"}

func collectionOp(c collect.Collection[string], op string, args []token) (string, error) {
	switch op {
	case "add":
		if err := needArgs(op, args, 1, -1); err != nil {
			return "", err
		}
		for _, a := range args {
			c.Add(a.text)
		}
		return strconv.Itoa(c.Size()), nil
	case "remove":
		if err := needArgs(op, args, 1, 1); err != nil {
			return "", err
		}
		return yesNo(c.Remove(args[0].text)), nil
	case "contains":
		if err := needArgs(op, args, 1, 1); err != nil {
			return "", err
		}
		return yesNo(c.Contains(args[0].text)), nil
	case "size":
		return strconv.Itoa(c.Size()), nil
	case "empty":
		return yesNo(c.IsEmpty()), nil
	case "clear":
		c.Clear()
		return "cleared", nil
	case "show":
		return strings.Join(c.ToArray(), " -> "), nil
	}
	return "", errUnknownOp
}

func iteratorOp(it collect.Iterator[string], op string) (string, error) {
	switch op {
	case "hasnext":
		return yesNo(it.HasNext()), nil
	case "next":
		return it.Next()
	case "reset":
		it.Reset()
		return "reset", nil
	}
	return "", errUnknownOp
}

// --- Lists -----------------------------------------------------------------

type iterableList interface {
	collect.List[string]
	collect.Iterator[string]
}

type listHandler struct {
	l iterableList
}

func (h *listHandler) exec(op string, args []token) (string, error) {
	switch op {
	case "get":
		i, err := indexArg(op, args, 1)
		if err != nil {
			return "", err
		}
		return h.l.Get(i)
	case "set":
		i, err := indexArg(op, args, 2)
		if err != nil {
			return "", err
		}
		if err = h.l.Set(i, args[1].text); err != nil {
			return "", err
		}
		return strings.Join(h.l.ToArray(), " -> "), nil
	case "indexof":
		if err := needArgs(op, args, 1, 1); err != nil {
			return "", err
		}
		return strconv.Itoa(h.l.IndexOf(args[0].text)), nil
	case "removeat":
		i, err := indexArg(op, args, 1)
		if err != nil {
			return "", err
		}
		return h.l.RemoveAt(i)
	}
	out, err := collectionOp(h.l, op, args)
	if errors.Is(err, errUnknownOp) {
		return iteratorOp(h.l, op)
	}
	return out, err
}

func (h *listHandler) values() []string { return h.l.ToArray() }
func (h *listHandler) size() int        { return h.l.Size() }

func (h *listHandler) ops() []string {
	ops := append([]string{"get", "set", "indexof", "removeat"}, collectionOps...)
	return append(ops, iteratorOps...)
}

// --- Queue and stack -------------------------------------------------------

type queueHandler struct {
	q *queue.Queue[string]
}

func (h *queueHandler) exec(op string, args []token) (string, error) {
	switch op {
	case "enqueue":
		if err := needArgs(op, args, 1, -1); err != nil {
			return "", err
		}
		for _, a := range args {
			h.q.Enqueue(a.text)
		}
		return strconv.Itoa(h.q.Size()), nil
	case "dequeue":
		return h.q.Dequeue()
	case "peek":
		return h.q.Peek()
	}
	out, err := collectionOp(h.q, op, args)
	if errors.Is(err, errUnknownOp) {
		return iteratorOp(h.q, op)
	}
	return out, err
}

func (h *queueHandler) values() []string { return h.q.ToArray() }
func (h *queueHandler) size() int        { return h.q.Size() }

func (h *queueHandler) ops() []string {
	ops := append([]string{"enqueue", "dequeue", "peek"}, collectionOps...)
	return append(ops, iteratorOps...)
}

type stackHandler struct {
	s *stack.Stack[string]
}

func (h *stackHandler) exec(op string, args []token) (string, error) {
	switch op {
	case "push":
		if err := needArgs(op, args, 1, -1); err != nil {
			return "", err
		}
		for _, a := range args {
			h.s.Push(a.text)
		}
		return strconv.Itoa(h.s.Size()), nil
	case "pop":
		return h.s.Pop()
	case "peek":
		return h.s.Peek()
	}
	out, err := collectionOp(h.s, op, args)
	if errors.Is(err, errUnknownOp) {
		return iteratorOp(h.s, op)
	}
	return out, err
}

func (h *stackHandler) values() []string { return h.s.ToArray() }
func (h *stackHandler) size() int        { return h.s.Size() }

func (h *stackHandler) ops() []string {
	ops := append([]string{"push", "pop", "peek"}, collectionOps...)
	return append(ops, iteratorOps...)
}

// --- Map -------------------------------------------------------------------

type mapHandler struct {
	m *hashmap.HashMap[string, string]
}

func (h *mapHandler) exec(op string, args []token) (string, error) {
	switch op {
	case "put":
		if err := needArgs(op, args, 2, 2); err != nil {
			return "", err
		}
		h.m.Put(args[0].text, args[1].text)
		return strconv.Itoa(h.m.Size()), nil
	case "get", "remove", "haskey":
		if err := needArgs(op, args, 1, 1); err != nil {
			return "", err
		}
		switch op {
		case "get":
			return h.m.Get(args[0].text)
		case "remove":
			return h.m.Remove(args[0].text)
		}
		return yesNo(h.m.ContainsKey(args[0].text)), nil
	case "keys":
		return strings.Join(h.m.Keys(), ", "), nil
	case "values":
		return strings.Join(h.m.Values(), ", "), nil
	case "size":
		return strconv.Itoa(h.m.Size()), nil
	case "empty":
		return yesNo(h.m.IsEmpty()), nil
	case "clear":
		h.m.Clear()
		return "cleared", nil
	case "show":
		return strings.Join(h.values(), ", "), nil
	case "hasnext":
		return yesNo(h.m.HasNext()), nil
	case "next":
		e, err := h.m.Next()
		if err != nil {
			return "", err
		}
		return entryString(e), nil
	case "reset":
		h.m.Reset()
		return "reset", nil
	}
	return "", errUnknownOp
}

func (h *mapHandler) values() []string {
	entries := h.m.Entries()
	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = entryString(e)
	}
	return values
}

func (h *mapHandler) size() int { return h.m.Size() }

func (h *mapHandler) ops() []string {
	return []string{"put", "get", "haskey", "remove", "keys", "values", "size", "empty",
		"clear", "show", "hasnext", "next", "reset"}
}

// --- Helpers ---------------------------------------------------------------

func entryString(e collect.Entry[string, string]) string {
	return e.Key + " = " + e.Value
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// needArgs checks the argument count; max < 0 means unbounded.
func needArgs(op string, args []token, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return fmt.Errorf("wrong number of arguments for %s: %d", op, len(args))
	}
	return nil
}

// indexArg checks the argument count and returns the first argument as an index.
func indexArg(op string, args []token, n int) (int, error) {
	if err := needArgs(op, args, n, n); err != nil {
		return 0, err
	}
	if args[0].kind != numTok {
		return 0, fmt.Errorf("%s expects an index, got %q", op, args[0].text)
	}
	return args[0].n, nil
}
