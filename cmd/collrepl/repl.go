package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/collect"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracing keys of the container packages
var traceKeys = []string{
	"collect.linked", "collect.arraylist", "collect.hashmap", "collect.queue",
	"collect.stack", "collect.repl",
}

// session logs the commands of init files.
var session tracing.Trace

// main() starts an interactive CLI ("CollREPL"), where users may create
// containers and operate on them. CollREPL prints the result of every
// operation, or the error it produced.
//
func main() {
	// set up logging
	initDisplay()
	session = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to CollREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("coll> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp()
	intp.repl = repl
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Eval(input)
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	if session != nil {
		session.SetTraceLevel(level)
	}
}

// Intp is our interpreter object
type Intp struct {
	env  *BindingTable
	repl *readline.Instance
}

// NewIntp creates an interpreter with an empty binding table.
func NewIntp() *Intp {
	return &Intp{env: NewBindingTable()}
}

// output is the result of a command, to be rendered by the interpreter.
type output struct {
	text   string
	table  pterm.TableData   // for `ls`
	tree   pterm.LeveledList // for `tree`
	titles []string          // for `demo`
	blocks [][]string        // for `demo`
	quit   bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			lineno++
			continue
		}
		session.Debugf("init %d: %s", lineno, line)
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command line and prints the result.
//
func (intp *Intp) Eval(line string) (bool, error) {
	out, err := intp.execute(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	intp.render(out)
	return out.quit, nil
}

func (intp *Intp) render(out output) {
	switch {
	case out.table != nil:
		pterm.DefaultTable.WithHasHeader().WithData(out.table).Render()
	case out.tree != nil:
		root := pterm.NewTreeFromLeveledList(out.tree)
		pterm.DefaultTree.WithRoot(root).Render()
	case out.blocks != nil:
		for i, title := range out.titles {
			pterm.Println()
			pterm.Info.Println("=== " + title + " ===")
			for _, line := range out.blocks[i] {
				pterm.Println("   " + line)
			}
		}
	case out.text != "":
		pterm.Info.Println(out.text)
	}
}

// execute runs a command line.
func (intp *Intp) execute(line string) (output, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return output{}, err
	}
	if len(tokens) == 0 {
		return output{}, nil
	}
	cmd, args := tokens[0].text, tokens[1:]
	switch cmd {
	case "quit", "exit":
		return output{quit: true}, nil
	case "help":
		return output{text: intp.help()}, nil
	case "demo":
		titles, blocks, err := runDemos()
		return output{titles: titles, blocks: blocks}, err
	case "new":
		return intp.define(args)
	case "ls":
		return output{table: intp.listing()}, nil
	case "tree":
		if len(args) != 1 {
			return output{}, fmt.Errorf("usage: tree <name>")
		}
		b := intp.env.Resolve(args[0].text)
		if b == nil {
			return output{}, fmt.Errorf("no container named %q", args[0].text)
		}
		return output{tree: leveled(b)}, nil
	}
	b := intp.env.Resolve(cmd)
	if b == nil {
		return output{}, fmt.Errorf("unknown command or container %q", cmd)
	}
	if len(args) == 0 {
		return output{}, fmt.Errorf("usage: %s <op> [args…]; ops are: %s", cmd,
			strings.Join(b.h.ops(), " "))
	}
	op := strings.ToLower(args[0].text)
	result, err := b.h.exec(op, args[1:])
	if errors.Is(err, errUnknownOp) {
		return output{}, fmt.Errorf("%s %s does not support %q", b.Kind, cmd, op)
	}
	if err != nil {
		tracer().P("binding", cmd).Debugf("%s failed: %v", op, err)
		return output{}, explain(err)
	}
	return output{text: result}, nil
}

func (intp *Intp) define(args []token) (output, error) {
	if len(args) != 2 {
		return output{}, fmt.Errorf("usage: new <list|arraylist|map|queue|stack> <name>")
	}
	k := KindFromString(strings.ToLower(args[0].text))
	if k == NoKind {
		return output{}, fmt.Errorf("unknown container kind %q", args[0].text)
	}
	if args[1].kind != wordTok {
		return output{}, fmt.Errorf("container name must be a word, got %q", args[1].text)
	}
	b, old, err := intp.env.Define(args[1].text, k)
	if err != nil {
		return output{}, err
	}
	if old != nil {
		return output{text: fmt.Sprintf("replaced %s %s by new %s", old.Kind, b.Name(), b.Kind)}, nil
	}
	return output{text: fmt.Sprintf("new %s %s", b.Kind, b.Name())}, nil
}

func (intp *Intp) listing() pterm.TableData {
	data := pterm.TableData{{"name", "kind", "size"}}
	for _, name := range intp.env.Names() {
		b := intp.env.Resolve(name)
		c := b.h.size()
		data = append(data, []string{name, b.Kind.String(), strconv.Itoa(c)})
	}
	return data
}

func (intp *Intp) help() string {
	var kinds []string
	for name := range kindNames {
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	var b strings.Builder
	b.WriteString("commands: new <kind> <name> | <name> <op> [args…] | ls | tree <name> | demo | quit\n")
	for _, k := range kinds {
		fmt.Fprintf(&b, "  %-9s: %s\n", k, strings.Join(newHandler(kindNames[k]).ops(), " "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// leveled renders a binding as a two-level list for tree display.
func leveled(b *Binding) pterm.LeveledList {
	ll := pterm.LeveledList{{Level: 0, Text: b.Name()}}
	values := b.h.values()
	if len(values) == 0 {
		return append(ll, pterm.LeveledListItem{Level: 1, Text: "(empty)"})
	}
	for _, v := range values {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: v})
	}
	return ll
}

// explain adds a hint to container errors.
func explain(err error) error {
	switch {
	case errors.Is(err, collect.ErrIteratorExhausted):
		return fmt.Errorf("%w (use reset to start over)", err)
	case errors.Is(err, collect.ErrConcurrentModification):
		return fmt.Errorf("%w (use reset to restart the iteration)", err)
	}
	return err
}
