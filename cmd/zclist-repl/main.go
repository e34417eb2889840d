package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/todesschaf/zclist"
)

// REPL holds the state of the interactive session: one list and any
// number of named views over it.
type REPL struct {
	list   *zclist.List[int]
	views  map[string]*zclist.View[int]
	reader *bufio.Reader
}

func main() {
	fmt.Println("zclist REPL - Zero-Copy View Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		list:   zclist.NewList[int](),
		views:  make(map[string]*zclist.View[int]),
		reader: bufio.NewReader(os.Stdin),
	}

	// Main loop
	for {
		fmt.Print("zclist> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "show":
		r.cmdShow()

	case "len":
		fmt.Println(r.list.Len())

	case "append":
		r.cmdAppend(args)

	case "insert":
		r.cmdInsert(args)

	case "set":
		r.cmdSet(args)

	case "get":
		r.cmdGet(args)

	case "removeat":
		r.cmdRemoveAt(args)

	case "remove":
		r.cmdRemove(args)

	case "pop":
		r.cmdPop()

	case "clear":
		r.list.Clear()
		fmt.Println("List cleared")

	case "slice":
		r.cmdSlice(args)

	case "views":
		r.cmdViews()

	case "drop":
		r.cmdDrop(args)

	case "vshow":
		r.cmdVShow(args)

	case "vget":
		r.cmdVGet(args)

	case "vset":
		r.cmdVSet(args)

	case "vslice":
		r.cmdVSlice(args)

	case "vfind":
		r.cmdVFind(args)

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

LIST OPERATIONS:
  new [n ...]             Replace the list with the given elements
  show                    Print the list
  len                     Print the list length
  append <n> [n ...]      Append elements to the list
  insert <i> <n>          Insert an element at position i
  set <i> <n>             Replace the element at position i
  get <i>                 Print the element at position i
  removeat <i>            Remove the element at position i
  remove <n>              Remove the first occurrence of n
  pop                     Remove and print the last element
  clear                   Remove all elements

VIEW OPERATIONS:
  slice <name> <i> <j>    Create a named zero-copy view of [i, j)
  views                   List all views with their current windows
  drop <name>             Forget a view
  vshow <name>            Print a view's elements
  vget <name> <i>         Print the view element at i (negatives ok)
  vset <name> <i> <n>     Write through the view at i
  vslice <name> <new> <i> <j>
                          Create a nested view of a view
  vfind <name> <n>        Contains/count/index of n within the view

NOTE: Views share the list's storage. Shrink the list and watch a
      view's window clip or collapse on its next use; writes through
      a view show up in the list and in every overlapping view.

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) parseInts(args []string) ([]int, bool) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			fmt.Printf("Invalid number %q: %v\n", a, err)
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func (r *REPL) cmdNew(args []string) {
	elems, ok := r.parseInts(args)
	if !ok {
		return
	}

	r.list = zclist.NewListFrom(elems)
	r.views = make(map[string]*zclist.View[int])
	fmt.Printf("Created list with %d elements\n", r.list.Len())
}

func (r *REPL) cmdShow() {
	fmt.Printf("%s (len %d)\n", r.list, r.list.Len())
}

func (r *REPL) cmdAppend(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: append <n> [n ...]")
		return
	}

	elems, ok := r.parseInts(args)
	if !ok {
		return
	}

	r.list.Append(elems...)
	fmt.Printf("List is now %s\n", r.list)
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: insert <i> <n>")
		return
	}

	nums, ok := r.parseInts(args)
	if !ok {
		return
	}

	if err := r.list.Insert(nums[0], nums[1]); err != nil {
		fmt.Printf("Insert error: %v\n", err)
		return
	}
	fmt.Printf("List is now %s\n", r.list)
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: set <i> <n>")
		return
	}

	nums, ok := r.parseInts(args)
	if !ok {
		return
	}

	if nums[0] < 0 || nums[0] >= r.list.Len() {
		fmt.Printf("Set error: %v\n", zclist.ErrIndexOutOfRange)
		return
	}
	r.list.SetAt(nums[0], nums[1])
	fmt.Printf("List is now %s\n", r.list)
}

func (r *REPL) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: get <i>")
		return
	}

	nums, ok := r.parseInts(args)
	if !ok {
		return
	}

	if nums[0] < 0 || nums[0] >= r.list.Len() {
		fmt.Printf("Get error: %v\n", zclist.ErrIndexOutOfRange)
		return
	}
	fmt.Println(r.list.At(nums[0]))
}

func (r *REPL) cmdRemoveAt(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: removeat <i>")
		return
	}

	nums, ok := r.parseInts(args)
	if !ok {
		return
	}

	x, err := r.list.RemoveAt(nums[0])
	if err != nil {
		fmt.Printf("Remove error: %v\n", err)
		return
	}
	fmt.Printf("Removed %d; list is now %s\n", x, r.list)
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: remove <n>")
		return
	}

	nums, ok := r.parseInts(args)
	if !ok {
		return
	}

	if err := r.list.Remove(nums[0]); err != nil {
		fmt.Printf("Remove error: %v\n", err)
		return
	}
	fmt.Printf("List is now %s\n", r.list)
}

func (r *REPL) cmdPop() {
	x, err := r.list.Pop()
	if err != nil {
		fmt.Printf("Pop error: %v\n", err)
		return
	}
	fmt.Printf("Popped %d; list is now %s\n", x, r.list)
}

func (r *REPL) cmdSlice(args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: slice <name> <i> <j>")
		return
	}

	nums, ok := r.parseInts(args[1:])
	if !ok {
		return
	}

	v, err := r.list.Slice(nums[0], nums[1])
	if err != nil {
		fmt.Printf("Slice error: %v\n", err)
		return
	}

	r.views[args[0]] = v
	fmt.Printf("View %q = %s\n", args[0], v)
}

func (r *REPL) cmdViews() {
	if len(r.views) == 0 {
		fmt.Println("No views. Use 'slice <name> <i> <j>' to create one.")
		return
	}

	for name, v := range r.views {
		low, high := v.Bounds()
		fmt.Printf("  %-12s [%d, %d) len=%d  %s\n", name, low, high, v.Len(), v)
	}
}

func (r *REPL) cmdDrop(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: drop <name>")
		return
	}

	if _, ok := r.views[args[0]]; !ok {
		fmt.Printf("No view named %q\n", args[0])
		return
	}
	delete(r.views, args[0])
	fmt.Printf("Dropped view %q\n", args[0])
}

func (r *REPL) lookupView(name string) (*zclist.View[int], bool) {
	v, ok := r.views[name]
	if !ok {
		fmt.Printf("No view named %q. Use 'views' to list them.\n", name)
	}
	return v, ok
}

func (r *REPL) cmdVShow(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: vshow <name>")
		return
	}

	v, ok := r.lookupView(args[0])
	if !ok {
		return
	}
	fmt.Printf("%s (len %d)\n", v, v.Len())
}

func (r *REPL) cmdVGet(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: vget <name> <i>")
		return
	}

	v, ok := r.lookupView(args[0])
	if !ok {
		return
	}

	i, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Invalid index: %v\n", err)
		return
	}

	x, err := v.Get(i)
	if err != nil {
		fmt.Printf("Get error: %v\n", err)
		return
	}
	fmt.Println(x)
}

func (r *REPL) cmdVSet(args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: vset <name> <i> <n>")
		return
	}

	v, ok := r.lookupView(args[0])
	if !ok {
		return
	}

	nums, ok := r.parseInts(args[1:])
	if !ok {
		return
	}

	if err := v.Set(nums[0], nums[1]); err != nil {
		fmt.Printf("Set error: %v\n", err)
		return
	}
	fmt.Printf("View %q = %s, list = %s\n", args[0], v, r.list)
}

func (r *REPL) cmdVSlice(args []string) {
	if len(args) != 4 {
		fmt.Println("Usage: vslice <name> <new> <i> <j>")
		return
	}

	v, ok := r.lookupView(args[0])
	if !ok {
		return
	}

	nums, ok := r.parseInts(args[2:])
	if !ok {
		return
	}

	sub, err := v.Slice(nums[0], nums[1])
	if err != nil {
		fmt.Printf("Slice error: %v\n", err)
		return
	}

	r.views[args[1]] = sub
	fmt.Printf("View %q = %s\n", args[1], sub)
}

func (r *REPL) cmdVFind(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: vfind <name> <n>")
		return
	}

	v, ok := r.lookupView(args[0])
	if !ok {
		return
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Invalid number: %v\n", err)
		return
	}

	fmt.Printf("contains: %v\n", v.Contains(n))
	fmt.Printf("count:    %d\n", v.Count(n))
	pos, err := v.Index(n)
	if err != nil {
		fmt.Printf("index:    %v\n", err)
	} else {
		fmt.Printf("index:    %d\n", pos)
	}
}
