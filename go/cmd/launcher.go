package cmd

import (
	"fmt"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string) int
}

var commands = make(map[string]*command)
var order []string
var pad int

// DefaultCommand runs when the first argument is a file instead of a
// command name.
var DefaultCommand = "show"

func Register(name, desc string, main func(args []string) int) {
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mapvis <command> [options] <mapfile> [args...]")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	fstr := fmt.Sprintf("  %%-%ds | %%s\n", pad)
	for _, name := range order {
		cmd := commands[name]
		fmt.Fprintf(os.Stderr, fstr, cmd.name, cmd.desc)
	}
	fmt.Fprintf(os.Stderr, "\nExample: %s top -n 10 firmware.map .text\n\n", os.Args[0])
}

func Main() {
	os.Exit(Dispatch(os.Args))
}

// Dispatch runs the command named by argv[1] and returns its exit status.
func Dispatch(argv []string) int {
	if len(argv) < 2 {
		usage()
		return 1
	}
	if cmd, ok := commands[argv[1]]; ok {
		args := append([]string{strings.Join(argv[:2], " ")}, argv[2:]...)
		return cmd.main(args)
	}
	if st, err := os.Stat(argv[1]); err == nil && !st.IsDir() {
		if cmd, ok := commands[DefaultCommand]; ok {
			args := append([]string{argv[0] + " " + DefaultCommand}, argv[1:]...)
			return cmd.main(args)
		}
	}
	fmt.Fprintf(os.Stderr, "Command '%s' not found.\n\n", argv[1])
	usage()
	return 1
}
