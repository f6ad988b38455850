package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd"

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a console line (e.g. "cube").
// fs is that command's FlagSet (nil for a command without flags); run is called after
// fs.Parse(args[1:]) succeeds. Flag values are reset to their defaults after every run,
// so a flag left out of one line never inherits the previous line's value.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse tokenizes a console line by spaces. A leading "cmd" token is optional and dropped.
// ok is false for a blank line.
func Parse(line string) (args []string, ok bool) {
	args = strings.Fields(line)
	if len(args) > 0 && args[0] == prefix {
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (try: %s)", name, strings.Join(r.Names(), ", "))
	}
	defer resetFlags(cmd.FlagSet)
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

func resetFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
}
