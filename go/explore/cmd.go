package explore

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"

	"github.com/lunixbochs/argjoy"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/models"
	"github.com/lunixbochs/mapvis/go/report"
)

type Command struct {
	Name  string
	Desc  string
	Usage string
	// Run is a func taking *Context followed by string, int or uint64 args.
	Run interface{}
	// Defaults fill missing trailing args, right-aligned to Run's params.
	Defaults []string
}

var Commands = make(map[string]*Command)

func cmd(c *Command) *Command {
	fn := reflect.ValueOf(c.Run)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("Command.Run must be a func: got (%T) %#v\n", c.Run, c.Run))
	}
	Commands[c.Name] = c
	return c
}

func (c *Command) params() int {
	return reflect.TypeOf(c.Run).NumIn() - 1
}

// fill pads args with trailing defaults up to the parameter count.
func (c *Command) fill(args []string) []string {
	missing := c.params() - len(args)
	if missing <= 0 || missing > len(c.Defaults) {
		return args
	}
	return append(args, c.Defaults[len(c.Defaults)-missing:]...)
}

type Context struct {
	io.Writer
	R      *report.Reporter
	Config *models.Config

	quit bool
}

func NewContext(w io.Writer, m *models.MapFile, c *models.Config) *Context {
	c.Output = w
	return &Context{Writer: w, R: report.NewReporter(m, c), Config: c}
}

func (c *Context) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(c, format, a...)
}

func (c *Context) Done() bool { return c.quit }

func argCodec(arg interface{}, vals []interface{}) error {
	switch v := arg.(type) {
	case **Context:
		if c, ok := vals[0].(*Context); ok {
			*v = c
			return nil
		}
	case *string:
		if s, ok := vals[0].(string); ok {
			*v = s
			return nil
		}
	case *int:
		if s, ok := vals[0].(string); ok {
			n, err := strconv.Atoi(s)
			if err != nil {
				return errors.Errorf("%q is not a number", s)
			}
			*v = n
			return nil
		}
	case *uint64:
		if s, ok := vals[0].(string); ok {
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil {
				return errors.Errorf("%q is not an address", s)
			}
			*v = n
			return nil
		}
	}
	return argjoy.NoMatch
}

var aj = argjoy.NewArgjoy()

func init() { aj.Register(argCodec) }

// Run executes one command line. Command failures are printed to c rather
// than returned.
func Run(c *Context, line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		c.Printf("parse error: %v\n", err)
		return nil
	}
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	cmd, ok := Commands[name]
	if !ok {
		c.Printf("command not found. try 'help'.\n")
		return nil
	}
	args = cmd.fill(args)
	if len(args) != cmd.params() {
		c.Printf("usage: %s %s\n", cmd.Name, cmd.Usage)
		return nil
	}
	in := make([]interface{}, 0, len(args)+1)
	in = append(in, c)
	for _, a := range args {
		in = append(in, a)
	}
	out, err := aj.Call(cmd.Run, in...)
	if err != nil {
		c.Printf("error: %v\n", err)
	}
	if len(out) > 0 {
		if err, ok := out[0].(error); ok && err != nil {
			c.Printf("error: %v\n", err)
		}
	}
	return nil
}

func names() []string {
	var out []string
	for name := range Commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
