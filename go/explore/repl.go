// Package explore is an interactive shell over a parsed map file.
package explore

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/mapvis/go/models"
)

type Repl struct {
	rl  *readline.Instance
	ctx *Context
}

func historyPath() string {
	cacheDir := configdir.New("mapvis", "explore").QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

func NewRepl(m *models.MapFile, c *models.Config) (*Repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mapvis> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start readline")
	}
	return &Repl{rl: rl, ctx: NewContext(rl.Stdout(), m, c)}, nil
}

// Run reads commands until quit, EOF or an interrupt on an empty line.
func (r *Repl) Run() error {
	defer r.rl.Close()
	r.ctx.Printf("%d sections loaded. type 'help' for commands.\n", len(r.ctx.R.SectionNames()))
	for !r.ctx.Done() {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.WithStack(err)
		}
		if err := Run(r.ctx, strings.TrimSpace(line)); err != nil {
			return err
		}
	}
	return nil
}
