package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the shared *log.Logger. Components prefix their
// messages with their own name, e.g. "ProcessPrompt: ...".
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"taskagent "`
	Output string `config:"LOG_OUTPUT" default:"stdout"`
	UTC    bool   `config:"LOG_UTC" default:"false"`

	out io.Writer
}

func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.out
	if out == nil {
		w, err := outputWriter(il.Output)
		if err != nil {
			return ctx, err
		}
		out = w
	}

	flags := log.LstdFlags | log.Lmsgprefix
	if il.UTC {
		flags |= log.LUTC
	}
	depend.Register(log.New(out, il.Prefix, flags))
	return ctx, nil
}

func outputWriter(name string) (io.Writer, error) {
	switch strings.ToLower(name) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("unsupported LOG_OUTPUT %q: use stdout or stderr", name)
	}
}
