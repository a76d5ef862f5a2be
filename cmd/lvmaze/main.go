// Command lvmaze draws a random maze in the terminal and shows its solution
// or its longest path on request.
//
//	lvmaze HEIGHT WIDTH [--config file] [--seed n] [--no-animate] [--no-color] [--verbose]
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = "Usage: lvmaze HEIGHT WIDTH"

var errUsage = errors.New(usage)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// userMessage strips call-site context from the errors a user can cause.
func userMessage(err error) string {
	switch {
	case errors.Is(err, config.ErrDimensionsNotNumber):
		return config.ErrDimensionsNotNumber.Error()
	case errors.Is(err, config.ErrInvalidDimensions):
		return config.ErrInvalidDimensions.Error()
	case errors.Is(err, errUsage):
		return usage
	default:
		return err.Error()
	}
}

// newLogger builds a JSON zap logger on w behind a logr.Logger. It logs
// warnings and above, or everything down to V(1) when verbose is set.
func newLogger(w io.Writer, verbose bool) (logr.Logger, func()) {
	sink := zapcore.AddSync(w)
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	lvl := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		lvl.SetLevel(zap.DebugLevel)
	}

	zlog := zap.New(zapcore.NewCore(enc, sink, lvl),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSampler(core, time.Second, 100, 100)
		}),
		zap.ErrorOutput(sink),
	)

	return zapr.NewLogger(zlog), func() { _ = zlog.Sync() }
}
