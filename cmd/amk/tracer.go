package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/amigaos-dev/amk"
)

// consoleTracer renders trace events through a zerolog console logger.
type consoleTracer struct {
	log zerolog.Logger
}

var _ amk.Tracer = (*consoleTracer)(nil)

func newConsoleTracer(w io.Writer, levelFlag string) (*consoleTracer, error) {
	level := zerolog.WarnLevel
	switch levelFlag {
	case "":
	case "off":
		level = zerolog.Disabled
	case "warn", "w":
		level = zerolog.WarnLevel
	case "info", "i":
		level = zerolog.InfoLevel
	case "debug", "d":
		level = zerolog.DebugLevel
	default:
		return nil, fmt.Errorf("illegal trace level '%s'", levelFlag)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).
		With().Timestamp().Logger()
	return &consoleTracer{log: log}, nil
}

func (tr *consoleTracer) event(e *zerolog.Event, t *amk.Trace, args []any) *zerolog.Event {
	e = e.Str("at", t.String())
	for len(args) > 1 {
		if k, ok := args[0].(string); ok {
			e = e.Interface(k, args[1])
		}
		args = args[2:]
	}
	return e
}

func (tr *consoleTracer) Debug(t *amk.Trace, msg string, args ...any) {
	tr.event(tr.log.Debug(), t, args).Msg(msg)
}

func (tr *consoleTracer) Info(t *amk.Trace, msg string, args ...any) {
	tr.event(tr.log.Info(), t, args).Msg(msg)
}

func (tr *consoleTracer) Warn(t *amk.Trace, msg string, args ...any) {
	tr.event(tr.log.Warn(), t, args).Msg(msg)
}

func (tr *consoleTracer) StartTarget(t *amk.Trace, tgt *amk.Target) {
	tr.log.Info().Str("at", t.String()).Str("dir", tgt.Project().Dir).
		Msgf("run target '%s'", tgt.Name())
}

func (tr *consoleTracer) DoneTarget(t *amk.Trace, tgt *amk.Target, dt time.Duration) {
	tr.log.Info().Str("at", t.String()).Dur("took", dt).
		Msgf("target '%s' done", tgt.Name())
}

func (tr *consoleTracer) RunOp(t *amk.Trace, tgt *amk.Target, op amk.Operation) {
	tr.log.Info().Str("at", t.String()).
		Msgf("run op (%s)", op.Describe(tgt.Project()))
}

func (tr *consoleTracer) SkipOps(t *amk.Trace, tgt *amk.Target, n int) {
	if n == 0 {
		return
	}
	tr.log.Warn().Str("at", t.String()).
		Msgf("skip %d ops of target '%s'", n, tgt.Name())
}

func (tr *consoleTracer) RemovePath(t *amk.Trace, path string) {
	tr.log.Info().Str("at", t.String()).Msgf("remove %s", path)
}
