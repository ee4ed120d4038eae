package app

import (
	"context"
	"io"

	"go.uber.org/zap"

	"contactbook/internal/session"
)

// App runs contactbook sessions with one configuration and logger.
type App struct {
	Config Config
	Log    *zap.Logger
}

func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Config: cfg, Log: log}
}

// RunSession starts a fresh session reading commands from in. interactive
// enables the prompt and, when configured, colour.
func (a *App) RunSession(ctx context.Context, in io.Reader, out io.Writer, interactive bool) error {
	w := NewWire(a.Config, a.Log)
	w.Log.Debug("session started", zap.Bool("interactive", interactive))

	opts := session.Options{BlankLine: a.Config.BlankLine}
	if interactive {
		opts.Prompt = a.Config.Prompt
		if a.Config.Color {
			opts.Styles = session.ColorStyles()
		}
	}
	return session.New(w.Dispatcher, opts, w.Log.Named("session")).Run(ctx, in, out)
}

// Exec runs a single command against a fresh session and returns its reply.
func (a *App) Exec(command string, args []string) string {
	w := NewWire(a.Config, a.Log)
	return w.Dispatcher.Handle(command, args)
}
