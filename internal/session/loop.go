package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"contactbook/internal/domain"
)

// Farewell is printed when the session ends on an exit word.
const Farewell = "Good bye!"

// BlankLinePolicy decides what an empty input line does.
type BlankLinePolicy string

const (
	BlankLineIgnore BlankLinePolicy = "ignore"
	BlankLineExit   BlankLinePolicy = "exit"
)

// ParseBlankLinePolicy validates s as a BlankLinePolicy.
func ParseBlankLinePolicy(s string) (BlankLinePolicy, error) {
	switch p := BlankLinePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case BlankLineIgnore, BlankLineExit:
		return p, nil
	default:
		return "", fmt.Errorf("blank line policy must be %q or %q, got %q", BlankLineIgnore, BlankLineExit, s)
	}
}

var exitWords = map[string]bool{
	"goodbye": true,
	"close":   true,
	"exit":    true,
}

// Options tune a Loop.
type Options struct {
	Prompt    string // written before each line when non-empty
	BlankLine BlankLinePolicy
	Styles    Styles
}

// Loop reads command lines, hands them to a CommandHandler and prints the replies.
type Loop struct {
	handler domain.CommandHandler
	opts    Options
	log     *zap.Logger
}

// New returns a loop over handler. A nil log discards output.
func New(handler domain.CommandHandler, opts Options, log *zap.Logger) *Loop {
	if opts.BlankLine == "" {
		opts.BlankLine = BlankLineIgnore
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{handler: handler, opts: opts, log: log}
}

// Run processes lines from in until an exit word, end of input, a blank line
// under BlankLineExit, or cancellation of ctx between lines.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lines := 0
	defer func() { l.log.Debug("session ended", zap.Int("lines", lines)) }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.opts.Prompt != "" {
			if _, err := io.WriteString(out, l.opts.Styles.prompt(l.opts.Prompt)); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		lines++
		line := scanner.Text()

		if isExit(line) {
			return writeLine(out, Farewell)
		}

		command, args, err := l.handler.Parse(line)
		if errors.Is(err, domain.ErrEmptyInput) {
			if l.opts.BlankLine == BlankLineExit {
				return writeLine(out, Farewell)
			}
			continue
		}
		if err != nil {
			return err
		}

		reply := l.handler.Handle(command, args)
		if reply == "" {
			continue
		}
		if err := writeLine(out, l.opts.Styles.reply(reply)); err != nil {
			return err
		}
	}
}

// isExit reports whether line starts with an exit word, including "good bye".
func isExit(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	if exitWords[fields[0]] {
		return true
	}
	return len(fields) >= 2 && fields[0] == "good" && fields[1] == "bye"
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
