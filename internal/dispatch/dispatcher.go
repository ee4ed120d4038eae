package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contactbook/internal/domain"
)

// Kind is the user-facing name of an error kind.
type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindMissingArgument Kind = "MissingArgumentError"
	KindUnknownCommand  Kind = "UnknownCommandError"
	KindDuplicateKey    Kind = "DuplicateKeyError"
	KindNotFound        Kind = "NotFoundError"
	KindInternal        Kind = "Error"
)

// handlerFunc runs one command against the contact service.
type handlerFunc func(svc domain.ContactService, args []string) (string, error)

var handlers = map[Command]handlerFunc{
	CmdHello:  handleHello,
	CmdHelp:   handleHelp,
	CmdAdd:    handleAdd,
	CmdDelete: handleDelete,
	CmdChange: handleChange,
	CmdShow:   handleShow,
}

// Dispatcher routes command words to handlers and turns their failures into text.
type Dispatcher struct {
	svc domain.ContactService
	log *zap.Logger
}

var _ domain.CommandHandler = (*Dispatcher)(nil)

// New returns a dispatcher over svc. A nil log discards output.
func New(svc domain.ContactService, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{svc: svc, log: log}
}

// Parse tokenizes one input line; see the package-level Parse.
func (d *Dispatcher) Parse(line string) (string, []string, error) { return Parse(line) }

// Handle runs command with args. Failures come back as a single line
// prefixed with their kind; Handle itself never fails.
func (d *Dispatcher) Handle(command string, args []string) string {
	out, err := d.dispatch(command, args)
	if err != nil {
		kind := KindOf(err)
		if kind == KindInternal {
			d.log.Error("command failed", zap.String("command", command), zap.Error(err))
		} else {
			d.log.Info("command rejected",
				zap.String("command", command), zap.String("kind", string(kind)), zap.Error(err))
		}
		return Describe(err)
	}
	return out
}

func (d *Dispatcher) dispatch(command string, args []string) (string, error) {
	cmd, err := Lookup(command)
	if err != nil {
		return "", err
	}
	d.log.Debug("dispatching", zap.Stringer("command", cmd), zap.Int("args", len(args)))
	return handlers[cmd](d.svc, args)
}

var kinds = []struct {
	sentinel error
	kind     Kind
}{
	{domain.ErrValidation, KindValidation},
	{domain.ErrMissingArgument, KindMissingArgument},
	{domain.ErrUnknownCommand, KindUnknownCommand},
	{domain.ErrDuplicateKey, KindDuplicateKey},
	{domain.ErrNotFound, KindNotFound},
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}

// Describe renders err as "<Kind>: <detail>", dropping the sentinel's own
// text when it leads the message.
func Describe(err error) string {
	msg := err.Error()
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			msg = strings.TrimPrefix(msg, k.sentinel.Error()+": ")
			return fmt.Sprintf("%s: %s", k.kind, msg)
		}
	}
	return fmt.Sprintf("%s: %s", KindInternal, msg)
}

// ---------- handlers ----------

func expectArgs(cmd Command, args []string, lo, hi int, shape string) error {
	if len(args) >= lo && len(args) <= hi {
		return nil
	}
	if shape == "" {
		return fmt.Errorf("%w: %s takes no arguments", domain.ErrMissingArgument, cmd)
	}
	return fmt.Errorf("%w: usage: %s %s", domain.ErrMissingArgument, cmd, shape)
}

func handleHello(_ domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdHello, args, 0, 0, ""); err != nil {
		return "", err
	}
	return Greeting, nil
}

func handleHelp(_ domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdHelp, args, 0, 0, ""); err != nil {
		return "", err
	}
	return Usage, nil
}

func handleAdd(svc domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdAdd, args, 1, 3, "<name> [phone|birthday] [birthday]"); err != nil {
		return "", err
	}
	return "", svc.Add(args)
}

func handleDelete(svc domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdDelete, args, 1, 2, "<name> [phone]"); err != nil {
		return "", err
	}
	return "", svc.Delete(args[0], args[1:]...)
}

func handleChange(svc domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdChange, args, 3, 3, "<name> <old phone> <new phone>"); err != nil {
		return "", err
	}
	return "", svc.Change(args[0], args[1], args[2])
}

func handleShow(svc domain.ContactService, args []string) (string, error) {
	if err := expectArgs(CmdShow, args, 1, 1, "<name>|all|page"); err != nil {
		return "", err
	}
	return svc.Show(args[0]), nil
}

// IsFailure reports whether out is a message produced by Describe.
func IsFailure(out string) bool {
	for _, k := range kinds {
		if strings.HasPrefix(out, string(k.kind)+": ") {
			return true
		}
	}
	return strings.HasPrefix(out, string(KindInternal)+": ")
}
