package interfaces

// ContactService applies the record flows behind each command.
type ContactService interface {
	Add(args []string) error
	Delete(name string, phone ...string) error
	Change(name, oldPhone, newPhone string) error
	Show(target string) string
}

// CommandHandler turns one input line into output text.
type CommandHandler interface {
	// Parse splits a line into a command word and its arguments.
	Parse(line string) (command string, args []string, err error)
	// Handle runs a command and always returns printable text.
	Handle(command string, args []string) string
}
