package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color", "--log-file", filepath.Join(t.TempDir(), "test.log")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRoot_InteractiveSession(t *testing.T) {
	out, err := execute(t, "hello\nadd Alice 1234567890\nshow Alice\nexit\n")
	require.NoError(t, err)
	assert.Equal(t,
		"> How can I help you?\n> > Name: Alice, phones: 1234567890\n> Good bye!\n",
		out,
	)
}

func TestRoot_BlankLineExit(t *testing.T) {
	out, err := execute(t, "\nhello\n", "--blank-line", "exit")
	require.NoError(t, err)
	assert.Equal(t, "> Good bye!\n", out)
}

func TestRoot_BadBlankLinePolicy(t *testing.T) {
	_, err := execute(t, "", "--blank-line", "explode")
	require.Error(t, err)
}

func TestRunCmd_File(t *testing.T) {
	script := filepath.Join(t.TempDir(), "contacts.txt")
	require.NoError(t, os.WriteFile(script, []byte(
		"add Alice 1234567890\nadd Bob 0987654321\nadd Carol\nshow page\nshow page\nshow page\n",
	), 0o600))

	out, err := execute(t, "", "run", script)
	require.NoError(t, err)
	assert.Equal(t,
		"Name: Alice, phones: 1234567890\nName: Bob, phones: 0987654321\n"+
			"Name: Carol, phones: \n"+
			"End of the address book. Call 'show page' again to start over.\n",
		out,
	)
}

func TestRunCmd_Stdin(t *testing.T) {
	out, err := execute(t, "change Alice 1 2\n", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "NotFoundError: no contact named \"Alice\"\n", out)
}

func TestRunCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestExecCmd(t *testing.T) {
	out, err := execute(t, "", "exec", "hello")
	require.NoError(t, err)
	assert.Equal(t, "How can I help you?\n", out)

	out, err = execute(t, "", "exec", "show", "all")
	require.NoError(t, err)
	assert.Equal(t, "You do not have any contacts yet.\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "contactbook.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("prompt: \"contacts> \"\n"), 0o600))

	out, err := execute(t, "hello\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "contacts> How can I help you?\ncontacts> ", out)
}
