package app_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/app"
	"contactbook/internal/dispatch"
	"contactbook/internal/session"
)

func testConfig() app.Config {
	cfg := app.DefaultConfig()
	cfg.Color = false
	cfg.Now = func() time.Time { return time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC) }
	return cfg
}

func TestNewWire_FreshSessions(t *testing.T) {
	cfg := testConfig()
	a := app.NewWire(cfg, nil)
	b := app.NewWire(cfg, nil)

	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Empty(t, a.Dispatcher.Handle("add", []string{"Alice"}))
	assert.Equal(t, 1, a.Book.Len())
	assert.Equal(t, 0, b.Book.Len())
}

func TestNewWire_PageSize(t *testing.T) {
	cfg := testConfig()
	cfg.PageSize = 3
	w := app.NewWire(cfg, nil)
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		require.NoError(t, w.Contacts.Add([]string{name}))
	}
	page, ok := w.Book.NextPage()
	require.True(t, ok)
	assert.Len(t, page, 3)
}

func TestApp_RunSession(t *testing.T) {
	a := app.New(testConfig(), nil)
	in := strings.NewReader("add Alice 1234567890 20.06.2000\nshow all\nexit\n")
	var out bytes.Buffer

	require.NoError(t, a.RunSession(context.Background(), in, &out, false))
	assert.Equal(t,
		"Name: Alice, phones: 1234567890, birthday: 20.06.2000 (5 days until birthday)\n"+session.Farewell+"\n",
		out.String(),
	)
}

func TestApp_RunSession_InteractivePrompt(t *testing.T) {
	a := app.New(testConfig(), nil)
	var out bytes.Buffer
	require.NoError(t, a.RunSession(context.Background(), strings.NewReader("hello\n"), &out, true))
	assert.Equal(t, "> "+dispatch.Greeting+"\n> ", out.String())
}

func TestApp_Exec(t *testing.T) {
	a := app.New(testConfig(), nil)
	assert.Equal(t, dispatch.Greeting, a.Exec("HELLO", nil))
	assert.Equal(t, "NotFoundError: no contact named \"Alice\"", a.Exec("delete", []string{"Alice"}))
}
