package app

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactbook/internal/dispatch"
	"contactbook/internal/domain"
	contactsvc "contactbook/internal/services/contact"
	"contactbook/internal/store"
)

// Wire bundles the store, service and dispatcher of one session.
type Wire struct {
	SessionID  string
	Book       domain.AddressBook
	Contacts   domain.ContactService
	Dispatcher domain.CommandHandler
	Log        *zap.Logger
}

// NewWire constructs the dependency graph from cfg. Each call starts a new
// session with an empty address book.
func NewWire(cfg Config, log *zap.Logger) *Wire {
	if log == nil {
		log = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	sessionID := uuid.NewString()
	log = log.With(zap.String("session", sessionID))

	// In-memory store
	book := store.NewMemoryBook(
		store.WithPageSize(cfg.PageSize),
		store.WithClock(now),
		store.WithLogger(log.Named("store")),
	)

	// Command surface
	contacts := contactsvc.New(book, now, log.Named("contact"))
	dispatcher := dispatch.New(contacts, log.Named("dispatch"))

	return &Wire{
		SessionID:  sessionID,
		Book:       book,
		Contacts:   contacts,
		Dispatcher: dispatcher,
		Log:        log,
	}
}
