package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"contactbook/internal/domain"
)

const (
	// DefaultPageSize is how many records a `show page` call returns.
	DefaultPageSize = 2

	NoSuchContactMessage = "No such contact."
	EmptyBookMessage     = "You do not have any contacts yet."
)

// MemoryBook keeps records in memory for one session. It is not safe for
// concurrent use.
type MemoryBook struct {
	records map[string]*domain.Record
	order   []string

	pageSize int
	cursor   int

	now func() time.Time
	log *zap.Logger
}

var _ domain.AddressBook = (*MemoryBook)(nil)

// Option configures a MemoryBook.
type Option func(*MemoryBook)

// WithPageSize sets the pagination page size; values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(b *MemoryBook) {
		if n >= 1 {
			b.pageSize = n
		}
	}
}

// WithClock sets the source of "today" used for rendering.
func WithClock(now func() time.Time) Option {
	return func(b *MemoryBook) { b.now = now }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(log *zap.Logger) Option {
	return func(b *MemoryBook) { b.log = log }
}

// NewMemoryBook returns an empty address book.
func NewMemoryBook(opts ...Option) *MemoryBook {
	b := &MemoryBook{
		records:  make(map[string]*domain.Record),
		pageSize: DefaultPageSize,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ---------- Records ----------

func (b *MemoryBook) AddRecord(record *domain.Record) error {
	key := record.Name().String()
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("%w: %q is already in your address book, use 'change' to edit it", domain.ErrDuplicateKey, key)
	}
	b.records[key] = record
	b.order = append(b.order, key)
	b.log.Debug("record added", zap.String("name", key), zap.Int("records", len(b.order)))
	return nil
}

func (b *MemoryBook) DeleteRecord(name string) error {
	if _, exists := b.records[name]; !exists {
		return fmt.Errorf("%w: no contact named %q", domain.ErrNotFound, name)
	}
	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	b.log.Debug("record deleted", zap.String("name", name), zap.Int("records", len(b.order)))
	return nil
}

func (b *MemoryBook) GetRecord(name string) (*domain.Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: no contact named %q", domain.ErrNotFound, name)
	}
	return r, nil
}

func (b *MemoryBook) Has(name string) bool {
	_, ok := b.records[name]
	return ok
}

func (b *MemoryBook) Len() int { return len(b.order) }

// Records returns the live records in insertion order.
func (b *MemoryBook) Records() []*domain.Record {
	out := make([]*domain.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// ---------- Views ----------

// RenderOne renders a single record; a missing name is reported, not failed.
func (b *MemoryBook) RenderOne(name string) string {
	r, ok := b.records[name]
	if !ok {
		return NoSuchContactMessage
	}
	return r.Render(b.now())
}

func (b *MemoryBook) RenderAll() string {
	if len(b.order) == 0 {
		return EmptyBookMessage
	}
	return RenderRecords(b.Records(), b.now())
}

// ---------- Pagination ----------

// NextPage returns the next page of records. Page bounds are taken from the
// current insertion order on every call. After the last page it rewinds the
// cursor and reports ok == false once.
func (b *MemoryBook) NextPage() ([]*domain.Record, bool) {
	if b.cursor >= len(b.order) {
		b.cursor = 0
		return nil, false
	}
	end := min(b.cursor+b.pageSize, len(b.order))
	keys := b.order[b.cursor:end]
	b.cursor = end

	page := make([]*domain.Record, len(keys))
	for i, key := range keys {
		page[i] = b.records[key]
	}
	return page, true
}

func (b *MemoryBook) ResetCursor() { b.cursor = 0 }

// RenderRecords renders records one per line.
func RenderRecords(records []*domain.Record, today time.Time) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.Render(today)
	}
	return strings.Join(lines, "\n")
}
