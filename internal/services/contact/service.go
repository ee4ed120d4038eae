package contact

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"contactbook/internal/domain"
	"contactbook/internal/domain/types"
	"contactbook/internal/store"
)

const (
	// EndOfBookMessage is shown once a `show page` pass is exhausted.
	EndOfBookMessage = "End of the address book. Call 'show page' again to start over."

	targetAll  = "all"
	targetPage = "page"
)

// Service applies contact commands to an address book.
//
// Every flow that creates a record builds and fills it completely before it
// is inserted, so a failed command never leaves a half-built contact behind.
type Service struct {
	book domain.AddressBook
	now  func() time.Time
	log  *zap.Logger
}

var _ domain.ContactService = (*Service)(nil)

// New returns a contact service over book. A nil now defaults to time.Now and
// a nil log discards output.
func New(book domain.AddressBook, now func() time.Time, log *zap.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{book: book, now: now, log: log}
}

// Add creates or extends a contact depending on how many arguments it gets:
//   - name: a new contact without phones
//   - name value: value is sniffed as a phone, then as a birthday, and applied
//     to the existing contact or to a new one
//   - name phone birthday: a new contact with both fields
func (s *Service) Add(args []string) error {
	switch len(args) {
	case 1:
		r, err := types.NewRecord(args[0])
		if err != nil {
			return err
		}
		return s.book.AddRecord(r)

	case 2:
		name, value := args[0], args[1]
		if s.book.Has(name) {
			r, err := s.book.GetRecord(name)
			if err != nil {
				return err
			}
			return s.apply(r, value)
		}
		r, err := types.NewRecord(name)
		if err != nil {
			return err
		}
		if err := s.apply(r, value); err != nil {
			return err
		}
		return s.book.AddRecord(r)

	case 3:
		name, phone, birthday := args[0], args[1], args[2]
		r, err := types.NewRecord(name)
		if err != nil {
			return err
		}
		if err := r.AddPhone(phone); err != nil {
			return err
		}
		b, err := types.ParseBirthday(birthday, s.now())
		if err != nil {
			return err
		}
		r.SetBirthday(b)
		return s.book.AddRecord(r)

	default:
		return fmt.Errorf("%w: add takes a name and up to two of phone and birthday, got %d arguments",
			domain.ErrMissingArgument, len(args))
	}
}

// apply treats value as a phone if it has a phone's shape, otherwise as a birthday.
func (s *Service) apply(r *domain.Record, value string) error {
	switch {
	case types.IsPhoneShape(value):
		return r.AddPhone(value)
	case types.IsBirthdayShape(value):
		b, err := types.ParseBirthday(value, s.now())
		if err != nil {
			return err
		}
		r.SetBirthday(b)
		s.log.Debug("birthday set", zap.String("name", r.Name().String()), zap.Stringer("birthday", b))
		return nil
	default:
		return fmt.Errorf("%w: %q is neither a phone (+123456789012, 1234567890) nor a birthday (dd.mm.yyyy)",
			domain.ErrValidation, value)
	}
}

// Delete removes the named contact, or only the given phone from it.
func (s *Service) Delete(name string, phone ...string) error {
	switch len(phone) {
	case 0:
		return s.book.DeleteRecord(name)
	case 1:
		r, err := s.book.GetRecord(name)
		if err != nil {
			return err
		}
		return r.DeletePhone(phone[0])
	default:
		return fmt.Errorf("%w: delete takes a name and at most one phone", domain.ErrMissingArgument)
	}
}

// Change replaces oldPhone with newPhone on the named contact. newPhone is
// validated before oldPhone is removed, so a rejected change leaves the
// contact as it was. The new phone goes to the end of the list.
func (s *Service) Change(name, oldPhone, newPhone string) error {
	r, err := s.book.GetRecord(name)
	if err != nil {
		return err
	}
	if _, err := types.NewPhone(newPhone); err != nil {
		return err
	}
	if err := r.DeletePhone(oldPhone); err != nil {
		return err
	}
	return r.AddPhone(newPhone)
}

// Show renders one contact, all contacts, or the next page.
func (s *Service) Show(target string) string {
	switch target {
	case targetAll:
		return s.book.RenderAll()
	case targetPage:
		page, ok := s.book.NextPage()
		if !ok {
			return EndOfBookMessage
		}
		return store.RenderRecords(page, s.now())
	default:
		return s.book.RenderOne(target)
	}
}
