// Package contactstest provides an in-memory contact store for tests of the
// service, the API handlers and the client.
package contactstest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore mimics the MongoDB store including its unique email and phone indexes.
type MemoryStore struct {
	mu       sync.Mutex
	contacts map[primitive.ObjectID]types.Contact

	// Err, when set, is returned by every call.
	Err error
	// SkipUniqueIndexes disables the unique constraints, like a collection without indexes.
	SkipUniqueIndexes bool
}

func NewMemoryStore(contacts ...types.Contact) *MemoryStore {
	s := &MemoryStore{contacts: map[primitive.ObjectID]types.Contact{}}
	for _, c := range contacts {
		s.contacts[c.ID] = c
	}
	return s
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

func (s *MemoryStore) Get(id primitive.ObjectID) (types.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	return c, ok
}

func (s *MemoryStore) FindContactsByEmailOrPhone(ctx context.Context, email string, phoneNumber string, excludeID *primitive.ObjectID) ([]types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	var matches []types.Contact
	for _, c := range s.sorted(types.FIELD_ID, true) {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.Email == email || c.PhoneNumber == phoneNumber {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (s *MemoryStore) AddContact(ctx context.Context, contact types.Contact) (types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return types.Contact{}, s.Err
	}
	if err := s.checkUnique(contact.ID, contact.Email, contact.PhoneNumber); err != nil {
		return types.Contact{}, err
	}
	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}
	s.contacts[contact.ID] = contact
	return contact, nil
}

func (s *MemoryStore) CountContacts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.contacts)), nil
}

func (s *MemoryStore) GetContacts(ctx context.Context, sortBy string, ascending bool, skip int64, limit int64) ([]types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	all := s.sorted(sortBy, ascending)
	if skip >= int64(len(all)) {
		return []types.Contact{}, nil
	}
	end := int64(len(all))
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return all[skip:end], nil
}

func (s *MemoryStore) UpdateContact(ctx context.Context, id primitive.ObjectID, payload types.ContactPayload, updatedAt time.Time) (types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return types.Contact{}, s.Err
	}

	c, ok := s.contacts[id]
	if !ok {
		return types.Contact{}, apperrors.NewNotFoundError("Contact", id.Hex())
	}
	if err := s.checkUnique(id, payload.Email, payload.PhoneNumber); err != nil {
		return types.Contact{}, err
	}

	c.FirstName = payload.FirstName
	c.LastName = payload.LastName
	c.Email = payload.Email
	c.PhoneNumber = payload.PhoneNumber
	c.Company = payload.Company
	c.JobTitle = payload.JobTitle
	c.UpdatedAt = updatedAt
	s.contacts[id] = c
	return c, nil
}

func (s *MemoryStore) DeleteContact(ctx context.Context, id primitive.ObjectID) (types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return types.Contact{}, s.Err
	}

	c, ok := s.contacts[id]
	if !ok {
		return types.Contact{}, apperrors.NewNotFoundError("Contact", id.Hex())
	}
	delete(s.contacts, id)
	return c, nil
}

func (s *MemoryStore) checkUnique(id primitive.ObjectID, email string, phoneNumber string) error {
	if s.SkipUniqueIndexes {
		return nil
	}
	for _, c := range s.contacts {
		if c.ID == id {
			continue
		}
		if c.Email == email {
			return apperrors.NewConflictError("email")
		}
	}
	for _, c := range s.contacts {
		if c.ID == id {
			continue
		}
		if c.PhoneNumber == phoneNumber {
			return apperrors.NewConflictError("phone")
		}
	}
	return nil
}

// sorted orders like the mongo store: by field, ties broken by _id in the same direction.
func (s *MemoryStore) sorted(sortBy string, ascending bool) []types.Contact {
	all := make([]types.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		cmp := compareField(all[i], all[j], sortBy)
		if cmp == 0 {
			cmp = strings.Compare(all[i].ID.Hex(), all[j].ID.Hex())
		}
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return all
}

func compareField(a, b types.Contact, field string) int {
	switch field {
	case types.FIELD_FIRST_NAME:
		return strings.Compare(a.FirstName, b.FirstName)
	case types.FIELD_LAST_NAME:
		return strings.Compare(a.LastName, b.LastName)
	case types.FIELD_EMAIL:
		return strings.Compare(a.Email, b.Email)
	case types.FIELD_PHONE_NUMBER:
		return strings.Compare(a.PhoneNumber, b.PhoneNumber)
	case types.FIELD_COMPANY:
		return strings.Compare(a.Company, b.Company)
	case types.FIELD_JOB_TITLE:
		return strings.Compare(a.JobTitle, b.JobTitle)
	case types.FIELD_CREATED_AT:
		return a.CreatedAt.Compare(b.CreatedAt)
	case types.FIELD_UPDATED_AT:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return 0
	}
}
