package contacts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RESOURCE_CONTACT = "Contact"

	CONFLICT_FIELD_EMAIL = "email"
	CONFLICT_FIELD_PHONE = "phone"

	DEFAULT_MAX_PAGE_SIZE = 100
)

// Store is the persistence the contact service relies on.
// Implementations report a missing contact with *apperrors.NotFoundError and a
// unique constraint violation with *apperrors.ConflictError.
type Store interface {
	FindContactsByEmailOrPhone(ctx context.Context, email string, phoneNumber string, excludeID *primitive.ObjectID) ([]types.Contact, error)
	AddContact(ctx context.Context, contact types.Contact) (types.Contact, error)
	CountContacts(ctx context.Context) (int64, error)
	GetContacts(ctx context.Context, sortBy string, ascending bool, skip int64, limit int64) ([]types.Contact, error)
	UpdateContact(ctx context.Context, id primitive.ObjectID, payload types.ContactPayload, updatedAt time.Time) (types.Contact, error)
	DeleteContact(ctx context.Context, id primitive.ObjectID) (types.Contact, error)
}

type ContactService struct {
	store       Store
	maxPageSize int64
	now         func() time.Time
}

func NewContactService(store Store, maxPageSize int64) *ContactService {
	if maxPageSize <= 0 {
		maxPageSize = DEFAULT_MAX_PAGE_SIZE
	}
	return &ContactService{
		store:       store,
		maxPageSize: maxPageSize,
		now:         time.Now,
	}
}

func (s *ContactService) MaxPageSize() int64 {
	return s.maxPageSize
}

// Create validates the payload, rejects duplicates and stores a new contact.
func (s *ContactService) Create(ctx context.Context, payload types.ContactPayload) (types.Contact, error) {
	payload = payload.Normalized()
	if err := ValidatePayload(payload); err != nil {
		return types.Contact{}, err
	}

	if err := s.CheckDuplicates(ctx, payload.Email, payload.PhoneNumber, nil); err != nil {
		return types.Contact{}, err
	}

	contact := types.NewContact(payload, s.timestamp())
	saved, err := s.store.AddContact(ctx, contact)
	if err != nil {
		return types.Contact{}, wrapStoreError("add contact", err)
	}
	return saved, nil
}

// List returns one page of contacts ordered by the requested field.
func (s *ContactService) List(ctx context.Context, query types.ListQuery) (types.ContactPage, error) {
	if query.SortBy == "" {
		query.SortBy = types.DEFAULT_SORT_BY
	}
	if query.Limit < 1 || query.Limit > s.maxPageSize {
		return types.ContactPage{}, apperrors.NewValidationError(
			"limit",
			fmt.Sprintf(`"limit" must be between 1 and %d`, s.maxPageSize),
		)
	}
	if !types.IsSortableField(query.SortBy) {
		return types.ContactPage{}, apperrors.NewValidationError(
			"sortBy",
			fmt.Sprintf(`"sortBy" must be one of %v`, types.SortableFields()),
		)
	}
	if query.Page < 1 {
		return types.ContactPage{}, apperrors.NewOutOfRangeError(query.Page, 0)
	}

	totalCount, err := s.store.CountContacts(ctx)
	if err != nil {
		return types.ContactPage{}, wrapStoreError("count contacts", err)
	}

	totalPages := getTotalPages(totalCount, query.Limit)
	if !pageExists(query.Page, totalPages) {
		return types.ContactPage{}, apperrors.NewOutOfRangeError(query.Page, totalPages)
	}

	skip := (query.Page - 1) * query.Limit
	contacts, err := s.store.GetContacts(ctx, query.SortBy, query.Ascending(), skip, query.Limit)
	if err != nil {
		return types.ContactPage{}, wrapStoreError("get contacts", err)
	}
	if contacts == nil {
		contacts = []types.Contact{}
	}

	return types.ContactPage{
		Contacts:   contacts,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
		TotalCount: totalCount,
	}, nil
}

// UpdateByID replaces all mutable fields of an existing contact.
func (s *ContactService) UpdateByID(ctx context.Context, id string, payload types.ContactPayload) (types.Contact, error) {
	payload = payload.Normalized()
	if err := ValidatePayload(payload); err != nil {
		return types.Contact{}, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Contact{}, apperrors.NewNotFoundError(RESOURCE_CONTACT, id)
	}

	if err := s.CheckDuplicates(ctx, payload.Email, payload.PhoneNumber, &oid); err != nil {
		return types.Contact{}, err
	}

	updated, err := s.store.UpdateContact(ctx, oid, payload, s.timestamp())
	if err != nil {
		return types.Contact{}, wrapStoreError("update contact", err)
	}
	return updated, nil
}

// DeleteByID removes a contact and returns the removed record.
func (s *ContactService) DeleteByID(ctx context.Context, id string) (types.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Contact{}, apperrors.NewNotFoundError(RESOURCE_CONTACT, id)
	}

	deleted, err := s.store.DeleteContact(ctx, oid)
	if err != nil {
		return types.Contact{}, wrapStoreError("delete contact", err)
	}
	return deleted, nil
}

// CheckDuplicates fails with a ConflictError when another contact already uses
// the email or the phone number. Email collisions are reported first.
func (s *ContactService) CheckDuplicates(ctx context.Context, email string, phoneNumber string, excludeID *primitive.ObjectID) error {
	matches, err := s.store.FindContactsByEmailOrPhone(ctx, email, phoneNumber, excludeID)
	if err != nil {
		return wrapStoreError("find duplicates", err)
	}

	phoneTaken := false
	for _, m := range matches {
		if excludeID != nil && m.ID == *excludeID {
			continue
		}
		if m.Email == email {
			slog.Warn("duplicate contact field detected", slog.String("field", CONFLICT_FIELD_EMAIL))
			return apperrors.NewConflictError(CONFLICT_FIELD_EMAIL)
		}
		if m.PhoneNumber == phoneNumber {
			phoneTaken = true
		}
	}
	if phoneTaken {
		slog.Warn("duplicate contact field detected", slog.String("field", CONFLICT_FIELD_PHONE))
		return apperrors.NewConflictError(CONFLICT_FIELD_PHONE)
	}
	return nil
}

// stored with millisecond precision, truncate so returned and stored records match
func (s *ContactService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func wrapStoreError(op string, err error) error {
	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	var storeErr *apperrors.StoreError
	if errors.As(err, &notFound) || errors.As(err, &conflict) || errors.As(err, &storeErr) {
		return err
	}
	return apperrors.NewStoreError(op, err)
}
