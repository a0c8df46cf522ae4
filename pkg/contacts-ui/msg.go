// Package contactsui implements the terminal UI for browsing and editing contacts.
package contactsui

import (
	"context"

	"github.com/case-framework/contact-manager/pkg/contacts/types"
)

// Mode is the current view of the UI.
type Mode int

const (
	ModeTable   Mode = iota // contact table with pagination
	ModeForm                // add or edit modal
	ModeConfirm             // delete confirmation
)

// ContactsAPI is what the UI needs from the contacts API client.
type ContactsAPI interface {
	List(ctx context.Context, query types.ListQuery) (types.ContactPage, error)
	Create(ctx context.Context, payload types.ContactPayload) (types.Contact, error)
	Update(ctx context.Context, id string, payload types.ContactPayload) (types.Contact, error)
	Delete(ctx context.Context, id string) (types.Contact, error)
}

// ContactsLoadedMsg carries the result of a List call.
type ContactsLoadedMsg struct {
	Page types.ContactPage
	Err  error
}

// MutationDoneMsg carries the result of a create, update or delete call.
type MutationDoneMsg struct {
	Action string
	Err    error
}
