package types

import (
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// field names as stored and exposed by the API
const (
	FIELD_ID           = "_id"
	FIELD_FIRST_NAME   = "firstName"
	FIELD_LAST_NAME    = "lastName"
	FIELD_EMAIL        = "email"
	FIELD_PHONE_NUMBER = "phoneNumber"
	FIELD_COMPANY      = "company"
	FIELD_JOB_TITLE    = "jobTitle"
	FIELD_CREATED_AT   = "createdAt"
	FIELD_UPDATED_AT   = "updatedAt"
)

const (
	SORT_ORDER_ASC  = "asc"
	SORT_ORDER_DESC = "desc"

	DEFAULT_PAGE      = 1
	DEFAULT_PAGE_SIZE = 10
	DEFAULT_SORT_BY   = FIELD_CREATED_AT
)

type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	JobTitle    string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContactPayload is the client supplied part of a contact, used for create and update.
type ContactPayload struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone10"`
	Company     string `json:"company,omitempty" validate:"omitempty,max=200"`
	JobTitle    string `json:"jobTitle,omitempty" validate:"omitempty,max=200"`
}

// Normalized trims all fields and lower-cases the email, so uniqueness checks compare like with like.
func (p ContactPayload) Normalized() ContactPayload {
	return ContactPayload{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		PhoneNumber: strings.TrimSpace(p.PhoneNumber),
		Company:     strings.TrimSpace(p.Company),
		JobTitle:    strings.TrimSpace(p.JobTitle),
	}
}

// NewContact creates a contact with a fresh identifier from a validated payload.
func NewContact(p ContactPayload, now time.Time) Contact {
	return Contact{
		ID:          primitive.NewObjectID(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Company:     p.Company,
		JobTitle:    p.JobTitle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Payload returns the mutable fields of the contact.
func (c Contact) Payload() ContactPayload {
	return ContactPayload{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Company:     c.Company,
		JobTitle:    c.JobTitle,
	}
}

type ListQuery struct {
	Page   int64
	Limit  int64
	SortBy string
	Order  string
}

func DefaultListQuery() ListQuery {
	return ListQuery{
		Page:   DEFAULT_PAGE,
		Limit:  DEFAULT_PAGE_SIZE,
		SortBy: DEFAULT_SORT_BY,
	}
}

// Ascending is true only for an explicit "asc" order, anything else sorts descending.
func (q ListQuery) Ascending() bool {
	return q.Order == SORT_ORDER_ASC
}

type ContactPage struct {
	Contacts   []Contact `json:"contacts"`
	Page       int64     `json:"page"`
	Limit      int64     `json:"limit"`
	TotalPages int64     `json:"totalPages"`
	TotalCount int64     `json:"totalCount"`
}

func IsSortableField(field string) bool {
	return slices.Contains(SortableFields(), field)
}

func SortableFields() []string {
	return []string{
		FIELD_FIRST_NAME,
		FIELD_LAST_NAME,
		FIELD_EMAIL,
		FIELD_PHONE_NUMBER,
		FIELD_COMPANY,
		FIELD_JOB_TITLE,
		FIELD_CREATED_AT,
		FIELD_UPDATED_AT,
	}
}
