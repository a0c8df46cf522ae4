package contacts

import (
	"errors"
	"strings"
	"testing"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(p *types.ContactPayload)
		wantField string
		wantMsg   string
	}{
		{name: "valid", modify: func(p *types.ContactPayload) {}},
		{name: "valid with optional fields", modify: func(p *types.ContactPayload) {
			p.Company = "ACME"
			p.JobTitle = "Engineer"
		}},
		{name: "missing first name", modify: func(p *types.ContactPayload) { p.FirstName = "" }, wantField: "firstName", wantMsg: `"firstName" is required`},
		{name: "missing last name", modify: func(p *types.ContactPayload) { p.LastName = "" }, wantField: "lastName", wantMsg: `"lastName" is required`},
		{name: "missing email", modify: func(p *types.ContactPayload) { p.Email = "" }, wantField: "email", wantMsg: `"email" is required`},
		{name: "malformed email", modify: func(p *types.ContactPayload) { p.Email = "not-an-email" }, wantField: "email", wantMsg: `"email" must be a valid email`},
		{name: "missing phone", modify: func(p *types.ContactPayload) { p.PhoneNumber = "" }, wantField: "phoneNumber", wantMsg: `"phoneNumber" is required`},
		{name: "short phone", modify: func(p *types.ContactPayload) { p.PhoneNumber = "12345" }, wantField: "phoneNumber", wantMsg: MSG_INVALID_PHONE},
		{name: "phone with separators", modify: func(p *types.ContactPayload) { p.PhoneNumber = "123-456-7890" }, wantField: "phoneNumber", wantMsg: MSG_INVALID_PHONE},
		{name: "phone with country code", modify: func(p *types.ContactPayload) { p.PhoneNumber = "+11234567890" }, wantField: "phoneNumber", wantMsg: MSG_INVALID_PHONE},
		{name: "phone with letters", modify: func(p *types.ContactPayload) { p.PhoneNumber = "12345abcde" }, wantField: "phoneNumber", wantMsg: MSG_INVALID_PHONE},
		{name: "company too long", modify: func(p *types.ContactPayload) { p.Company = strings.Repeat("x", 201) }, wantField: "company"},
		{name: "first failing field is reported", modify: func(p *types.ContactPayload) {
			p.LastName = ""
			p.PhoneNumber = "1"
		}, wantField: "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.modify(&p)

			err := ValidatePayload(p)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
			if tt.wantMsg != "" && validationErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", validationErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"1234567890", "0000000000"}
	invalid := []string{"", "12345", "123456789012", "123 456 7890", "(123)4567890", "١٢٣٤٥٦٧٨٩٠"}

	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}
