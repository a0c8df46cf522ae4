package contactsui

import (
	"fmt"
	"strings"

	"github.com/case-framework/contact-manager/pkg/contacts"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form field order, matching the table columns
const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhoneNumber
	fieldCompany
	fieldJobTitle
	fieldCount
)

var formLabels = [fieldCount]string{"First name", "Last name", "Email", "Phone number", "Company", "Job title"}

// formState is the add/edit modal. An empty editingID means a new contact.
type formState struct {
	inputs    []textinput.Model
	focus     int
	editingID string
}

func newFormState(existing *types.Contact) formState {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = formLabels[i]
		in.CharLimit = 200
		inputs[i] = in
	}
	inputs[fieldPhoneNumber].CharLimit = 10

	fs := formState{inputs: inputs}
	if existing != nil {
		fs.editingID = existing.ID.Hex()
		p := existing.Payload()
		values := [fieldCount]string{p.FirstName, p.LastName, p.Email, p.PhoneNumber, p.Company, p.JobTitle}
		for i, v := range values {
			fs.inputs[i].SetValue(v)
		}
	}
	fs.inputs[0].Focus()
	return fs
}

func (fs formState) isEdit() bool {
	return fs.editingID != ""
}

func (fs formState) payload() types.ContactPayload {
	return types.ContactPayload{
		FirstName:   fs.inputs[fieldFirstName].Value(),
		LastName:    fs.inputs[fieldLastName].Value(),
		Email:       fs.inputs[fieldEmail].Value(),
		PhoneNumber: fs.inputs[fieldPhoneNumber].Value(),
		Company:     fs.inputs[fieldCompany].Value(),
		JobTitle:    fs.inputs[fieldJobTitle].Value(),
	}
}

// phoneHint is shown below the form while the phone number is not ten digits.
// The server validates again on submit.
func (fs formState) phoneHint() string {
	phone := strings.TrimSpace(fs.inputs[fieldPhoneNumber].Value())
	if phone == "" || contacts.IsValidPhoneNumber(phone) {
		return ""
	}
	return contacts.MSG_INVALID_PHONE
}

func (fs formState) moveFocus(delta int) (formState, tea.Cmd) {
	fs.inputs[fs.focus].Blur()
	fs.focus = (fs.focus + delta + fieldCount) % fieldCount
	return fs, fs.inputs[fs.focus].Focus()
}

func (fs formState) updateInput(msg tea.Msg) (formState, tea.Cmd) {
	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return fs, cmd
}

func (fs formState) View() string {
	var b strings.Builder
	if fs.isEdit() {
		b.WriteString(titleStyle.Render("Edit contact"))
	} else {
		b.WriteString(titleStyle.Render("Add contact"))
	}
	b.WriteString("\n\n")

	for i, in := range fs.inputs {
		marker := "  "
		if i == fs.focus {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-13s %s\n", marker, formLabels[i]+":", in.View())
	}

	if hint := fs.phoneHint(); hint != "" {
		b.WriteString("\n" + hintStyle.Render(hint))
	}
	return ModalBorder().Render(b.String())
}
