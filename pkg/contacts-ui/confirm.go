package contactsui

import (
	"fmt"
	"strings"

	"github.com/case-framework/contact-manager/pkg/contacts/types"
)

// confirmState holds the contact awaiting delete confirmation.
type confirmState struct {
	contact types.Contact
}

func (cs confirmState) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete contact?"))
	fmt.Fprintf(&b, "\n\n  %s %s\n  %s\n", cs.contact.FirstName, cs.contact.LastName, cs.contact.Email)
	b.WriteString("\n  [y/Enter] Delete   [n/Esc] Cancel")
	return ModalBorder().Render(b.String())
}
