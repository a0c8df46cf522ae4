package contactsui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	contactsclient "github.com/case-framework/contact-manager/pkg/contacts-client"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	ACTION_CREATE = "created"
	ACTION_UPDATE = "updated"
	ACTION_DELETE = "deleted"
)

// PageSizes are the rows-per-page steps cycled with + and -.
var PageSizes = []int64{5, 10, 25}

// SortFields are cycled with s; the empty entry leaves ordering to the server.
var SortFields = []string{
	"",
	types.FIELD_FIRST_NAME,
	types.FIELD_LAST_NAME,
	types.FIELD_EMAIL,
	types.FIELD_PHONE_NUMBER,
	types.FIELD_COMPANY,
	types.FIELD_JOB_TITLE,
}

type Config struct {
	PageSize int64
	Timeout  time.Duration
}

// Model is the root Bubble Tea model of the contacts UI.
type Model struct {
	api     ContactsAPI
	timeout time.Duration

	mode    Mode
	table   table.Model
	form    formState
	confirm confirmState
	help    help.Model

	tableKeys   tableKeys
	formKeys    formKeys
	confirmKeys confirmKeys

	contacts   []types.Contact
	page       int64
	limit      int64
	totalPages int64
	totalCount int64
	sortIndex  int
	ascending  bool

	loading   bool
	status    string
	statusErr bool
	width     int
}

func NewModel(api ContactsAPI, conf Config) Model {
	limit := conf.PageSize
	if !slices.Contains(PageSizes, limit) {
		limit = types.DEFAULT_PAGE_SIZE
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	t := table.New(
		table.WithColumns(tableColumns(0)),
		table.WithFocused(true),
		table.WithHeight(int(limit)),
	)

	return Model{
		api:         api,
		timeout:     timeout,
		mode:        ModeTable,
		table:       t,
		help:        help.New(),
		tableKeys:   TableKeyMap(),
		formKeys:    FormKeyMap(),
		confirmKeys: ConfirmKeyMap(),
		page:        types.DEFAULT_PAGE,
		limit:       limit,
		ascending:   true,
		loading:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// Query is the list request for the current page, size and sort selection.
func (m Model) Query() types.ListQuery {
	q := types.ListQuery{Page: m.page, Limit: m.limit}
	if sortBy := SortFields[m.sortIndex]; sortBy != "" {
		q.SortBy = sortBy
		q.Order = types.SORT_ORDER_DESC
		if m.ascending {
			q.Order = types.SORT_ORDER_ASC
		}
	}
	return q
}

func (m Model) Mode() Mode {
	return m.mode
}

func (m Model) Status() string {
	return m.status
}

func (m Model) fetch() tea.Cmd {
	api, query, timeout := m.api, m.Query(), m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		page, err := api.List(ctx, query)
		return ContactsLoadedMsg{Page: page, Err: err}
	}
}

func (m Model) mutate(action string, call func(ctx context.Context) error) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return MutationDoneMsg{Action: action, Err: call(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetColumns(tableColumns(msg.Width))
		return m, nil

	case ContactsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.setError(msg.Err)
			return m, nil
		}
		m.applyPage(msg.Page)
		return m, nil

	case MutationDoneMsg:
		if msg.Err != nil {
			// the form stays open so the input can be corrected
			if msg.Action == ACTION_DELETE {
				m.mode = ModeTable
			}
			m.setError(msg.Err)
			return m, nil
		}
		if msg.Action == ACTION_DELETE && len(m.contacts) == 1 && m.page > 1 {
			m.page--
		}
		m.mode = ModeTable
		m.status = "Contact " + msg.Action
		m.statusErr = false
		m.loading = true
		return m, m.fetch()

	case tea.KeyMsg:
		switch m.mode {
		case ModeForm:
			return m.handleFormKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleTableKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.tableKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.tableKeys.NextPage):
		if m.page >= m.totalPages {
			return m, nil
		}
		m.page++
		return m.reload()

	case key.Matches(msg, m.tableKeys.PrevPage):
		if m.page <= 1 {
			return m, nil
		}
		m.page--
		return m.reload()

	case key.Matches(msg, m.tableKeys.MoreRows), key.Matches(msg, m.tableKeys.LessRows):
		i := slices.Index(PageSizes, m.limit)
		if key.Matches(msg, m.tableKeys.MoreRows) {
			i = min(i+1, len(PageSizes)-1)
		} else {
			i = max(i-1, 0)
		}
		if PageSizes[i] == m.limit {
			return m, nil
		}
		m.limit = PageSizes[i]
		m.page = 1
		m.table.SetHeight(int(m.limit))
		return m.reload()

	case key.Matches(msg, m.tableKeys.Sort):
		m.sortIndex = (m.sortIndex + 1) % len(SortFields)
		m.page = 1
		return m.reload()

	case key.Matches(msg, m.tableKeys.Order):
		if SortFields[m.sortIndex] == "" {
			return m, nil
		}
		m.ascending = !m.ascending
		m.page = 1
		return m.reload()

	case key.Matches(msg, m.tableKeys.Refresh):
		return m.reload()

	case key.Matches(msg, m.tableKeys.Add):
		m.form = newFormState(nil)
		m.mode = ModeForm
		return m, nil

	case key.Matches(msg, m.tableKeys.Edit):
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.form = newFormState(&selected)
		m.mode = ModeForm
		return m, nil

	case key.Matches(msg, m.tableKeys.Delete):
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirm = confirmState{contact: selected}
		m.mode = ModeConfirm
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.mode = ModeTable
		m.status = ""
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(1)
		return m, cmd

	case key.Matches(msg, m.formKeys.Prev):
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(-1)
		return m, cmd

	case key.Matches(msg, m.formKeys.Submit):
		return m, m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m Model) submitForm() tea.Cmd {
	api, payload := m.api, m.form.payload()
	if m.form.isEdit() {
		id := m.form.editingID
		return m.mutate(ACTION_UPDATE, func(ctx context.Context) error {
			_, err := api.Update(ctx, id, payload)
			return err
		})
	}
	return m.mutate(ACTION_CREATE, func(ctx context.Context) error {
		_, err := api.Create(ctx, payload)
		return err
	})
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Confirm):
		api, id := m.api, m.confirm.contact.ID.Hex()
		return m, m.mutate(ACTION_DELETE, func(ctx context.Context) error {
			_, err := api.Delete(ctx, id)
			return err
		})
	case key.Matches(msg, m.confirmKeys.Cancel):
		m.mode = ModeTable
		return m, nil
	}
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, m.fetch()
}

func (m *Model) applyPage(page types.ContactPage) {
	m.contacts = page.Contacts
	m.totalPages = page.TotalPages
	m.totalCount = page.TotalCount
	if page.Page > 0 {
		m.page = page.Page
	}

	rows := make([]table.Row, len(page.Contacts))
	for i, c := range page.Contacts {
		rows[i] = table.Row{c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Company, c.JobTitle}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) setError(err error) {
	m.statusErr = true
	var apiErr *contactsclient.APIError
	if errors.As(err, &apiErr) {
		m.status = apiErr.Message
		return
	}
	m.status = err.Error()
}

func (m Model) selected() (types.Contact, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.contacts) {
		return types.Contact{}, false
	}
	return m.contacts[i], true
}

func (m Model) View() string {
	switch m.mode {
	case ModeForm:
		return lipgloss.JoinVertical(lipgloss.Left, m.form.View(), m.statusLine(), m.help.View(m.formKeys))
	case ModeConfirm:
		return lipgloss.JoinVertical(lipgloss.Left, m.confirm.View(), m.statusLine(), m.help.View(m.confirmKeys))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Contacts"),
		m.table.View(),
		dimStyle.Render(m.pageInfo()),
		m.statusLine(),
		m.help.View(m.tableKeys),
	)
}

func (m Model) pageInfo() string {
	sortInfo := "default order"
	if sortBy := SortFields[m.sortIndex]; sortBy != "" {
		order := types.SORT_ORDER_DESC
		if m.ascending {
			order = types.SORT_ORDER_ASC
		}
		sortInfo = "sorted by " + sortBy + " " + order
	}
	return fmt.Sprintf("Page %d/%d · %d contacts · %d per page · %s",
		m.page, max(m.totalPages, 1), m.totalCount, m.limit, sortInfo)
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return dimStyle.Render("Loading...")
	case m.status == "":
		return ""
	case m.statusErr:
		return errorStyle.Render(m.status)
	default:
		return successStyle.Render(m.status)
	}
}

func tableColumns(width int) []table.Column {
	titles := []string{"First name", "Last name", "Email", "Phone", "Company", "Job title"}
	colWidth := 16
	if width > 0 {
		colWidth = max((width-2*len(titles))/len(titles), 10)
	}
	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		cols[i] = table.Column{Title: title, Width: colWidth}
	}
	return cols
}
