package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rlagrimas/ecopoint/internal/config"
	"github.com/rlagrimas/ecopoint/internal/identity"
	"github.com/rlagrimas/ecopoint/internal/state"
	"github.com/rlagrimas/ecopoint/internal/store"
)

// View represents the active tab.
type View int

const (
	ViewLocations View = iota
	ViewAnnouncements
	ViewContact
)

// mode is what the keyboard currently drives.
type mode int

const (
	modeBrowse mode = iota
	modeLogin
	modeLocationForm
	modeContactForm
	modeAnnouncements
	modeConfirmDelete
)

// Model is the root application state for Bubble Tea.
type Model struct {
	store      *store.Store
	cfg        config.Config
	configPath string

	changes  <-chan struct{}
	snapshot state.AppState

	theme  Theme
	styles Styles
	width  int
	height int

	view     View
	mode     mode
	selected int
	admin    bool
	showHelp bool

	status    string
	statusErr bool

	login    textinput.Model
	loginErr string

	form     locationForm
	contact  contactForm
	announce textarea.Model

	deleteID    string
	deleteLabel string
}

// New creates the UI model and subscribes it to store changes.
func New(opts Options) Model {
	theme := GetTheme(opts.Config.Theme)

	login := textinput.New()
	login.Placeholder = "pass phrase"
	login.EchoMode = textinput.EchoPassword
	login.CharLimit = 64
	login.Width = 30

	return Model{
		store:      opts.Store,
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		changes:    opts.Store.Subscribe(),
		snapshot:   opts.Store.Snapshot(),
		theme:      theme,
		styles:     theme.Styles(),
		login:      login,
	}
}

// Messages

type changedMsg struct{}

// waitForChangeCmd blocks until the store signals a change, from a local
// dispatch or an adopted external write.
func waitForChangeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, waitForChangeCmd(m.changes))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeAnnouncements {
			m.announce.SetWidth(clamp(m.width-8, 20, 76))
		}
		return m, nil

	case changedMsg:
		m.snapshot = m.store.Snapshot()
		m.clampSelection()
		return m, waitForChangeCmd(m.changes)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeLogin:
		return m.handleLoginKey(msg)
	case modeLocationForm:
		return m.handleLocationFormKey(msg)
	case modeContactForm:
		return m.handleContactFormKey(msg)
	case modeAnnouncements:
		return m.handleAnnouncementsKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "1":
		m.view = ViewLocations
		return m, nil
	case "2":
		m.view = ViewAnnouncements
		return m, nil
	case "3":
		m.view = ViewContact
		return m, nil
	case "tab":
		m.view = (m.view + 1) % 3
		return m, nil
	case "shift+tab":
		m.view = (m.view + 2) % 3
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.cfg.Theme = m.theme.Name
		_ = config.Save(m.configPath, m.cfg)
		return m, nil

	case "a":
		if m.admin {
			m.admin = false
			m.setStatus("admin mode off", false)
			return m, nil
		}
		m.mode = modeLogin
		m.loginErr = ""
		m.login.SetValue("")
		return m, m.login.Focus()
	}

	switch m.view {
	case ViewLocations:
		return m.handleLocationsKey(msg)
	case ViewAnnouncements:
		if m.admin && msg.String() == "e" {
			return m.startAnnouncementsEdit()
		}
	case ViewContact:
		if m.admin && msg.String() == "e" {
			return m.startContactEdit()
		}
	}
	return m, nil
}

func (m Model) handleLocationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Locations)

	switch msg.String() {
	case "j", "down":
		if m.selected < count-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "g", "home":
		m.selected = 0
	case "G", "end":
		if count > 0 {
			m.selected = count - 1
		}

	case "n":
		if m.admin {
			return m.startLocationAdd()
		}
	case "e":
		if m.admin {
			if loc := m.selectedLocation(); loc != nil {
				return m.startLocationEdit(*loc)
			}
		}
	case "d":
		if m.admin {
			if loc := m.selectedLocation(); loc != nil {
				m.mode = modeConfirmDelete
				m.deleteID = loc.ID
				m.deleteLabel = loc.Label
			}
		}
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.login.Blur()
		return m, nil
	case "enter":
		// Placeholder gate, same non-cryptographic check the public site
		// shipped with. Not an authentication mechanism.
		if m.login.Value() == m.cfg.AdminPass {
			m.admin = true
			m.mode = modeBrowse
			m.login.Blur()
			m.setStatus("admin mode on", false)
			return m, nil
		}
		m.loginErr = "wrong pass phrase"
		m.login.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.store.Dispatch(state.DeleteLocation{ID: m.deleteID})
		m.snapshot = m.store.Snapshot()
		m.clampSelection()
		m.mode = modeBrowse
		m.setStatus("location deleted", false)
	case "n", "N", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) startLocationAdd() (tea.Model, tea.Cmd) {
	m.form = newLocationForm(nil)
	m.mode = modeLocationForm
	return m, m.form.focusCmd()
}

func (m Model) startLocationEdit(loc state.Location) (tea.Model, tea.Cmd) {
	m.form = newLocationForm(&loc)
	m.mode = modeLocationForm
	return m, m.form.focusCmd()
}

func (m Model) handleLocationFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil

	case "tab", "down":
		m.form.focusNext()
		return m, m.form.focusCmd()
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, m.form.focusCmd()

	case "enter":
		if !m.form.lastFieldFocused() {
			m.form.focusNext()
			return m, m.form.focusCmd()
		}
		return m.submitLocationForm()
	case "ctrl+s":
		return m.submitLocationForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) submitLocationForm() (tea.Model, tea.Cmd) {
	loc, err := m.form.location()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	if m.form.editingID == "" {
		loc.ID = identity.New()
		m.store.Dispatch(state.AddLocation{Location: loc})
		m.setStatus("location added", false)
	} else {
		loc.ID = m.form.editingID
		m.store.Dispatch(state.EditLocation{Location: loc})
		m.setStatus("location updated", false)
	}

	m.snapshot = m.store.Snapshot()
	m.clampSelection()
	m.mode = modeBrowse
	return m, nil
}

func (m Model) startContactEdit() (tea.Model, tea.Cmd) {
	m.contact = newContactForm(m.snapshot.ContactInfo)
	m.mode = modeContactForm
	return m, m.contact.focusCmd()
}

func (m Model) handleContactFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil

	case "tab", "down":
		m.contact.focusNext()
		return m, m.contact.focusCmd()
	case "shift+tab", "up":
		m.contact.focusPrev()
		return m, m.contact.focusCmd()

	case "enter":
		if !m.contact.lastFieldFocused() {
			m.contact.focusNext()
			return m, m.contact.focusCmd()
		}
		return m.submitContactForm()
	case "ctrl+s":
		return m.submitContactForm()
	}

	var cmd tea.Cmd
	m.contact, cmd = m.contact.update(msg)
	return m, cmd
}

func (m Model) submitContactForm() (tea.Model, tea.Cmd) {
	m.store.Dispatch(state.SetContactInfo{Info: m.contact.info()})
	m.snapshot = m.store.Snapshot()
	m.mode = modeBrowse
	m.setStatus("contact info updated", false)
	return m, nil
}

func (m Model) startAnnouncementsEdit() (tea.Model, tea.Cmd) {
	ta := textarea.New()
	ta.SetWidth(clamp(m.width-8, 20, 76))
	ta.SetHeight(8)
	ta.CharLimit = 0
	ta.SetValue(m.snapshot.Announcements)
	m.announce = ta
	m.mode = modeAnnouncements
	return m, m.announce.Focus()
}

func (m Model) handleAnnouncementsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "ctrl+s":
		m.store.Dispatch(state.SetAnnouncements{Text: m.announce.Value()})
		m.snapshot = m.store.Snapshot()
		m.mode = modeBrowse
		m.setStatus("announcements updated", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.announce, cmd = m.announce.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) clampSelection() {
	if count := len(m.snapshot.Locations); m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedLocation() *state.Location {
	if m.selected < 0 || m.selected >= len(m.snapshot.Locations) {
		return nil
	}
	loc := m.snapshot.Locations[m.selected]
	return &loc
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
