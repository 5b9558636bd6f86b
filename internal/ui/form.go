package ui

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rlagrimas/ecopoint/internal/state"
)

// Location form field order.
const (
	fieldLabel = iota
	fieldAddress
	fieldLat
	fieldLng
	fieldSchedule
	locationFieldCount
)

var locationFieldNames = [locationFieldCount]string{"Label", "Address", "Latitude", "Longitude", "Schedule"}

// locationForm drives the add/edit location dialog. An empty editingID means
// the submit creates a new location.
type locationForm struct {
	editingID string
	inputs    [locationFieldCount]textinput.Model
	focus     int
	errMsg    string
}

func newLocationForm(loc *state.Location) locationForm {
	f := locationForm{}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[fieldLat].Placeholder = "16.4023"
	f.inputs[fieldLng].Placeholder = "120.5960"
	f.inputs[fieldSchedule].Placeholder = "Mon-Fri 8am-5pm"

	if loc != nil {
		f.editingID = loc.ID
		f.inputs[fieldLabel].SetValue(loc.Label)
		f.inputs[fieldAddress].SetValue(loc.Address)
		f.inputs[fieldLat].SetValue(strconv.FormatFloat(loc.Lat, 'f', -1, 64))
		f.inputs[fieldLng].SetValue(strconv.FormatFloat(loc.Lng, 'f', -1, 64))
		f.inputs[fieldSchedule].SetValue(loc.Schedule)
	}
	return f
}

func (f *locationForm) focusNext() {
	f.focus = (f.focus + 1) % locationFieldCount
}

func (f *locationForm) focusPrev() {
	f.focus = (f.focus + locationFieldCount - 1) % locationFieldCount
}

func (f *locationForm) lastFieldFocused() bool {
	return f.focus == locationFieldCount-1
}

// focusCmd moves input focus to the current field and returns its blink cmd.
func (f *locationForm) focusCmd() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f locationForm) update(msg tea.Msg) (locationForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// location validates the form and builds the entity. The ID is left for the
// caller: fresh for adds, the edited location's for edits.
func (f locationForm) location() (state.Location, error) {
	return validateLocation(
		f.inputs[fieldLabel].Value(),
		f.inputs[fieldAddress].Value(),
		f.inputs[fieldLat].Value(),
		f.inputs[fieldLng].Value(),
		f.inputs[fieldSchedule].Value(),
	)
}

// validateLocation enforces the UI-boundary rules: label and address
// non-empty, coordinates finite numbers within geographic range. Intents are
// only constructed from values that pass here.
func validateLocation(label, address, latText, lngText, schedule string) (state.Location, error) {
	label = strings.TrimSpace(label)
	address = strings.TrimSpace(address)

	if label == "" {
		return state.Location{}, errors.New("label is required")
	}
	if address == "" {
		return state.Location{}, errors.New("address is required")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return state.Location{}, errors.New("latitude must be a number")
	}
	if lat < -90 || lat > 90 {
		return state.Location{}, errors.New("latitude must be between -90 and 90")
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return state.Location{}, errors.New("longitude must be a number")
	}
	if lng < -180 || lng > 180 {
		return state.Location{}, errors.New("longitude must be between -180 and 180")
	}

	return state.Location{
		Lat:      lat,
		Lng:      lng,
		Address:  address,
		Schedule: strings.TrimSpace(schedule),
		Label:    label,
	}, nil
}

// Contact form field order.
const (
	contactEmail = iota
	contactPhone
	contactOffice
	contactFieldCount
)

var contactFieldNames = [contactFieldCount]string{"Email", "Phone", "Office"}

// contactForm edits the singleton contact record. All fields are free-form;
// submitting replaces the record wholesale.
type contactForm struct {
	inputs [contactFieldCount]textinput.Model
	focus  int
}

func newContactForm(info state.ContactInfo) contactForm {
	f := contactForm{}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[contactEmail].SetValue(info.Email)
	f.inputs[contactPhone].SetValue(info.Phone)
	f.inputs[contactOffice].SetValue(info.Office)
	return f
}

func (f *contactForm) focusNext() {
	f.focus = (f.focus + 1) % contactFieldCount
}

func (f *contactForm) focusPrev() {
	f.focus = (f.focus + contactFieldCount - 1) % contactFieldCount
}

func (f *contactForm) lastFieldFocused() bool {
	return f.focus == contactFieldCount-1
}

func (f *contactForm) focusCmd() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f contactForm) info() state.ContactInfo {
	return state.ContactInfo{
		Email:  strings.TrimSpace(f.inputs[contactEmail].Value()),
		Phone:  strings.TrimSpace(f.inputs[contactPhone].Value()),
		Office: strings.TrimSpace(f.inputs[contactOffice].Value()),
	}
}
