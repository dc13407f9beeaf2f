// Package tui drives the account form in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/louisbranch/accountform/internal/signup/schema"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

// Localizer resolves catalog keys to display text.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// inbox collects notifications from the session between key presses.
type inbox struct {
	items []wizard.Notification
}

func (b *inbox) Notify(n wizard.Notification) {
	b.items = append(b.items, n)
}

func (b *inbox) drain() []wizard.Notification {
	out := b.items
	b.items = nil
	return out
}

// Model is the root bubbletea model for the form.
type Model struct {
	ctx       context.Context
	session   *wizard.Session
	inbox     *inbox
	loc       Localizer
	focus     int
	banner    *wizard.Notification
	failure   error
	accepted  bool
	cancelled bool
}

// NewModel mounts a fresh form. opts are passed to the wizard session after
// the model's own notifier.
func NewModel(ctx context.Context, loc Localizer, opts ...wizard.Option) Model {
	box := &inbox{}
	all := append([]wizard.Option{wizard.WithNotifier(box)}, opts...)
	return Model{
		ctx:     ctx,
		session: wizard.New(all...),
		inbox:   box,
		loc:     loc,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.cancelled = true
		return m, tea.Quit
	}
	m.banner = nil
	m.failure = nil

	fields := m.stepFields()
	field := fields[m.focus]
	switch key.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % len(fields)
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + len(fields) - 1) % len(fields)
	case tea.KeyLeft, tea.KeyRight:
		if field == schema.FieldRole {
			m.cycleRole(key.Type == tea.KeyRight)
		}
	case tea.KeyBackspace:
		if field != schema.FieldRole {
			value := m.session.Values().Get(field)
			if value != "" {
				_, size := utf8.DecodeLastRuneInString(value)
				m.setField(field, value[:len(value)-size])
			}
		}
	case tea.KeyRunes, tea.KeySpace:
		if field != schema.FieldRole {
			m.setField(field, m.session.Values().Get(field)+string(key.Runes))
		}
	case tea.KeyEsc:
		if m.session.Step() == wizard.StepCredentials {
			m.session.Retreat()
			m.focus = 0
		}
	case tea.KeyEnter:
		if m.focus < len(fields)-1 {
			m.focus++
			return m, nil
		}
		return m.commit()
	}
	return m, nil
}

// commit runs the action of the current step: advance on identity, submit
// on credentials.
func (m Model) commit() (tea.Model, tea.Cmd) {
	if m.session.Step() == wizard.StepIdentity {
		if m.session.Advance() {
			m.focus = 0
		}
		return m, nil
	}

	err := m.session.SubmitForm(m.ctx)
	if notes := m.inbox.drain(); len(notes) > 0 {
		m.banner = &notes[len(notes)-1]
	}
	switch {
	case err == nil:
		m.accepted = true
		return m, tea.Quit
	case errors.Is(err, wizard.ErrPasswordMismatch), errors.Is(err, wizard.ErrFieldsInvalid):
		return m, nil
	default:
		m.failure = err
		return m, nil
	}
}

func (m Model) setField(field schema.Field, value string) {
	// Fields come from the schema, so SetField cannot reject them.
	_ = m.session.SetField(field, value)
}

func (m Model) cycleRole(forward bool) {
	options := schema.RoleOptions()
	current := -1
	for i, opt := range options {
		if opt.Value == m.session.Values().Role {
			current = i
		}
	}
	next := 0
	switch {
	case current < 0 && !forward:
		next = len(options) - 1
	case current >= 0 && forward:
		next = (current + 1) % len(options)
	case current >= 0:
		next = (current + len(options) - 1) % len(options)
	}
	m.setField(schema.FieldRole, options[next].Value)
}

func (m Model) stepFields() []schema.Field {
	if m.session.Step() == wizard.StepCredentials {
		return schema.CredentialFields()
	}
	return schema.IdentityFields()
}

func (m Model) View() string {
	if m.accepted || m.cancelled {
		return ""
	}
	var b strings.Builder
	if m.banner != nil {
		b.WriteString(bannerStyle.Render(m.banner.Title))
		b.WriteString("\n\n")
	}
	if m.failure != nil {
		b.WriteString(errorStyle.Render(m.failure.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d/2)", m.loc.Sprintf("signup.title"), int(m.session.Step())+1)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.loc.Sprintf("signup.description")))
	b.WriteString("\n\n")

	for i, field := range m.stepFields() {
		cursor := "  "
		if i == m.focus {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, m.loc.Sprintf(field.LabelKey()), m.displayValue(field)))
		if msg := m.session.Field(field).Error; msg != "" {
			b.WriteString("    " + errorStyle.Render(msg) + "\n")
		}
	}

	b.WriteString("\n")
	if m.session.Step() == wizard.StepIdentity {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Enter: %s · Tab: ↓ · ←/→: %s · Ctrl+C", m.loc.Sprintf("signup.action.next"), m.loc.Sprintf("signup.label.role"))))
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Enter: %s · Esc: %s · Ctrl+C", m.loc.Sprintf("signup.action.submit"), m.loc.Sprintf("signup.action.back"))))
	}
	return b.String()
}

func (m Model) displayValue(field schema.Field) string {
	value := m.session.Values().Get(field)
	if value == "" {
		if key, ok := field.PlaceholderKey(); ok {
			return helpStyle.Render(m.loc.Sprintf(key))
		}
		return ""
	}
	if field.Secret() {
		return strings.Repeat("•", utf8.RuneCountInString(value))
	}
	if field == schema.FieldRole {
		for _, opt := range schema.RoleOptions() {
			if opt.Value == value {
				return "◀ " + m.loc.Sprintf(opt.LabelKey) + " ▶"
			}
		}
	}
	return value
}

// Accepted reports whether the form was submitted successfully.
func (m Model) Accepted() bool { return m.accepted }

// Cancelled reports whether the user quit before submitting.
func (m Model) Cancelled() bool { return m.cancelled }

// Values returns the current form values.
func (m Model) Values() schema.Values { return m.session.Values() }
