package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
	"github.com/louisbranch/accountform/internal/signup/schema"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

type sinkRecorder struct {
	accepted []schema.Values
}

func (s *sinkRecorder) Accept(_ context.Context, values schema.Values) error {
	s.accepted = append(s.accepted, values)
	return nil
}

func newTestModel(t *testing.T) (Model, *sinkRecorder) {
	t.Helper()
	sink := &sinkRecorder{}
	return NewModel(context.Background(), catalog.Printer(catalog.BaseLocale), wizard.WithSink(sink)), sink
}

func send(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		next, c := m.Update(msg)
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, want Model", next)
		}
		m, cmd = model, c
	}
	return m, cmd
}

func text(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func fillIdentity(t *testing.T, m Model, phone string) Model {
	t.Helper()
	m, _ = send(t, m,
		text("홍길동"), key(tea.KeyTab),
		text("hello@sparta-devcamp.com"), key(tea.KeyTab),
		text(phone), key(tea.KeyTab),
		key(tea.KeyRight),
	)
	return m
}

func TestEnterOnLastIdentityFieldAdvances(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = fillIdentity(t, m, "01012345678")
	if got := m.Values().Role; got != schema.RoleAdmin {
		t.Fatalf("Role = %q, want %q", got, schema.RoleAdmin)
	}
	m, _ = send(t, m, key(tea.KeyEnter))
	if got := m.session.Step(); got != wizard.StepCredentials {
		t.Fatalf("Step() = %v, want %v", got, wizard.StepCredentials)
	}
	if m.focus != 0 {
		t.Fatalf("focus = %d, want 0", m.focus)
	}
}

func TestEnterWithInvalidPhoneShowsError(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = fillIdentity(t, m, "02012345678")
	m, _ = send(t, m, key(tea.KeyEnter))
	if got := m.session.Step(); got != wizard.StepIdentity {
		t.Fatalf("Step() = %v, want %v", got, wizard.StepIdentity)
	}
	if view := m.View(); !strings.Contains(view, "전화번호 앞자리는 010으로 시작해야합니다.") {
		t.Fatalf("View() missing phone error:\n%s", view)
	}
}

func TestEnterOnEarlierFieldMovesFocus(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m, _ = send(t, m, key(tea.KeyEnter))
	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	if got := m.session.Step(); got != wizard.StepIdentity {
		t.Fatalf("Step() = %v, want %v", got, wizard.StepIdentity)
	}
}

func TestSubmitMismatchShowsBannerThenAccepts(t *testing.T) {
	t.Parallel()

	m, sink := newTestModel(t)
	m = fillIdentity(t, m, "01012345678")
	m, _ = send(t, m, key(tea.KeyEnter), text("Abcdef1!"), key(tea.KeyTab), text("Abcdef2!"), key(tea.KeyEnter))

	if m.banner == nil || m.banner.Title != "비밀번호가 일치하지 않습니다." {
		t.Fatalf("banner = %+v, want mismatch notification", m.banner)
	}
	if m.Accepted() || len(sink.accepted) != 0 {
		t.Fatal("mismatched submission accepted")
	}
	if view := m.View(); strings.Contains(view, "Abcdef") {
		t.Fatalf("View() leaks password:\n%s", view)
	}

	m, cmd := send(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace), text("1!"))
	if m.banner != nil {
		t.Fatal("banner kept after next key press")
	}
	m, cmd = send(t, m, key(tea.KeyEnter))
	if !m.Accepted() {
		t.Fatal("Accepted() = false, want true")
	}
	if cmd == nil {
		t.Fatal("accepted submit did not quit")
	}
	if len(sink.accepted) != 1 || sink.accepted[0].ConfirmPassword != "Abcdef1!" {
		t.Fatalf("accepted = %+v, want one submission", sink.accepted)
	}
}

func TestEscRetreats(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = fillIdentity(t, m, "01012345678")
	m, _ = send(t, m, key(tea.KeyEnter), key(tea.KeyEsc))
	if got := m.session.Step(); got != wizard.StepIdentity {
		t.Fatalf("Step() = %v, want %v", got, wizard.StepIdentity)
	}
	if got := m.Values().Username; got != "홍길동" {
		t.Fatalf("Username = %q, want kept value", got)
	}
}

func TestRoleCycling(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m, _ = send(t, m, key(tea.KeyShiftTab), key(tea.KeyLeft))
	if got := m.Values().Role; got != schema.RoleUser {
		t.Fatalf("Role = %q, want %q", got, schema.RoleUser)
	}
	m, _ = send(t, m, key(tea.KeyRight))
	if got := m.Values().Role; got != schema.RoleAdmin {
		t.Fatalf("Role = %q, want %q", got, schema.RoleAdmin)
	}
	m, _ = send(t, m, text("x"))
	if got := m.Values().Role; got != schema.RoleAdmin {
		t.Fatalf("typing changed role to %q", got)
	}
}

func TestCtrlCCancels(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m, cmd := send(t, m, key(tea.KeyCtrlC))
	if !m.Cancelled() || cmd == nil {
		t.Fatalf("Cancelled() = %v cmd = %v, want cancelled with quit", m.Cancelled(), cmd)
	}
	if m.View() != "" {
		t.Fatal("View() not empty after cancel")
	}
}

func TestWriteSummaryMasksPasswords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	values := schema.Values{Username: "홍길동", Role: schema.RoleUser, Password: "Abcdef1!", ConfirmPassword: "Abcdef1!"}
	if err := writeSummary(&buf, catalog.Printer(catalog.BaseLocale), values); err != nil {
		t.Fatalf("writeSummary() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Abcdef1!") {
		t.Fatalf("summary leaks password:\n%s", out)
	}
	for _, want := range []string{"계정 정보가 접수되었습니다.", "이름: 홍길동", "역할: 일반사용자"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
