package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func TestNewComposerDefaults(t *testing.T) {
	m := NewComposer(nil)
	if len(m.comps) != 1 {
		t.Fatalf("expected one starter component, got %d", len(m.comps))
	}
	if m.comps[0] != signal.New() {
		t.Errorf("starter component not default: %+v", m.comps[0])
	}
	if m.sampleCount != 1024 || m.domainRange != 3.14 {
		t.Errorf("unexpected sampling defaults: %d, %v", m.sampleCount, m.domainRange)
	}
	if m.fftErr != nil {
		t.Errorf("default parameters should transform cleanly, got %v", m.fftErr)
	}
	if len(m.res.Time) != 1024 {
		t.Errorf("expected 1024 time samples, got %d", len(m.res.Time))
	}
}

func TestAddAndDeleteComponents(t *testing.T) {
	m := NewComposer(nil)
	m = press(t, m, "a", "a")
	if len(m.comps) != 3 {
		t.Fatalf("expected 3 components, got %d", len(m.comps))
	}
	if m.row != 2 {
		t.Errorf("cursor should follow the added row, got %d", m.row)
	}

	m = press(t, m, "x", "x", "x")
	if len(m.comps) != 0 {
		t.Fatalf("expected no components, got %d", len(m.comps))
	}
	// Empty composition still renders a flat zero line.
	for _, s := range m.res.Time {
		if s.Y != 0 {
			t.Fatalf("expected zero line, got %v", s.Y)
		}
	}
}

func TestKindToggleNudge(t *testing.T) {
	m := NewComposer(nil)
	m.field = fieldKind
	m = press(t, m, "+")
	if m.comps[0].Kind != signal.Cosine {
		t.Errorf("expected Cosine after toggle, got %v", m.comps[0].Kind)
	}
	m = press(t, m, "-")
	if m.comps[0].Kind != signal.Sine {
		t.Errorf("expected Sine after second toggle, got %v", m.comps[0].Kind)
	}
}

func TestAmplitudeNudgeRecomputes(t *testing.T) {
	m := NewComposer(nil)
	m.field = fieldAmplitude
	before := m.res.Time[100].Y
	m = press(t, m, "+")
	if m.comps[0].Amplitude != 1.1 {
		t.Errorf("expected amplitude 1.1, got %v", m.comps[0].Amplitude)
	}
	if m.res.Time[100].Y == before {
		t.Error("time series should change after amplitude nudge")
	}
}

func TestSampleCountStaysPowerOfTwo(t *testing.T) {
	m := NewComposer(nil)
	m.row = m.rowSampleCount()
	m = press(t, m, "+")
	if m.sampleCount != 2048 {
		t.Errorf("expected 2048, got %d", m.sampleCount)
	}
	m = press(t, m, "-", "-")
	if m.sampleCount != 512 {
		t.Errorf("expected 512, got %d", m.sampleCount)
	}
	if m.fftErr != nil {
		t.Errorf("power-of-two counts should transform cleanly: %v", m.fftErr)
	}
}

func TestNonPowerOfTwoCountSurfacesError(t *testing.T) {
	m := NewComposer(nil)
	m.row = m.rowSampleCount()
	m = press(t, m, "enter")
	if !m.editing {
		t.Fatal("enter should start editing")
	}
	m.input.SetValue("1000")
	m = press(t, m, "enter")
	if m.editing {
		t.Fatal("enter should commit the edit")
	}
	if m.sampleCount != 1000 {
		t.Fatalf("expected sample count 1000, got %d", m.sampleCount)
	}
	if m.fftErr == nil {
		t.Fatal("expected transform error for 1000 samples")
	}
	if len(m.res.Time) != 1000 {
		t.Errorf("time series should survive the transform error, got %d samples", len(m.res.Time))
	}
	view := m.View()
	if !strings.Contains(view, "Spectrum unavailable") {
		t.Error("view should explain the missing spectrum")
	}
}

func TestEditRejectsGarbage(t *testing.T) {
	m := NewComposer(nil)
	m.field = fieldFrequency
	m = press(t, m, "enter")
	m.input.SetValue("not-a-number")
	m = press(t, m, "enter")
	if m.comps[0].Frequency != 1.0 {
		t.Errorf("frequency should be unchanged, got %v", m.comps[0].Frequency)
	}
	if m.status == "" || !m.statusErr {
		t.Error("expected an error status")
	}
}

func TestEditEscCancels(t *testing.T) {
	m := NewComposer(nil)
	m.field = fieldOffset
	m = press(t, m, "enter")
	m.input.SetValue("9.5")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.editing {
		t.Fatal("esc should stop editing")
	}
	if m.comps[0].Offset != 0 {
		t.Errorf("offset should be unchanged, got %v", m.comps[0].Offset)
	}
}

func TestCursorBounds(t *testing.T) {
	m := NewComposer(nil)
	m = press(t, m, "k", "k")
	if m.row != 0 {
		t.Errorf("cursor should clamp at top, got %d", m.row)
	}
	for range 10 {
		m = press(t, m, "j")
	}
	if m.row != m.rowCount()-1 {
		t.Errorf("cursor should clamp at bottom, got %d", m.row)
	}
	m.row = 0
	m = press(t, m, "h", "h")
	if m.field != fieldKind {
		t.Errorf("field should clamp left, got %d", m.field)
	}
	for range 10 {
		m = press(t, m, "l")
	}
	if m.field != fieldOffset {
		t.Errorf("field should clamp right, got %d", m.field)
	}
}

func TestAuditionWithoutDevice(t *testing.T) {
	m := NewComposer(nil)
	m = press(t, m, " ")
	if m.status == "" || !m.statusErr {
		t.Error("audition without a device should set an error status")
	}
}

func TestMagnitudeToggle(t *testing.T) {
	m := NewComposer(nil)
	m = press(t, m, "m")
	if !m.showMagnitude {
		t.Fatal("m should enable magnitude display")
	}
	if !strings.Contains(m.View(), "magnitude") {
		t.Error("view should label the magnitude spectrum")
	}
}

func TestComposerViewRenders(t *testing.T) {
	m := NewComposer(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(Model)
	view := m.View()
	for _, want := range []string{"fourier", "Function", "Amplitude", "Frequency", "Y Shift", "Samples", "Range", "Combined wave"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuitClosesCleanly(t *testing.T) {
	m := NewComposer(nil)
	next, cmd := m.Update(key("q"))
	m = next.(Model)
	if !m.quitting {
		t.Fatal("q should quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
