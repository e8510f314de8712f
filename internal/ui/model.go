package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/audio"
	"github.com/InfoInnovator/fourier-transform-visualization/internal/render"
	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

const (
	fieldKind = iota
	fieldAmplitude
	fieldFrequency
	fieldOffset
	numFields
)

const (
	defaultSampleCount = 1024
	defaultDomainRange = 3.14

	minDomainRange = 0.1
	maxDomainRange = 100.0
	maxSampleCount = 1 << 16

	nudge            = 0.1
	auditionDuration = 2 * time.Second
)

// Model is the Bubbletea model for the composer screen: a component
// table plus live time and spectrum plots.
type Model struct {
	comps       []signal.Component
	sampleCount int
	domainRange float64

	row   int // component rows, then the two parameter rows
	field int

	input   textinput.Model
	editing bool

	showMagnitude bool

	res    signal.Result
	fftErr error
	spring *render.SpringSeries
	eased  []signal.Sample

	player *audio.Player // nil when no audio device is available

	width      int
	height     int
	status     string
	statusErr  bool
	statusTime time.Time
	exporting  bool
	quitting   bool
}

// NewComposer creates the composer model with one default component.
// player may be nil; audition is then disabled with a status message.
func NewComposer(player *audio.Player) Model {
	in := textinput.New()
	in.CharLimit = 12
	in.Width = 10

	m := Model{
		comps:       []signal.Component{signal.New()},
		sampleCount: defaultSampleCount,
		domainRange: defaultDomainRange,
		field:       fieldAmplitude,
		input:       in,
		spring:      render.NewSpringSeries(30, 10.0, 0.9),
		player:      player,
	}
	m.recompute()
	return m
}

func (m *Model) rowSampleCount() int { return len(m.comps) }
func (m *Model) rowDomainRange() int { return len(m.comps) + 1 }
func (m *Model) rowCount() int       { return len(m.comps) + 2 }

// recompute reruns the synthesis+transform pipeline and retargets the
// spectrum springs. Called after every parameter edit.
func (m *Model) recompute() {
	m.res, m.fftErr = signal.Compute(m.comps, m.sampleCount, m.domainRange)
	if m.fftErr != nil {
		m.spring.SetTarget(nil)
		m.eased = nil
		return
	}
	if m.showMagnitude {
		m.spring.SetTarget(m.res.Magnitudes())
	} else {
		m.spring.SetTarget(m.res.Spectrum)
	}
	m.eased = m.spring.Step()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("fourier"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		if !m.spring.Settled() {
			m.eased = m.spring.Step()
		}
		if m.status != "" && time.Since(m.statusTime) > 5*time.Second {
			m.status = ""
		}
		return m, frameCmd()

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %s", msg.path), false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	text := strings.TrimSpace(m.input.Value())
	switch m.row {
	case m.rowSampleCount():
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 || n > maxSampleCount {
			m.setStatus(fmt.Sprintf("Invalid sample count %q", text), true)
			return
		}
		m.sampleCount = n
	case m.rowDomainRange():
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < minDomainRange || v > maxDomainRange {
			m.setStatus(fmt.Sprintf("Invalid range %q", text), true)
			return
		}
		m.domainRange = v
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			m.setStatus(fmt.Sprintf("Invalid value %q", text), true)
			return
		}
		c := &m.comps[m.row]
		switch m.field {
		case fieldAmplitude:
			c.Amplitude = v
		case fieldFrequency:
			c.Frequency = v
		case fieldOffset:
			c.Offset = v
		}
	}
	m.recompute()
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		if m.player != nil {
			m.player.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.rowCount()-1 {
			m.row++
		}
	case "left", "h":
		if m.row < len(m.comps) && m.field > 0 {
			m.field--
		}
	case "right", "l":
		if m.row < len(m.comps) && m.field < numFields-1 {
			m.field++
		}

	case "a":
		m.comps = append(m.comps, signal.New())
		m.row = len(m.comps) - 1
		m.recompute()
	case "x":
		if m.row < len(m.comps) {
			m.comps = append(m.comps[:m.row], m.comps[m.row+1:]...)
			if m.row >= len(m.comps) && len(m.comps) > 0 {
				m.row = len(m.comps) - 1
			}
			m.recompute()
		}

	case "+", "=":
		m.adjust(1)
	case "-", "_":
		m.adjust(-1)

	case "enter":
		return m.startEdit()

	case "m":
		m.showMagnitude = !m.showMagnitude
		m.recompute()

	case " ":
		return m.toggleAudition()

	case "e":
		if !m.exporting {
			m.exporting = true
			m.setStatus("Exporting...", false)
			comps := slices.Clone(m.comps)
			return m, func() tea.Msg {
				path := fmt.Sprintf("signal-%s.wav", time.Now().Format("20060102-150405"))
				err := audio.ExportWAV(path, audio.RenderPCM(comps, auditionDuration))
				return exportDoneMsg{path: path, err: err}
			}
		}
	}
	return m, nil
}

// adjust applies a coarse nudge to the selected value: ±0.1 on
// component fields and the domain range, double/halve on the sample
// count so it stays a power of two, kind toggle on the kind field.
func (m *Model) adjust(dir int) {
	switch m.row {
	case m.rowSampleCount():
		if dir > 0 {
			if m.sampleCount*2 <= maxSampleCount {
				m.sampleCount *= 2
			}
		} else if m.sampleCount > 2 {
			m.sampleCount /= 2
		}
	case m.rowDomainRange():
		v := m.domainRange + float64(dir)*nudge
		if v < minDomainRange {
			v = minDomainRange
		}
		if v > maxDomainRange {
			v = maxDomainRange
		}
		m.domainRange = v
	default:
		c := &m.comps[m.row]
		switch m.field {
		case fieldKind:
			c.Kind = c.Kind.Toggle()
		case fieldAmplitude:
			c.Amplitude += float64(dir) * nudge
		case fieldFrequency:
			c.Frequency += float64(dir) * nudge
		case fieldOffset:
			c.Offset += float64(dir) * nudge
		}
	}
	m.recompute()
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	var current string
	switch m.row {
	case m.rowSampleCount():
		current = strconv.Itoa(m.sampleCount)
	case m.rowDomainRange():
		current = formatFloat(m.domainRange)
	default:
		if m.field == fieldKind {
			m.comps[m.row].Kind = m.comps[m.row].Kind.Toggle()
			m.recompute()
			return m, nil
		}
		c := m.comps[m.row]
		switch m.field {
		case fieldAmplitude:
			current = formatFloat(c.Amplitude)
		case fieldFrequency:
			current = formatFloat(c.Frequency)
		case fieldOffset:
			current = formatFloat(c.Offset)
		}
	}
	m.editing = true
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) toggleAudition() (tea.Model, tea.Cmd) {
	if m.player == nil {
		m.setStatus("Audio device unavailable", true)
		return m, nil
	}
	if m.player.Playing() {
		m.player.Stop()
		return m, nil
	}
	m.player.Play(audio.RenderPCM(m.comps, auditionDuration))
	m.setStatus("Playing audition...", false)
	return m, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
