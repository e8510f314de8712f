package ui

import (
	"fmt"
	"math/cmplx"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/audio"
	"github.com/InfoInnovator/fourier-transform-visualization/internal/render"
	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

const (
	minWindowSize     = 64
	maxWindowSize     = 16384
	defaultWindowSize = 4096
)

// AnalyzerModel shows the waveform and FFT magnitude spectrum of a
// window into a decoded audio file.
type AnalyzerModel struct {
	clip audio.Clip
	meta audio.Metadata

	windowStart int
	windowSize  int

	wave []signal.Sample
	spec []signal.Sample

	width    int
	height   int
	quitting bool
}

// NewAnalyzer creates an analyzer over the clip. The window size is the
// largest power of two that fits, capped at the default.
func NewAnalyzer(clip audio.Clip, meta audio.Metadata) AnalyzerModel {
	size := minWindowSize
	for size*2 <= len(clip.Samples) && size*2 <= defaultWindowSize {
		size *= 2
	}
	m := AnalyzerModel{clip: clip, meta: meta, windowSize: size}
	m.compute()
	return m
}

// compute fills both series for the current window. The spectrum keeps
// only the positive-frequency half, mapped to Hz.
func (m *AnalyzerModel) compute() {
	end := m.windowStart + m.windowSize
	if end > len(m.clip.Samples) {
		end = len(m.clip.Samples)
	}
	window := m.clip.Samples[m.windowStart:end]

	m.wave = make([]signal.Sample, len(window))
	data := make([]complex128, len(window))
	for i, v := range window {
		t := float64(m.windowStart+i) / float64(m.clip.SampleRate)
		m.wave[i] = signal.Sample{X: t, Y: v}
		data[i] = complex(v, 0)
	}

	if err := signal.FFT(data); err != nil {
		// Only the trailing partial window can be non-power-of-two;
		// show it without a spectrum.
		m.spec = nil
		return
	}

	if len(data) == 0 {
		m.spec = nil
		return
	}
	half := len(data) / 2
	m.spec = make([]signal.Sample, half)
	binHz := float64(m.clip.SampleRate) / float64(len(data))
	for k := range half {
		m.spec[k] = signal.Sample{X: float64(k) * binHz, Y: cmplx.Abs(data[k])}
	}
}

func (m AnalyzerModel) Init() tea.Cmd {
	return tea.SetWindowTitle("fourier — " + m.meta.Title)
}

func (m AnalyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case "left", "h":
			m.windowStart -= m.windowSize / 2
			if m.windowStart < 0 {
				m.windowStart = 0
			}
			m.compute()
		case "right", "l":
			next := m.windowStart + m.windowSize/2
			if next+m.windowSize <= len(m.clip.Samples) {
				m.windowStart = next
				m.compute()
			}
		case "+", "=":
			if m.windowSize*2 <= maxWindowSize && m.windowSize*2 <= len(m.clip.Samples) {
				m.windowSize *= 2
				m.compute()
			}
		case "-", "_":
			if m.windowSize/2 >= minWindowSize {
				m.windowSize /= 2
				m.compute()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m AnalyzerModel) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 48 {
		w = 72
	}
	plotW := w - 4
	plotH := (m.height - 10) / 2
	if plotH < 4 {
		plotH = 4
	}
	if plotH > 12 {
		plotH = 12
	}

	title := m.meta.Title
	if m.meta.Artist != "" {
		title = m.meta.Artist + " - " + title
	}

	winStartSec := float64(m.windowStart) / float64(m.clip.SampleRate)
	info := fmt.Sprintf("%s  •  %d Hz  •  window %d @ %.2fs",
		formatDuration(m.clip.Duration()), m.clip.SampleRate, m.windowSize, winStartSec)

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("fourier") + "\n\n")
	b.WriteString("  " + columnStyle.Render(title) + "\n")
	b.WriteString("  " + statusStyle.Render(info) + "\n\n")

	b.WriteString("  " + plotTitleStyle.Render("Waveform") + "\n")
	b.WriteString(indent(plotStyle.Render(render.LinePlot(m.wave, plotW, plotH))))
	b.WriteString("\n")

	if m.spec == nil {
		b.WriteString("  " + errorStyle.Render("Spectrum unavailable for the trailing partial window") + "\n")
	} else {
		b.WriteString("  " + plotTitleStyle.Render("Spectrum (magnitude, 0 Hz → Nyquist)") + "\n")
		b.WriteString(indent(spectrumStyle.Render(render.LinePlot(m.spec, plotW, plotH))))
	}
	b.WriteString("\n  " + helpStyle.Render(analyzerHelp()) + "\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
