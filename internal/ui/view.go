package ui

import (
	"fmt"
	"strings"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/render"
)

const colWidth = 11

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 48 {
		w = 72
	}
	plotW := w - 4
	plotH := m.plotHeight()

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("fourier") + "\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	b.WriteString("  " + plotTitleStyle.Render("Combined wave") + "\n")
	b.WriteString(indent(plotStyle.Render(render.LinePlot(m.res.Time, plotW, plotH))))
	b.WriteString("\n")

	if m.fftErr != nil {
		b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Spectrum unavailable: %v", m.fftErr)) + "\n")
	} else {
		title := "Frequency spectrum (real part)"
		if m.showMagnitude {
			title = "Frequency spectrum (magnitude)"
		}
		b.WriteString("  " + plotTitleStyle.Render(title) + "\n")
		b.WriteString(indent(spectrumStyle.Render(render.LinePlot(m.eased, plotW, plotH))))
	}
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("  " + style.Render(m.status) + "\n")
	}
	b.WriteString("  " + helpStyle.Render(composerHelp(m.editing)) + "\n")
	return b.String()
}

// plotHeight splits the space left over by the table between the two
// plots, within sane bounds.
func (m Model) plotHeight() int {
	used := len(m.comps) + 12
	h := (m.height - used) / 2
	if h < 4 {
		h = 4
	}
	if h > 10 {
		h = 10
	}
	return h
}

func (m Model) renderTable() string {
	var b strings.Builder

	head := fmt.Sprintf("  %-*s%-*s%-*s%-*s", colWidth, "Function", colWidth, "Amplitude", colWidth, "Frequency", colWidth, "Y Shift")
	b.WriteString(columnStyle.Render(head) + "\n")

	for i, c := range m.comps {
		cells := []string{
			c.Kind.String(),
			fmt.Sprintf("%.2f", c.Amplitude),
			fmt.Sprintf("%.2f", c.Frequency),
			fmt.Sprintf("%.2f", c.Offset),
		}
		marker := "  "
		if i == m.row {
			marker = "▸ "
		}
		b.WriteString(marker)
		for f, cell := range cells {
			b.WriteString(m.renderCell(cell, i == m.row && f == m.field))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderParamRow("Samples", fmt.Sprintf("%d", m.sampleCount), m.rowSampleCount()))
	b.WriteString(m.renderParamRow("Range", fmt.Sprintf("%.2f", m.domainRange), m.rowDomainRange()))
	return b.String()
}

func (m Model) renderCell(cell string, selected bool) string {
	if selected && m.editing {
		return padTo(m.input.View(), colWidth)
	}
	style := cellStyle
	if selected {
		style = selectedStyle
	}
	return style.Render(padTo(cell, colWidth-2)) + "  "
}

func (m Model) renderParamRow(label, value string, row int) string {
	marker := "  "
	if m.row == row {
		marker = "▸ "
	}
	var cell string
	if m.row == row && m.editing {
		cell = m.input.View()
	} else if m.row == row {
		cell = selectedStyle.Render(value)
	} else {
		cell = cellStyle.Render(value)
	}
	return fmt.Sprintf("%s%s  %s\n", marker, columnStyle.Render(padTo(label, colWidth-2)), cell)
}

func padTo(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
