package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/audio"
	"github.com/InfoInnovator/fourier-transform-visualization/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		runComposer()
		return
	}
	runAnalyzer(os.Args[1])
}

// runComposer starts the interactive signal composer. A missing audio
// device is not fatal; audition is simply disabled.
func runComposer() {
	player, err := audio.NewPlayer()
	if err != nil {
		player = nil
	}

	model := ui.NewComposer(player)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runAnalyzer decodes an audio file and opens the spectrum analyzer.
func runAnalyzer(path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
		os.Exit(1)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !audio.IsSupportedExt(ext) {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n",
			ext, strings.Join(audio.SupportedExts(), ", "))
		os.Exit(1)
	}

	clip, err := audio.DecodeFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(clip.Samples) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s contains no samples\n", path)
		os.Exit(1)
	}

	model := ui.NewAnalyzer(clip, audio.ReadMetadata(path))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
