package tui

import (
	"context"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// EditorLauncher opens a file in an external editor.
type EditorLauncher interface {
	Launch(filePath string) tea.Cmd
}

type editorClosedMsg struct {
	path string
	err  error
}

// ExecEditor runs Command, or $EDITOR, or vi, suspending the TUI while it runs.
type ExecEditor struct {
	Command string
}

// Launch opens the file in the configured editor.
//
//nolint:gosec // subprocess launching
func (e ExecEditor) Launch(filePath string) tea.Cmd {
	name := e.Command
	if name == "" {
		name = os.Getenv("EDITOR")
	}
	if name == "" {
		name = "vi"
	}

	c := exec.CommandContext(context.Background(), name, filePath)

	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorClosedMsg{path: filePath, err: err}
	})
}
