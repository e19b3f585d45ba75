package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

// EditorRunner opens a file in an interactive editor.
type EditorRunner interface {
	// Edit blocks until the editor opened on path exits.
	Edit(path string) error
}

type realEditorRunner struct{}

// NewEditorRunner creates an EditorRunner using $VISUAL or $EDITOR.
func NewEditorRunner() EditorRunner {
	return &realEditorRunner{}
}

// Edit blocks until the editor opened on path exits.
func (r *realEditorRunner) Edit(path string) error {
	fields, err := shell.Fields(editorCommand(), nil)
	if err != nil || len(fields) == 0 {
		return fmt.Errorf("%w: cannot parse editor command %q", ErrEditorFailed, editorCommand())
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEditorFailed, strings.Join(fields, " "), err)
	}
	return nil
}

func editorCommand() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value
		}
	}
	return DefaultEditor
}

// EditText opens content in the user's editor and returns the saved result.
func (p *realPrompt) EditText(content string) (string, error) {
	tmp, err := os.CreateTemp("", "verto-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := p.editor.Edit(tmp.Name()); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %w", err)
	}
	return string(edited), nil
}
