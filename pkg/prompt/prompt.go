package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Option is one answer of a selection prompt.
type Option struct {
	// Key is the single character shortcut selecting the option.
	Key string
	// Name is the text shown to the user.
	Name string
	// Value identifies the option for the caller.
	Value string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelect asks the user to pick one of options.
	PromptSelect(message string, options []Option) (Option, error)

	// EditText opens content in the user's editor and returns the saved result.
	EditText(content string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
	editor EditorRunner
}

// NewPrompt creates a new Prompt instance on the process standard streams.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a new Prompt instance reading answers from in and
// writing questions to out.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		writer: out,
		editor: NewEditorRunner(),
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	_, _ = fmt.Fprintf(p.writer, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelect asks the user to pick one of options.
func (p *realPrompt) PromptSelect(message string, options []Option) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectBubbleTea(message, options, p.writer)
}
