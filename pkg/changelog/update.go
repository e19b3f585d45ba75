package changelog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/prompt"
)

// Release confirmation answers.
const (
	answerYes  = "yes"
	answerNo   = "no"
	answerEdit = "edit"
)

var releaseOptions = []prompt.Option{
	{Key: "y", Name: "Create a new Release CHANGELOG", Value: answerYes},
	{Key: "n", Name: "Cancel the Release CHANGELOG", Value: answerNo},
	{Key: "e", Name: "Edit the Release CHANGELOG before continuing", Value: answerEdit},
}

// Update renders the changes of a new version and prepends them to the changelog.
func (c *realChangelog) Update(ctx context.Context, params UpdateParams) error {
	if params.Filename == "" {
		params.Filename = DefaultFilename
	}
	if params.Source == "" {
		params.Source = DefaultSource
	}

	file := fs.NewFile(c.fs, c.projectPath, params.Filename)
	exists, err := file.Exists()
	if err != nil {
		return fmt.Errorf("failed to check changelog file %s: %w", file.Path(), err)
	}
	if !exists {
		return newMissingFileError(params.Filename)
	}

	_, _ = fmt.Fprintln(c.stdout, Separator)

	source, err := Lookup(params.Source)
	if err != nil {
		return err
	}

	changes, err := FilteredBy(source, params.MessagePattern)(ctx, c.git, c.tags)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", params.Source, err)
	}

	content, err := c.Render(params.NewVersion, changes)
	if err != nil {
		return err
	}

	if params.Confirmation {
		if content, err = c.confirm(content); err != nil {
			return err
		}
	}

	if err := file.Prepend(content); err != nil {
		return fmt.Errorf("failed to update %s: %w", file.Path(), err)
	}
	return nil
}

// Render formats the changes of newVersion, followed by an empty line.
func (c *realChangelog) Render(newVersion string, changes []string) (string, error) {
	rendered, err := mustache.Render(c.format, map[string]any{
		"new_version":     newVersion,
		"version_changes": changes,
		"date":            c.now().Format(DateLayout),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render changelog format: %w", err)
	}
	return rendered + "\n", nil
}

func (c *realChangelog) confirm(content string) (string, error) {
	message := fmt.Sprintf("Create new Release?\n%s\n%s%s\n", Separator, content, Separator)

	choice, err := c.prompt.PromptSelect(message, releaseOptions)
	if errors.Is(err, prompt.ErrNoSelection) {
		return "", ErrCanceled
	}
	if err != nil {
		return "", err
	}

	switch choice.Value {
	case answerYes:
		return content, nil
	case answerEdit:
		edited, err := c.prompt.EditText(content)
		if err != nil {
			return "", err
		}
		return edited, nil
	default:
		return "", ErrCanceled
	}
}
