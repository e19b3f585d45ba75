package changelog

import (
	"context"
	"io"
	"regexp"
	"time"

	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/git"
	"github.com/lerenn/verto/pkg/prompt"
	"github.com/lerenn/verto/pkg/tag"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=changelog.go -destination=mocks/changelog.gen.go -package=mocks

const (
	// DefaultFilename is the changelog updated when no file is given.
	DefaultFilename = "CHANGELOG.md"
	// Separator frames the rendered release notes on the output.
	Separator = "---------------------------"
	// DateLayout renders the {{date}} variable, eg: 31/12/2024.
	DateLayout = "02/01/2006"
)

// Changelog interface provides changelog updates.
type Changelog interface {
	// Update renders the changes of a new version and prepends them to the changelog.
	Update(ctx context.Context, params UpdateParams) error
}

// UpdateParams contains parameters for Update.
type UpdateParams struct {
	NewVersion     string
	Source         string
	Confirmation   bool
	Filename       string
	MessagePattern *regexp.Regexp
}

// NewChangelogParams contains parameters for creating a new Changelog instance.
type NewChangelogParams struct {
	FS          fs.FS
	Git         git.Git
	Tags        tag.Repository
	Prompt      prompt.Prompter
	Stdout      io.Writer
	ProjectPath string
	Format      string
	Now         func() time.Time
}

type realChangelog struct {
	fs          fs.FS
	git         git.Git
	tags        tag.Repository
	prompt      prompt.Prompter
	stdout      io.Writer
	projectPath string
	format      string
	now         func() time.Time
}

// NewChangelog creates a new Changelog instance.
func NewChangelog(params NewChangelogParams) Changelog {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	stdout := params.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	return &realChangelog{
		fs:          params.FS,
		git:         params.Git,
		tags:        params.Tags,
		prompt:      params.Prompt,
		stdout:      stdout,
		projectPath: params.ProjectPath,
		format:      params.Format,
		now:         now,
	}
}
