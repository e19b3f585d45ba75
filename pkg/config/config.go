package config

// Config is a typed snapshot of the configuration tree.
type Config struct {
	PreRelease PreReleaseConfig `mapstructure:"pre_release" yaml:"pre_release"`
	Project    ProjectConfig    `mapstructure:"project" yaml:"project"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Version    VersionConfig    `mapstructure:"version" yaml:"version"`
	Git        GitConfig        `mapstructure:"git" yaml:"git"`
	Changelog  ChangelogConfig  `mapstructure:"changelog" yaml:"changelog"`
}

// PreReleaseConfig configures pre-release identifiers.
type PreReleaseConfig struct {
	InitialNumber     uint64 `mapstructure:"initial_number" yaml:"initial_number"`
	DefaultIdentifier string `mapstructure:"default_identifier" yaml:"default_identifier"`
}

// ProjectConfig locates the project.
type ProjectConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// OutputConfig redirects command output to files relative to the project path.
type OutputConfig struct {
	StdoutTo string `mapstructure:"stdout_to" yaml:"stdout_to"`
	StderrTo string `mapstructure:"stderr_to" yaml:"stderr_to"`
}

// VersionConfig configures tag names and their validation.
type VersionConfig struct {
	Prefix      string            `mapstructure:"prefix" yaml:"prefix"`
	Validations ValidationsConfig `mapstructure:"validations" yaml:"validations"`
}

// ValidationsConfig toggles new version checks.
type ValidationsConfig struct {
	NewVersionMustBeBigger bool `mapstructure:"new_version_must_be_bigger" yaml:"new_version_must_be_bigger"`
}

// GitConfig toggles the built-in git hooks.
type GitConfig struct {
	PullBeforeTagCreation  bool `mapstructure:"pull_before_tag_creation" yaml:"pull_before_tag_creation"`
	FetchBeforeTagCreation bool `mapstructure:"fetch_before_tag_creation" yaml:"fetch_before_tag_creation"`
	PushAfterTagCreation   bool `mapstructure:"push_after_tag_creation" yaml:"push_after_tag_creation"`
}

// ChangelogConfig configures changelog rendering.
type ChangelogConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}
