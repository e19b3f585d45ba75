// Package verto drives the verto commands: it loads the Vertofile, fires the
// lifecycle hooks and creates the version tags.
package verto

import (
	"errors"
	"fmt"

	"github.com/lerenn/verto/internal/base"
)

// Command errors.
var (
	ErrAlreadyTagged = errors.New("repository already has tags")
)

func newAlreadyTaggedError() error {
	return base.WrapExit(ErrAlreadyTagged, "This repository already has tags")
}

func newNoPreviousTagError(prefix string) error {
	return base.NewCommandError(fmt.Sprintf(
		"Project doesn't have a previous tag version, create a new tag with git.\n"+
			"eg: `git tag %s0.1.0`\n", prefix))
}

func newVersionNotBiggerError(newVersion, latestVersion fmt.Stringer) error {
	return base.NewCommandError(fmt.Sprintf(
		"New version(%s) can't be equal or lower than latest version(%s)\n"+
			"run up --pre-release with --patch, --minor or --major (eg: verto tag up --patch --pre-release=rc),\n"+
			"add filters (eg: verto tag up --pre-release --filter=pre_release_only)\n"+
			"or disable tag validation in Vertofile with config.version.validations.new_version_must_be_bigger = false\n",
		newVersion, latestVersion))
}

func newMissingVersionOptionError() error {
	return base.NewCommandError(
		"You must specify the version number to be increased, use the some of the options" +
			"(eg: --major, --minor, --patch, --pre_release=rc)\n" +
			"or configure a Vertofile to specify a default option for current context, eg:\n" +
			"\n" +
			"context('qa') {\n" +
			"  before_command_tag_up {\n" +
			"    command_options.add(pre_release: 'rc')\n" +
			"  }\n" +
			"}\n")
}

func newVertofileExistsError() error {
	return base.NewCommandError(
		"Project already have a Vertofile.\n" +
			"If you want to generate a new with verto init, delete the current one with: `rm Vertofile`\n")
}
