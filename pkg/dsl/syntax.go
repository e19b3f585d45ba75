package dsl

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/changelog"
	"github.com/lerenn/verto/pkg/executor"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/semver"
	"github.com/lerenn/verto/pkg/tagfilter"
)

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"verto_version":              vertoVersion,
		"config":                     configure,
		"latest_version":             latest(tagfilter.All),
		"latest_release_version":     latest(tagfilter.ReleaseOnly),
		"latest_pre_release_version": latest(tagfilter.PreReleaseOnly),
		"current_branch":             currentBranch,
		"branch":                     branch,
		"context":                    guard,
		"sh":                         sh,
		"sh!":                        shStrict,
		"git":                        gitCommand,
		"git!":                       gitStrict,
		"command_options":            commandOptions,
		"before":                     hookAt(hooks.MomentBefore),
		"after":                      hookAt(hooks.MomentAfter),
		"before_command_tag_up":      hookAt(hooks.MomentBeforeTagUp),
		"after_command_tag_up":       hookAt(hooks.MomentAfterTagUp),
		"before_tag_creation":        hookAt(hooks.MomentBeforeTagCreation),
		"on":                         on,
		"before_command":             commandHook("before", "before_command_tag_up"),
		"after_command":              commandHook("after", "after_command_tag_up"),
		"update_changelog":           updateChangelog,
		"file":                       file,
		"env":                        environment,
		"confirm":                    confirm,
		"error":                      printError,
		"error!":                     abort,
		"puts":                       puts,
	}
}

func vertoVersion(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	text, err := args.str(0)
	if err != nil {
		return nil, err
	}
	expected, err := semver.Parse(text)
	if err != nil {
		return nil, err
	}

	if !expected.LessOrEqual(in.version) {
		return nil, base.NewExitError("Current Verto version is %s, required version is %s or higher", in.version, expected)
	}
	return nil, nil
}

func configure(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	root := &configNode{}
	if args.block == nil {
		return root, nil
	}
	_, err := in.callBlock(ctx, args.block, root)
	return root, err
}

func latest(filter string) builtin {
	return func(ctx context.Context, in *realInterpreter, _ callArgs) (Value, error) {
		if v, ok := in.latest[filter]; ok {
			return v, nil
		}

		re, _ := tagfilter.For(filter)
		found, ok, err := in.state.Tags.Latest(ctx, re)
		if err != nil {
			return nil, err
		}

		version := semver.Version{}
		if ok {
			if version, err = semver.Parse(found); err != nil {
				return nil, err
			}
		}
		in.latest[filter] = version
		return version, nil
	}
}

func currentBranch(ctx context.Context, in *realInterpreter, _ callArgs) (Value, error) {
	if in.currentBranch != nil {
		return *in.currentBranch, nil
	}

	name, err := in.state.Git.GetCurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	in.currentBranch = &name
	return name, nil
}

// branch reports whether the current branch is one of names. Strings match
// when they contain the branch name, regexps when they match it.
func branch(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	value, err := currentBranch(ctx, in, args)
	if err != nil {
		return nil, err
	}
	current := value.(string)

	for _, pattern := range flatten(args.pos) {
		switch p := pattern.(type) {
		case *regexp.Regexp:
			if p.MatchString(current) {
				return true, nil
			}
		default:
			if strings.Contains(toS(p), current) {
				return true, nil
			}
		}
	}
	return false, nil
}

func flatten(values []Value) []Value {
	var flat []Value
	for _, v := range values {
		if list, ok := v.([]Value); ok {
			flat = append(flat, flatten(list)...)
			continue
		}
		flat = append(flat, v)
	}
	return flat
}

func guard(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	if err := args.needBlock(); err != nil {
		return nil, err
	}
	if !truthy(args.arg(0)) {
		return nil, nil
	}
	return in.callBlock(ctx, args.block, nil)
}

// executorFor picks the output of a command: the configured streams by
// default, the terminal with output: true, nothing with output: false.
func (in *realInterpreter) executorFor(args callArgs) executor.Executor {
	exec := in.state.Executor()

	output, ok := args.keyword("output")
	if s, isSymbol := output.(Symbol); !ok || output == nil || (isSymbol && s == "from_config") {
		return exec
	}
	if truthy(output) {
		return exec.WithOutput(in.state.TermOut, in.state.TermErr)
	}
	return exec.WithOutput(nil, nil)
}

func (in *realInterpreter) runCommand(ctx context.Context, args callArgs, command string, strict bool) (Value, error) {
	result, err := in.executorFor(args).Run(ctx, command)
	if err != nil {
		return nil, err
	}
	if strict && !result.Success() {
		return nil, base.NewExitError("%s", command)
	}
	return result, nil
}

func commandLine(args callArgs, prefix string) (string, error) {
	if err := args.expect(1, 1); err != nil {
		return "", err
	}
	command, err := args.str(0)
	if err != nil {
		return "", err
	}
	return prefix + command, nil
}

func sh(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	command, err := commandLine(args, "")
	if err != nil {
		return nil, err
	}
	return in.runCommand(ctx, args, command, false)
}

func shStrict(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	command, err := commandLine(args, "")
	if err != nil {
		return nil, err
	}
	return in.runCommand(ctx, args, command, true)
}

func gitCommand(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	command, err := commandLine(args, "git ")
	if err != nil {
		return nil, err
	}
	return in.runCommand(ctx, args, command, false)
}

func gitStrict(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	command, err := commandLine(args, "git ")
	if err != nil {
		return nil, err
	}
	return in.runCommand(ctx, args, command, true)
}

func commandOptions(_ context.Context, in *realInterpreter, _ callArgs) (Value, error) {
	return in.state.Options, nil
}

func (in *realInterpreter) registerHook(args callArgs, moment hooks.Moment) (Value, error) {
	if err := args.needBlock(); err != nil {
		return nil, err
	}

	var on hooks.Context = hooks.AnyContext{}
	if value, ok := args.keyword("on"); ok && value != nil {
		command, ok := name(value)
		if !ok {
			return nil, argumentError(args.name, "on: expects a command name")
		}
		on = hooks.CommandContext(command)
	}

	block := args.block
	return nil, in.state.Hooks.Register(hooks.Hook{
		Name:   fmt.Sprintf("vertofile:%d", args.line),
		Moment: moment,
		On:     on,
		Callback: func(ctx context.Context, attrs hooks.Attributes) error {
			_, err := in.EvaluateBlock(ctx, block, attrs)
			return err
		},
	})
}

func hookAt(moment hooks.Moment) builtin {
	return func(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
		if err := args.expect(0, 0); err != nil {
			return nil, err
		}
		return in.registerHook(args, moment)
	}
}

func (in *realInterpreter) deprecate(current, use string) {
	_, _ = fmt.Fprintf(in.state.TermErr,
		"[DEPRECATED] `%s` is deprecated and will be removed in a future release, use `%s` instead\n", current, use)
}

func on(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	moment, err := args.str(0)
	if err != nil {
		return nil, err
	}

	in.deprecate("on", "before_tag_creation")
	return in.registerHook(args, hooks.Moment(moment))
}

// commandHook registers hooks on the <prefix>_<command> moment.
func commandHook(prefix, replacement string) builtin {
	return func(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
		if err := args.expect(1, 1); err != nil {
			return nil, err
		}
		command, err := args.str(0)
		if err != nil {
			return nil, err
		}

		in.deprecate(prefix+"_command", replacement)
		return in.registerHook(args, hooks.Moment(prefix+"_"+command))
	}
}

func updateChangelog(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	moment := in.state.Hooks.CurrentMoment()
	if moment != hooks.MomentBeforeTagCreation && moment != hooks.MomentAfterTagUp {
		return nil, base.NewExitError("update_changelog is only supported in before_tag_creation or after_command_tag_up")
	}

	params := changelog.UpdateParams{
		Source:       changelog.DefaultSource,
		Confirmation: true,
		Filename:     changelog.DefaultFilename,
	}
	if value, ok := in.attribute("new_version"); ok {
		params.NewVersion = toS(value)
	}
	if value, ok := args.keyword("with"); ok {
		if params.Source, ok = name(value); !ok {
			return nil, argumentError(args.name, "with: expects a source name")
		}
	}
	if value, ok := args.keyword("confirmation"); ok {
		params.Confirmation = truthy(value)
	}
	if value, ok := args.keyword("filename"); ok {
		params.Filename = toS(value)
	}
	if value, ok := args.keyword("message_pattern"); ok && value != nil {
		pattern, err := messagePattern(value)
		if err != nil {
			return nil, err
		}
		params.MessagePattern = pattern
	}

	cfg, err := in.state.Config.Config()
	if err != nil {
		return nil, err
	}

	cl := changelog.NewChangelog(changelog.NewChangelogParams{
		FS:          in.state.FS,
		Git:         in.state.Git,
		Tags:        in.state.Tags,
		Prompt:      in.state.Prompt,
		Stdout:      in.state.Stdout(),
		ProjectPath: in.state.ProjectPath(),
		Format:      cfg.Changelog.Format,
	})
	return nil, cl.Update(ctx, params)
}

func messagePattern(value Value) (*regexp.Regexp, error) {
	if re, ok := value.(*regexp.Regexp); ok {
		return re, nil
	}
	return regexp.Compile(toS(value))
}

func file(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	path, err := args.str(0)
	if err != nil {
		return nil, err
	}
	return fs.NewFile(in.state.FS, in.state.ProjectPath(), path), nil
}

func environment(_ context.Context, _ *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	key, err := args.str(0)
	if err != nil {
		return nil, err
	}
	if value, ok := os.LookupEnv(key); ok {
		return value, nil
	}
	return nil, nil
}

func confirm(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	return in.state.Prompt.PromptForConfirmation(toS(args.arg(0)), false)
}

func printError(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if err := args.expect(1, 1); err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintln(in.state.Stderr(), toS(args.arg(0)))
	return nil, nil
}

// abort prints text and stops the command. The message is not repeated.
func abort(ctx context.Context, in *realInterpreter, args callArgs) (Value, error) {
	if _, err := printError(ctx, in, args); err != nil {
		return nil, err
	}
	return nil, base.NewExitError("")
}

func puts(_ context.Context, in *realInterpreter, args callArgs) (Value, error) {
	values := flatten(args.pos)
	if len(values) == 0 {
		_, _ = fmt.Fprintln(in.state.Stdout())
	}
	for _, value := range values {
		_, _ = fmt.Fprintln(in.state.Stdout(), strings.TrimSuffix(toS(value), "\n"))
	}
	return nil, nil
}
