package hooks

import "context"

// Moment names a point of a command lifecycle.
type Moment string

// Moments fired by verto commands. Any other string is a custom moment.
const (
	MomentBefore            Moment = "before"
	MomentAfter             Moment = "after"
	MomentBeforeTagUp       Moment = "before_tag_up"
	MomentAfterTagUp        Moment = "after_tag_up"
	MomentBeforeTagCreation Moment = "before_tag_creation"
)

// Attributes are the values exposed to a callback for one firing.
type Attributes map[string]any

// Callback is the function run when a hook fires.
type Callback func(ctx context.Context, attrs Attributes) error

// Context decides whether a hook applies to the running command.
type Context interface {
	Match(command string) bool
}

// AnyContext matches every command.
type AnyContext struct{}

// Match always returns true.
func (AnyContext) Match(string) bool {
	return true
}

// CommandContext matches a single command by name, eg: "tag_up".
type CommandContext string

// Match reports whether command is the named one.
func (c CommandContext) Match(command string) bool {
	return string(c) == command
}

// Hook is a callback attached to a moment.
type Hook struct {
	Name     string
	Moment   Moment
	On       Context
	Callback Callback
}

func (h Hook) matches(moment Moment, command string) bool {
	if h.Moment != moment {
		return false
	}
	if h.On == nil {
		return true
	}
	return h.On.Match(command)
}
