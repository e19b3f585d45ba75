package dsl

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/changelog"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interpreter.go -destination=mocks/interpreter.gen.go -package=mocks

// Interpreter interface evaluates Vertofile scripts.
type Interpreter interface {
	// Evaluate runs source with attrs bound as transient names.
	Evaluate(ctx context.Context, source string, attrs hooks.Attributes) (Value, error)

	// EvaluateBlock runs block with attrs bound as transient names.
	EvaluateBlock(ctx context.Context, block *Block, attrs hooks.Attributes) (Value, error)

	// LoadFile evaluates the script stored at path.
	LoadFile(ctx context.Context, path string) error
}

type realInterpreter struct {
	state   *runtime.State
	version semver.Version

	// attrs holds one snapshot per running evaluation, innermost last.
	attrs []hooks.Attributes

	latest        map[string]semver.Version
	currentBranch *string
}

// NewInterpreter creates an Interpreter acting on state. version is the
// running verto version checked by verto_version.
func NewInterpreter(state *runtime.State, version semver.Version) Interpreter {
	return &realInterpreter{
		state:   state,
		version: version,
		latest:  make(map[string]semver.Version),
	}
}

// Evaluate runs source with attrs bound as transient names.
func (in *realInterpreter) Evaluate(ctx context.Context, source string, attrs hooks.Attributes) (Value, error) {
	body, err := parse(source)
	if err != nil {
		return nil, newInterpreterError(err)
	}

	return in.withAttributes(attrs, func() (Value, error) {
		return in.run(ctx, body, newEnv(nil, nil))
	})
}

// EvaluateBlock runs block with attrs bound as transient names.
func (in *realInterpreter) EvaluateBlock(ctx context.Context, block *Block, attrs hooks.Attributes) (Value, error) {
	return in.withAttributes(attrs, func() (Value, error) {
		return in.callBlock(ctx, block, nil)
	})
}

// LoadFile evaluates the script stored at path.
func (in *realInterpreter) LoadFile(ctx context.Context, path string) error {
	data, err := in.state.FS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	in.state.Logger.Logf("Loading %s", path)
	_, err = in.Evaluate(ctx, string(data), nil)
	return err
}

// withAttributes exposes a copy of attrs during fn and drops it on return.
func (in *realInterpreter) withAttributes(attrs hooks.Attributes, fn func() (Value, error)) (Value, error) {
	snapshot := make(hooks.Attributes, len(attrs))
	for k, v := range attrs {
		snapshot[k] = v
	}

	in.attrs = append(in.attrs, snapshot)
	defer func() { in.attrs = in.attrs[:len(in.attrs)-1] }()

	value, err := fn()
	return value, wrapError(err)
}

// wrapError keeps exit and cancel errors as they are.
func wrapError(err error) error {
	var interpErr *InterpreterError
	switch {
	case err == nil:
		return nil
	case base.IsExit(err), errors.Is(err, changelog.ErrCanceled), errors.As(err, &interpErr):
		return err
	}
	return newInterpreterError(err)
}

// attribute looks name up from the innermost scope outwards, so a nested
// evaluation still sees the attributes of the hook that started it.
func (in *realInterpreter) attribute(name string) (Value, bool) {
	for i := len(in.attrs) - 1; i >= 0; i-- {
		if value, ok := in.attrs[i][name]; ok {
			return value, true
		}
	}
	return nil, false
}

func (in *realInterpreter) run(ctx context.Context, body []node, e *env) (Value, error) {
	var last Value
	for _, n := range body {
		value, err := in.eval(ctx, n, e)
		if err != nil {
			return nil, err
		}
		last = value
	}
	return last, nil
}

// callBlock runs block in a new scope bound to args. A non-nil self replaces
// the receiver of bare names.
func (in *realInterpreter) callBlock(ctx context.Context, block *Block, self Value, args ...Value) (Value, error) {
	if block == nil {
		return nil, nil
	}
	if self == nil {
		self = block.env.self
	}

	scope := newEnv(block.env, self)
	for i, param := range block.node.params {
		var arg Value
		if i < len(args) {
			arg = args[i]
		}
		scope.vars[param] = arg
	}
	return in.run(ctx, block.node.body, scope)
}

func (in *realInterpreter) eval(ctx context.Context, n node, e *env) (Value, error) {
	switch x := n.(type) {
	case *literalNode:
		return x.value, nil
	case *stringNode:
		return in.evalString(ctx, x, e)
	case *regexNode:
		re, err := compileRegex(x.source, x.flags)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", x.line(), err)
		}
		return re, nil
	case *arrayNode:
		elems := make([]Value, 0, len(x.elems))
		for _, elem := range x.elems {
			value, err := in.eval(ctx, elem, e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, value)
		}
		return elems, nil
	case *notNode:
		value, err := in.eval(ctx, x.x, e)
		if err != nil {
			return nil, err
		}
		return !truthy(value), nil
	case *binaryNode:
		return in.evalBinary(ctx, x, e)
	case *callNode:
		return in.evalCall(ctx, x, e)
	case *indexNode:
		recv, err := in.eval(ctx, x.receiver, e)
		if err != nil {
			return nil, err
		}
		index, err := in.eval(ctx, x.index, e)
		if err != nil {
			return nil, err
		}
		return in.callMethod(ctx, recv, callArgs{name: "[]", pos: []Value{index}, line: x.line()})
	case *assignNode:
		return in.evalAssign(ctx, x, e)
	case *ifNode:
		cond, err := in.eval(ctx, x.cond, e)
		if err != nil {
			return nil, err
		}
		if truthy(cond) != x.negate {
			return in.run(ctx, x.then, e)
		}
		return in.run(ctx, x.otherwise, e)
	}
	return nil, fmt.Errorf("line %d: unknown node %T", n.line(), n)
}

func (in *realInterpreter) evalString(ctx context.Context, n *stringNode, e *env) (Value, error) {
	var out []byte
	for _, part := range n.parts {
		if part.expr == nil {
			out = append(out, part.text...)
			continue
		}
		value, err := in.eval(ctx, part.expr, e)
		if err != nil {
			return nil, err
		}
		out = append(out, toS(value)...)
	}
	return string(out), nil
}

func (in *realInterpreter) evalBinary(ctx context.Context, n *binaryNode, e *env) (Value, error) {
	left, err := in.eval(ctx, n.left, e)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "&&":
		if !truthy(left) {
			return left, nil
		}
		return in.eval(ctx, n.right, e)
	case "||":
		if truthy(left) {
			return left, nil
		}
		return in.eval(ctx, n.right, e)
	}

	right, err := in.eval(ctx, n.right, e)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "==":
		return equal(left, right), nil
	case "!=":
		return !equal(left, right), nil
	case "=~":
		return matchIndex(left, right)
	case "+":
		return add(left, right)
	}

	cmp, err := compare(left, right)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.line(), err)
	}
	switch n.op {
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	default:
		return cmp >= 0, nil
	}
}

// matchIndex returns the position of the first match, or nil.
func matchIndex(left, right Value) (Value, error) {
	if re, ok := left.(*regexp.Regexp); ok {
		left, right = right, re
	}

	re, ok := right.(*regexp.Regexp)
	if !ok {
		return nil, fmt.Errorf("%w: =~ expects a regexp, got %s", ErrType, typeName(right))
	}
	if left == nil {
		return nil, nil
	}
	loc := re.FindStringIndex(toS(left))
	if loc == nil {
		return nil, nil
	}
	return int64(loc[0]), nil
}

func add(left, right Value) (Value, error) {
	switch x := left.(type) {
	case int64:
		if y, ok := right.(int64); ok {
			return x + y, nil
		}
	case string:
		if y, ok := right.(string); ok {
			return x + y, nil
		}
	case []Value:
		if y, ok := right.([]Value); ok {
			return append(append([]Value(nil), x...), y...), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot add %s and %s", ErrType, typeName(left), typeName(right))
}

func (in *realInterpreter) evalAssign(ctx context.Context, n *assignNode, e *env) (Value, error) {
	value, err := in.eval(ctx, n.value, e)
	if err != nil {
		return nil, err
	}

	switch target := n.target.(type) {
	case *callNode:
		if target.receiver == nil {
			e.assign(target.name, value)
			return value, nil
		}
		recv, err := in.eval(ctx, target.receiver, e)
		if err != nil {
			return nil, err
		}
		_, err = in.callMethod(ctx, recv, callArgs{name: target.name + "=", pos: []Value{value}, line: n.line()})
		return value, err
	case *indexNode:
		recv, err := in.eval(ctx, target.receiver, e)
		if err != nil {
			return nil, err
		}
		index, err := in.eval(ctx, target.index, e)
		if err != nil {
			return nil, err
		}
		_, err = in.callMethod(ctx, recv, callArgs{name: "[]=", pos: []Value{index, value}, line: n.line()})
		return value, err
	}
	return nil, fmt.Errorf("line %d: invalid assignment", n.line())
}

func (in *realInterpreter) evalCall(ctx context.Context, n *callNode, e *env) (Value, error) {
	if n.isVariable() {
		if value, ok := e.lookup(n.name); ok {
			return value, nil
		}
	}

	var recv Value
	if n.receiver != nil {
		var err error
		if recv, err = in.eval(ctx, n.receiver, e); err != nil {
			return nil, err
		}
	}

	args, err := in.evalArgs(ctx, n, e)
	if err != nil {
		return nil, err
	}

	if n.receiver != nil {
		return in.callMethod(ctx, recv, args)
	}
	return in.callFunction(ctx, e, args)
}

// callFunction resolves a bare name: receiver first, then transient
// attributes, then built-ins.
func (in *realInterpreter) callFunction(ctx context.Context, e *env, args callArgs) (Value, error) {
	if node, ok := e.self.(*configNode); ok {
		if in.hasConfigKey(node.child(args.name)) {
			return in.callMethod(ctx, node, args)
		}
	}

	if args.isPlain() {
		if value, ok := in.attribute(args.name); ok {
			return value, nil
		}
	}

	if fn, ok := builtins[args.name]; ok {
		return fn(ctx, in, args)
	}
	return nil, fmt.Errorf("%w `%s` at line %d", ErrUndefined, args.name, args.line)
}

// hasConfigKey reports whether key names a value or a section.
func (in *realInterpreter) hasConfigKey(key string) bool {
	_, err := in.state.Config.Get(key)
	return err == nil
}

func (in *realInterpreter) evalArgs(ctx context.Context, n *callNode, e *env) (callArgs, error) {
	args := callArgs{name: n.name, line: n.line()}
	for _, arg := range n.args {
		value, err := in.eval(ctx, arg.value, e)
		if err != nil {
			return callArgs{}, err
		}
		if arg.name == "" {
			args.pos = append(args.pos, value)
			continue
		}
		if args.kw == nil {
			args.kw = NewHash()
		}
		args.kw.Set(arg.name, value)
	}

	if n.block != nil {
		args.block = &Block{node: n.block, env: e}
	}
	return args, nil
}
