package dsl

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lerenn/verto/pkg/executor"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
)

// callMethod dispatches args.name on recv.
func (in *realInterpreter) callMethod(ctx context.Context, recv Value, args callArgs) (Value, error) {
	switch args.name {
	case "nil?":
		return recv == nil, nil
	case "to_s":
		return toS(recv), nil
	case "inspect":
		return inspect(recv), nil
	}

	var (
		value Value
		found bool
		err   error
	)
	switch x := recv.(type) {
	case string:
		value, found, err = stringMethod(x, args)
	case Symbol:
		value, found, err = stringMethod(string(x), args)
	case []Value:
		value, found, err = in.arrayMethod(ctx, x, args)
	case *Hash:
		value, found, err = hashMethod(x, args)
	case *regexp.Regexp:
		value, found, err = regexpMethod(x, args)
	case semver.Version:
		value, found, err = versionMethod(x, args)
	case semver.PreRelease:
		value, found, err = preReleaseMethod(x, args)
	case executor.Result:
		value, found, err = resultMethod(x, args)
	case *fs.File:
		value, found, err = fileMethod(x, args)
	case *configNode:
		value, found, err = in.configMethod(ctx, x, args)
	case *runtime.Options:
		value, found, err = optionsMethod(x, args)
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w `%s` for %s at line %d", ErrNoMethod, args.name, typeName(recv), args.line)
	}
	return value, nil
}

func stringMethod(s string, args callArgs) (Value, bool, error) {
	switch args.name {
	case "strip":
		return strings.TrimSpace(s), true, nil
	case "empty?":
		return s == "", true, nil
	case "upcase":
		return strings.ToUpper(s), true, nil
	case "downcase":
		return strings.ToLower(s), true, nil
	case "length", "size":
		return int64(len(s)), true, nil
	case "to_sym":
		return Symbol(s), true, nil
	case "include?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		return strings.Contains(s, toS(args.arg(0))), true, nil
	case "start_with?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		return strings.HasPrefix(s, toS(args.arg(0))), true, nil
	case "end_with?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		return strings.HasSuffix(s, toS(args.arg(0))), true, nil
	case "match?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		re, err := toRegex(args.arg(0))
		if err != nil {
			return nil, true, err
		}
		return re.MatchString(s), true, nil
	case "split":
		if err := args.expect(0, 1); err != nil {
			return nil, true, err
		}
		var fields []string
		if len(args.pos) == 0 {
			fields = strings.Fields(s)
		} else {
			fields = strings.Split(s, toS(args.arg(0)))
		}
		values := make([]Value, len(fields))
		for i, f := range fields {
			values[i] = f
		}
		return values, true, nil
	case "lines":
		lines := strings.SplitAfter(s, "\n")
		values := make([]Value, 0, len(lines))
		for _, line := range lines {
			if line != "" {
				values = append(values, line)
			}
		}
		return values, true, nil
	case "sub", "gsub":
		if err := args.expect(2, 2); err != nil {
			return nil, true, err
		}
		re, err := toRegex(args.arg(0))
		if err != nil {
			return nil, true, err
		}
		repl := replacement(args.arg(0), toS(args.arg(1)))
		if args.name == "gsub" {
			return re.ReplaceAllString(s, repl), true, nil
		}
		return replaceFirst(re, s, repl), true, nil
	case "to_version":
		v, err := semver.Parse(s)
		return v, true, err
	}
	return nil, false, nil
}

// replaceFirst substitutes the first match of re only.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	expanded := re.ExpandString(nil, repl, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}

func (in *realInterpreter) arrayMethod(ctx context.Context, list []Value, args callArgs) (Value, bool, error) {
	switch args.name {
	case "length", "size":
		return int64(len(list)), true, nil
	case "empty?":
		return len(list) == 0, true, nil
	case "first":
		if len(list) == 0 {
			return nil, true, nil
		}
		return list[0], true, nil
	case "last":
		if len(list) == 0 {
			return nil, true, nil
		}
		return list[len(list)-1], true, nil
	case "include?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		for _, v := range list {
			if equal(v, args.arg(0)) {
				return true, true, nil
			}
		}
		return false, true, nil
	case "join":
		if err := args.expect(0, 1); err != nil {
			return nil, true, err
		}
		parts := make([]string, len(list))
		for i, v := range list {
			parts[i] = toS(v)
		}
		return strings.Join(parts, toS(args.arg(0))), true, nil
	case "[]":
		i, ok := args.arg(0).(int64)
		if !ok {
			return nil, true, fmt.Errorf("%w: array index must be an integer", ErrType)
		}
		if i < 0 {
			i += int64(len(list))
		}
		if i < 0 || i >= int64(len(list)) {
			return nil, true, nil
		}
		return list[i], true, nil
	case "each":
		if err := args.needBlock(); err != nil {
			return nil, true, err
		}
		for _, v := range list {
			if _, err := in.callBlock(ctx, args.block, nil, v); err != nil {
				return nil, true, err
			}
		}
		return list, true, nil
	case "map":
		if err := args.needBlock(); err != nil {
			return nil, true, err
		}
		mapped := make([]Value, 0, len(list))
		for _, v := range list {
			value, err := in.callBlock(ctx, args.block, nil, v)
			if err != nil {
				return nil, true, err
			}
			mapped = append(mapped, value)
		}
		return mapped, true, nil
	case "select", "filter", "reject":
		if err := args.needBlock(); err != nil {
			return nil, true, err
		}
		keep := args.name != "reject"
		kept := make([]Value, 0, len(list))
		for _, v := range list {
			ok, err := in.blockTruthy(ctx, args, v)
			if err != nil {
				return nil, true, err
			}
			if ok == keep {
				kept = append(kept, v)
			}
		}
		return kept, true, nil
	case "find", "detect":
		if err := args.needBlock(); err != nil {
			return nil, true, err
		}
		for _, v := range list {
			ok, err := in.blockTruthy(ctx, args, v)
			if err != nil || ok {
				return v, true, err
			}
		}
		return nil, true, nil
	case "any?", "all?", "none?":
		// Without a block each element is its own predicate.
		matched := 0
		for _, v := range list {
			ok, err := in.blockTruthy(ctx, args, v)
			if err != nil {
				return nil, true, err
			}
			if ok {
				matched++
			}
		}
		switch args.name {
		case "any?":
			return matched > 0, true, nil
		case "all?":
			return matched == len(list), true, nil
		default:
			return matched == 0, true, nil
		}
	case "count":
		if err := args.expect(0, 1); err != nil {
			return nil, true, err
		}
		if len(args.pos) == 0 && args.block == nil {
			return int64(len(list)), true, nil
		}
		var n int64
		for _, v := range list {
			var ok bool
			if len(args.pos) > 0 {
				ok = equal(v, args.arg(0))
			} else {
				var err error
				if ok, err = in.blockTruthy(ctx, args, v); err != nil {
					return nil, true, err
				}
			}
			if ok {
				n++
			}
		}
		return n, true, nil
	}
	return nil, false, nil
}

// blockTruthy yields v to the block of args, or tests v itself without one.
func (in *realInterpreter) blockTruthy(ctx context.Context, args callArgs, v Value) (bool, error) {
	if args.block == nil {
		return truthy(v), nil
	}
	result, err := in.callBlock(ctx, args.block, nil, v)
	if err != nil {
		return false, err
	}
	return truthy(result), nil
}

func hashMethod(h *Hash, args callArgs) (Value, bool, error) {
	switch args.name {
	case "[]":
		key, _ := name(args.arg(0))
		value, _ := h.Get(key)
		return value, true, nil
	case "[]=":
		key, ok := name(args.arg(0))
		if !ok {
			return nil, true, fmt.Errorf("%w: hash keys must be strings or symbols", ErrType)
		}
		h.Set(key, args.arg(1))
		return args.arg(1), true, nil
	case "key?":
		key, _ := name(args.arg(0))
		_, ok := h.Get(key)
		return ok, true, nil
	case "keys":
		keys := h.Keys()
		values := make([]Value, len(keys))
		for i, k := range keys {
			values[i] = Symbol(k)
		}
		return values, true, nil
	case "length", "size":
		return int64(h.Len()), true, nil
	}
	return nil, false, nil
}

func regexpMethod(re *regexp.Regexp, args callArgs) (Value, bool, error) {
	switch args.name {
	case "match?":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		return re.MatchString(toS(args.arg(0))), true, nil
	case "source":
		return re.String(), true, nil
	}
	return nil, false, nil
}

func versionMethod(v semver.Version, args callArgs) (Value, bool, error) {
	switch args.name {
	case "major":
		return int64(v.Major), true, nil
	case "minor":
		return int64(v.Minor), true, nil
	case "patch":
		return int64(v.Patch), true, nil
	case "pre_release":
		return v.PreRelease, true, nil
	case "release?":
		return v.IsRelease(), true, nil
	case "pre_release?":
		return !v.IsRelease(), true, nil
	case "release_version":
		return v.ReleaseVersion(), true, nil
	case "up":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		text, err := args.str(0)
		if err != nil {
			return nil, true, err
		}
		kind, err := semver.ParseKind(text)
		if err != nil {
			return nil, true, err
		}
		up, err := v.Up(kind)
		return up, true, err
	case "with_pre_release":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		text, err := args.str(0)
		if err != nil {
			return nil, true, err
		}
		return v.WithPreRelease(text), true, nil
	}
	return nil, false, nil
}

func preReleaseMethod(p semver.PreRelease, args callArgs) (Value, bool, error) {
	switch args.name {
	case "name":
		if p.Name == "" {
			return nil, true, nil
		}
		return p.Name, true, nil
	case "number":
		if !p.HasNumber {
			return nil, true, nil
		}
		return int64(p.Number), true, nil
	case "blank?":
		return p.IsBlank(), true, nil
	}
	return nil, false, nil
}

func resultMethod(r executor.Result, args callArgs) (Value, bool, error) {
	switch args.name {
	case "output":
		return r.Output, true, nil
	case "error":
		return r.Error, true, nil
	case "exit_status":
		return int64(r.ExitStatus), true, nil
	case "success?":
		return r.Success(), true, nil
	case "error?":
		return !r.Success(), true, nil
	}
	return nil, false, nil
}

func fileMethod(f *fs.File, args callArgs) (Value, bool, error) {
	switch args.name {
	case "path":
		return f.Path(), true, nil
	case "exists?":
		ok, err := f.Exists()
		return ok, true, err
	case "read":
		content, err := f.Read()
		return content, true, err
	case "append", "prepend":
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		if args.name == "append" {
			return nil, true, f.Append(toS(args.arg(0)))
		}
		return nil, true, f.Prepend(toS(args.arg(0)))
	case "replace", "sub", "replace_all", "gsub":
		if err := args.expect(2, 2); err != nil {
			return nil, true, err
		}
		re, err := toRegex(args.arg(0))
		if err != nil {
			return nil, true, err
		}
		repl := replacement(args.arg(0), toS(args.arg(1)))
		if args.name == "replace" || args.name == "sub" {
			return nil, true, f.Replace(re, repl)
		}
		return nil, true, f.ReplaceAll(re, repl)
	}
	return nil, false, nil
}

// configMethod reads a key, descends into a section or assigns with `key=`.
func (in *realInterpreter) configMethod(ctx context.Context, node *configNode, args callArgs) (Value, bool, error) {
	cfg := in.state.Config

	if key, ok := strings.CutSuffix(args.name, "="); ok && key != "" && key != "[]" {
		if err := args.expect(1, 1); err != nil {
			return nil, true, err
		}
		return args.arg(0), true, in.setConfig(node.child(key), args.arg(0))
	}

	switch args.name {
	case "[]":
		key, _ := name(args.arg(0))
		value, err := in.getConfig(node.child(key))
		return value, true, err
	case "[]=":
		key, _ := name(args.arg(0))
		return args.arg(1), true, in.setConfig(node.child(key), args.arg(1))
	}

	key := node.child(args.name)
	if !cfg.IsSection(key) {
		value, err := in.getConfig(key)
		return value, true, err
	}

	child := &configNode{path: key}
	if args.block != nil {
		_, err := in.callBlock(ctx, args.block, child)
		return child, true, err
	}
	return child, true, nil
}

func (in *realInterpreter) getConfig(key string) (Value, error) {
	if in.state.Config.IsSection(key) {
		return &configNode{path: key}, nil
	}

	value, err := in.state.Config.Get(key)
	if err != nil {
		return nil, err
	}
	if n, ok := value.(uint64); ok {
		return int64(n), nil
	}
	return value, nil
}

func (in *realInterpreter) setConfig(key string, value Value) error {
	switch x := value.(type) {
	case Symbol:
		value = string(x)
	case semver.Version:
		value = x.String()
	}
	return in.state.Config.Set(key, value)
}

func optionsMethod(o *runtime.Options, args callArgs) (Value, bool, error) {
	switch args.name {
	case "[]":
		key, _ := name(args.arg(0))
		value, _ := o.Get(key)
		return value, true, nil
	case "[]=":
		key, ok := name(args.arg(0))
		if !ok {
			return nil, true, fmt.Errorf("%w: option names must be strings or symbols", ErrType)
		}
		o.Set(key, args.arg(1))
		return args.arg(1), true, nil
	case "key?":
		key, _ := name(args.arg(0))
		_, ok := o.Get(key)
		return ok, true, nil
	case "add", "merge!":
		values, err := args.options()
		if err != nil {
			return nil, true, err
		}
		for _, key := range values.Keys() {
			value, _ := values.Get(key)
			o.Set(key, value)
		}
		return o, true, nil
	case "merge":
		values, err := args.options()
		if err != nil {
			return nil, true, err
		}
		other := runtime.NewOptions(nil)
		for _, key := range values.Keys() {
			value, _ := values.Get(key)
			other.Set(key, value)
		}
		return o.Merge(other), true, nil
	case "except":
		keys := make([]string, 0, len(args.pos))
		for _, v := range flatten(args.pos) {
			key, ok := name(v)
			if !ok {
				return nil, true, fmt.Errorf("%w: option names must be strings or symbols", ErrType)
			}
			keys = append(keys, key)
		}
		return o.Except(keys...), true, nil
	case "keys":
		keys := o.Keys()
		values := make([]Value, len(keys))
		for i, k := range keys {
			values[i] = Symbol(k)
		}
		return values, true, nil
	case "to_h":
		h := NewHash()
		for _, key := range o.Keys() {
			value, _ := o.Get(key)
			h.Set(key, value)
		}
		return h, true, nil
	case "length", "size":
		return int64(o.Len()), true, nil
	}
	return nil, false, nil
}
