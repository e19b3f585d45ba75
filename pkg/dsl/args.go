package dsl

import (
	"context"
	"fmt"
)

// callArgs are the evaluated arguments of a call.
type callArgs struct {
	name  string
	pos   []Value
	kw    *Hash
	block *Block
	line  int
}

type builtin func(ctx context.Context, in *realInterpreter, args callArgs) (Value, error)

// isPlain reports whether the call has neither arguments nor block.
func (a callArgs) isPlain() bool {
	return len(a.pos) == 0 && a.kw.Len() == 0 && a.block == nil
}

func (a callArgs) arg(i int) Value {
	if i < len(a.pos) {
		return a.pos[i]
	}
	return nil
}

// expect checks the number of positional arguments.
func (a callArgs) expect(lowest, highest int) error {
	n := len(a.pos)
	if n < lowest || (highest >= 0 && n > highest) {
		if lowest == highest {
			return argumentError(a.name, "given %d, expected %d", n, lowest)
		}
		return argumentError(a.name, "given %d, expected %d..%d", n, lowest, highest)
	}
	return nil
}

func (a callArgs) str(i int) (string, error) {
	switch v := a.arg(i).(type) {
	case string:
		return v, nil
	case Symbol:
		return string(v), nil
	}
	return "", fmt.Errorf("%w: %s expects a string as argument %d, got %s", ErrType, a.name, i+1, typeName(a.arg(i)))
}

func (a callArgs) keyword(key string) (Value, bool) {
	return a.kw.Get(key)
}

func (a callArgs) needBlock() error {
	if a.block == nil {
		return argumentError(a.name, "a block is required")
	}
	return nil
}

// options returns the keyword arguments, or a single hash argument.
func (a callArgs) options() (*Hash, error) {
	if a.kw.Len() > 0 {
		return a.kw, nil
	}
	if len(a.pos) == 1 {
		if h, ok := a.pos[0].(*Hash); ok {
			return h, nil
		}
	}
	if len(a.pos) == 0 {
		return NewHash(), nil
	}
	return nil, argumentError(a.name, "expected keyword arguments")
}
