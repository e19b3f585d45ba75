package dsl

// env is a lexical scope. self is the receiver of bare names, the
// configuration inside a config block.
type env struct {
	vars   map[string]Value
	parent *env
	self   Value
}

func newEnv(parent *env, self Value) *env {
	return &env{vars: make(map[string]Value), parent: parent, self: self}
}

func (e *env) lookup(name string) (Value, bool) {
	for s := e; s != nil; s = s.parent {
		if value, ok := s.vars[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// assign updates the closest scope defining name, or defines it in e.
func (e *env) assign(name string, value Value) {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = value
			return
		}
	}
	e.vars[name] = value
}
