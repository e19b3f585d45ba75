package dsl

type node interface {
	line() int
}

type pos struct {
	ln int
}

func (p pos) line() int {
	return p.ln
}

type literalNode struct {
	pos
	value Value
}

type stringNode struct {
	pos
	parts []stringNodePart
}

type stringNodePart struct {
	text string
	expr node
}

type regexNode struct {
	pos
	source string
	flags  string
}

type arrayNode struct {
	pos
	elems []node
}

type notNode struct {
	pos
	x node
}

type binaryNode struct {
	pos
	op          string
	left, right node
}

type argNode struct {
	name  string
	value node
}

// callNode is a name lookup or a method call, with or without a receiver.
type callNode struct {
	pos
	receiver node
	name     string
	args     []argNode
	hasArgs  bool
	block    *blockNode
}

// isVariable reports whether the call may name a local variable.
func (c *callNode) isVariable() bool {
	return c.receiver == nil && !c.hasArgs && c.block == nil
}

type indexNode struct {
	pos
	receiver node
	index    node
}

type blockNode struct {
	pos
	params []string
	body   []node
}

type assignNode struct {
	pos
	target node
	value  node
}

type ifNode struct {
	pos
	cond      node
	negate    bool
	then      []node
	otherwise []node
}
