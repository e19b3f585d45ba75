package dsl

type parser struct {
	toks []token
	pos  int
	// noDo is set while reading paren-less arguments so that a do block
	// binds to the outer call.
	noDo int
}

func parse(src string) ([]node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, syntaxError(tok.line, "unexpected %s", describe(tok))
	}
	return body, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) token {
	if p.pos+offset >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+offset]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.peek().kind == tokNewline || p.peek().isOp(";") {
		p.next()
	}
}

func (p *parser) expectOp(op string) error {
	tok := p.next()
	if !tok.isOp(op) {
		return syntaxError(tok.line, "expected %q, got %s", op, describe(tok))
	}
	return nil
}

func (p *parser) expectKeyword(kw string) error {
	tok := p.next()
	if !tok.isKeyword(kw) {
		return syntaxError(tok.line, "expected %q, got %s", kw, describe(tok))
	}
	return nil
}

// atBodyEnd reports whether the current token closes a statement list.
func (p *parser) atBodyEnd() bool {
	tok := p.peek()
	switch {
	case tok.kind == tokEOF, tok.isOp("}"):
		return true
	case tok.kind == tokKeyword:
		return tok.text == "end" || tok.text == "else" || tok.text == "elsif"
	}
	return false
}

func (p *parser) parseStatements() ([]node, error) {
	var body []node
	for {
		p.skipNewlines()
		if p.atBodyEnd() {
			return body, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)

		tok := p.peek()
		if tok.kind != tokNewline && !tok.isOp(";") && !p.atBodyEnd() {
			return nil, syntaxError(tok.line, "unexpected %s", describe(tok))
		}
	}
}

func (p *parser) parseStatement() (node, error) {
	tok := p.peek()
	if tok.isKeyword("if") || tok.isKeyword("unless") {
		return p.parseIf()
	}

	stmt, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.peek().isOp("=") {
		if stmt, err = p.parseAssignment(stmt); err != nil {
			return nil, err
		}
	}

	// Modifiers: `stmt if cond`, `stmt unless cond`.
	for {
		mod := p.peek()
		if !mod.isKeyword("if") && !mod.isKeyword("unless") {
			return stmt, nil
		}
		p.next()

		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt = &ifNode{pos: pos{mod.line}, cond: cond, negate: mod.text == "unless", then: []node{stmt}}
	}
}

func (p *parser) parseAssignment(target node) (node, error) {
	eq := p.next()

	switch t := target.(type) {
	case *callNode:
		if t.hasArgs || t.block != nil {
			return nil, syntaxError(eq.line, "cannot assign to a call of %s", t.name)
		}
	case *indexNode:
	default:
		return nil, syntaxError(eq.line, "invalid assignment target")
	}

	p.skipNewlines()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &assignNode{pos: pos{eq.line}, target: target, value: value}, nil
}

func (p *parser) parseIf() (node, error) {
	kw := p.next()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().isKeyword("then") {
		p.next()
	}

	then, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	n := &ifNode{pos: pos{kw.line}, cond: cond, negate: kw.text == "unless", then: then}

	switch tok := p.peek(); {
	case tok.isKeyword("elsif") && kw.text != "unless":
		elsif, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		n.otherwise = []node{elsif}
		// The nested if consumed the shared end.
		return n, nil
	case tok.isKeyword("else"):
		p.next()
		if n.otherwise, err = p.parseStatements(); err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for tok := p.peek(); tok.isOp("||") || tok.isKeyword("or"); tok = p.peek() {
		p.next()
		p.skipNewlines()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{pos: pos{tok.line}, op: "||", left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for tok := p.peek(); tok.isOp("&&") || tok.isKeyword("and"); tok = p.peek() {
		p.next()
		p.skipNewlines()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{pos: pos{tok.line}, op: "&&", left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (node, error) {
	if tok := p.peek(); tok.isOp("!") || tok.isKeyword("not") {
		p.next()
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &notNode{pos: pos{tok.line}, x: x}, nil
	}
	return p.parseComparison()
}

var comparisons = map[string]bool{
	"==": true, "!=": true, "=~": true, "<": true, "<=": true, ">": true, ">=": true,
}

func (p *parser) parseComparison() (node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.kind != tokOp || !comparisons[tok.text] {
		return left, nil
	}
	p.next()
	p.skipNewlines()

	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &binaryNode{pos: pos{tok.line}, op: tok.text, left: left, right: right}, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	for tok := p.peek(); tok.isOp("+"); tok = p.peek() {
		p.next()
		p.skipNewlines()
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{pos: pos{tok.line}, op: "+", left: left, right: right}
	}
	return left, nil
}

func (p *parser) parsePostfix() (node, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		// A line starting with a dot continues the previous call chain.
		if tok.kind == tokNewline && p.peekAt(1).isOp(".") {
			p.next()
			tok = p.peek()
		}

		switch {
		case tok.isOp("."):
			p.next()
			name := p.next()
			if name.kind != tokIdent && name.kind != tokKeyword {
				return nil, syntaxError(name.line, "expected a method name, got %s", describe(name))
			}
			if x, err = p.parseCall(x, name); err != nil {
				return nil, err
			}
		case tok.isOp("[") && !tok.spaceBefore:
			p.next()
			p.skipNewlines()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			p.skipNewlines()
			if err := p.expectOp("]"); err != nil {
				return nil, err
			}
			x = &indexNode{pos: pos{tok.line}, receiver: x, index: index}
		default:
			return x, nil
		}
	}
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.next()

	switch tok.kind {
	case tokInt:
		return &literalNode{pos: pos{tok.line}, value: tok.num}, nil
	case tokSymbol:
		return &literalNode{pos: pos{tok.line}, value: Symbol(tok.text)}, nil
	case tokString:
		return p.stringNode(tok)
	case tokRegex:
		return &regexNode{pos: pos{tok.line}, source: tok.text, flags: tok.flags}, nil
	case tokIdent:
		return p.parseCall(nil, tok)
	case tokKeyword:
		switch tok.text {
		case "true":
			return &literalNode{pos: pos{tok.line}, value: true}, nil
		case "false":
			return &literalNode{pos: pos{tok.line}, value: false}, nil
		case "nil":
			return &literalNode{pos: pos{tok.line}}, nil
		}
	case tokOp:
		switch tok.text {
		case "(":
			p.skipNewlines()
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			p.skipNewlines()
			return x, p.expectOp(")")
		case "[":
			elems, err := p.parseList("]")
			if err != nil {
				return nil, err
			}
			return &arrayNode{pos: pos{tok.line}, elems: elems}, nil
		}
	}
	return nil, syntaxError(tok.line, "unexpected %s", describe(tok))
}

func (p *parser) parseList(closing string) ([]node, error) {
	var elems []node
	p.skipNewlines()
	for !p.peek().isOp(closing) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		p.skipNewlines()
		if !p.peek().isOp(",") {
			break
		}
		p.next()
		p.skipNewlines()
	}
	return elems, p.expectOp(closing)
}

func (p *parser) stringNode(tok token) (node, error) {
	n := &stringNode{pos: pos{tok.line}}
	for _, part := range tok.parts {
		if !part.isCode {
			n.parts = append(n.parts, stringNodePart{text: part.text})
			continue
		}

		body, err := parse(part.code)
		if err != nil {
			return nil, err
		}
		if len(body) != 1 {
			return nil, syntaxError(tok.line, "interpolation must hold a single expression")
		}
		n.parts = append(n.parts, stringNodePart{expr: body[0]})
	}
	return n, nil
}

// parseCall reads the arguments and block following a method name.
func (p *parser) parseCall(receiver node, name token) (node, error) {
	call := &callNode{pos: pos{name.line}, receiver: receiver, name: name.text}

	switch tok := p.peek(); {
	case tok.isOp("("):
		p.next()
		args, err := p.parseArgs(")")
		if err != nil {
			return nil, err
		}
		call.args, call.hasArgs = args, true
	case tok.spaceBefore && startsCommandArg(tok):
		p.noDo++
		args, err := p.parseCommandArgs()
		p.noDo--
		if err != nil {
			return nil, err
		}
		call.args, call.hasArgs = args, true
	}

	switch tok := p.peek(); {
	case tok.isOp("{"):
		block, err := p.parseBlock("}")
		if err != nil {
			return nil, err
		}
		call.block = block
	case tok.isKeyword("do") && p.noDo == 0:
		block, err := p.parseBlock("end")
		if err != nil {
			return nil, err
		}
		call.block = block
	}

	return call, nil
}

// startsCommandArg reports whether tok may start a paren-less argument.
func startsCommandArg(tok token) bool {
	switch tok.kind {
	case tokString, tokInt, tokSymbol, tokRegex, tokLabel, tokIdent:
		return true
	case tokKeyword:
		return tok.text == "true" || tok.text == "false" || tok.text == "nil" || tok.text == "not"
	case tokOp:
		return tok.text == "[" || tok.text == "!"
	}
	return false
}

func (p *parser) parseArgs(closing string) ([]argNode, error) {
	var args []argNode
	p.skipNewlines()
	for !p.peek().isOp(closing) {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipNewlines()
		if !p.peek().isOp(",") {
			break
		}
		p.next()
		p.skipNewlines()
	}
	return args, p.expectOp(closing)
}

func (p *parser) parseCommandArgs() ([]argNode, error) {
	var args []argNode
	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.peek().isOp(",") {
			return args, nil
		}
		p.next()
		p.skipNewlines()
	}
}

func (p *parser) parseArg() (argNode, error) {
	tok := p.peek()

	switch {
	case tok.kind == tokLabel:
		p.next()
		p.skipNewlines()
		value, err := p.parseExpr()
		return argNode{name: tok.text, value: value}, err
	case (tok.kind == tokSymbol || tok.kind == tokString) && p.peekAt(1).isOp("=>"):
		p.next()
		p.next()
		p.skipNewlines()
		name := tok.text
		if tok.kind == tokString && len(tok.parts) == 1 {
			name = tok.parts[0].text
		}
		value, err := p.parseExpr()
		return argNode{name: name, value: value}, err
	}

	value, err := p.parseExpr()
	return argNode{value: value}, err
}

func (p *parser) parseBlock(closing string) (*blockNode, error) {
	open := p.next()
	block := &blockNode{pos: pos{open.line}}

	// Inner calls may take do blocks again.
	saved := p.noDo
	p.noDo = 0
	defer func() { p.noDo = saved }()

	p.skipNewlinesOnly()
	if p.peek().isOp("|") {
		p.next()
		for !p.peek().isOp("|") {
			param := p.next()
			if param.kind != tokIdent {
				return nil, syntaxError(param.line, "expected a block parameter, got %s", describe(param))
			}
			block.params = append(block.params, param.text)
			if p.peek().isOp(",") {
				p.next()
			}
		}
		p.next()
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	block.body = body

	p.skipNewlines()
	if closing == "}" {
		return block, p.expectOp("}")
	}
	return block, p.expectKeyword("end")
}

func (p *parser) skipNewlinesOnly() {
	for p.peek().kind == tokNewline {
		p.next()
	}
}

func describe(tok token) string {
	switch tok.kind {
	case tokEOF:
		return "end of file"
	case tokNewline:
		return "end of line"
	case tokString:
		return "string literal"
	case tokRegex:
		return "regular expression"
	case tokSymbol:
		return ":" + tok.text
	case tokLabel:
		return tok.text + ":"
	}
	return "'" + tok.text + "'"
}
