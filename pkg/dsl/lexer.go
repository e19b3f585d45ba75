package dsl

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokLabel
	tokKeyword
	tokInt
	tokString
	tokSymbol
	tokRegex
	tokOp
)

var keywords = map[string]bool{
	"if": true, "elsif": true, "else": true, "unless": true, "end": true,
	"then": true, "do": true, "true": true, "false": true, "nil": true,
	"and": true, "or": true, "not": true,
}

// strPart is a literal chunk or an interpolated expression of a string.
type strPart struct {
	text   string
	code   string
	isCode bool
}

type token struct {
	kind        tokenKind
	text        string
	line        int
	spaceBefore bool
	parts       []strPart
	num         int64
	flags       string
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func (t token) isOp(text string) bool {
	return t.is(tokOp, text)
}

func (t token) isKeyword(text string) bool {
	return t.is(tokKeyword, text)
}

// Operators, longest first.
var operators = []string{
	"==", "!=", "=~", "=>", "&&", "||", "<=", ">=",
	"=", "!", "<", ">", "+", ".", ",", "(", ")", "[", "]", "{", "}", "|", ";",
}

type lexer struct {
	src    string
	pos    int
	line   int
	tokens []token
	// nesting holds the open brackets; newlines are ignored inside ( and [.
	nesting []byte
	space   bool
	// skipped counts the heredoc body lines cut from the current line.
	skipped int
}

func lex(src string) ([]token, error) {
	l := &lexer{src: src, line: 1}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) emit(t token) {
	t.line = l.line
	t.spaceBefore = l.space
	l.space = false
	l.tokens = append(l.tokens, t)
}

func (l *lexer) insideParens() bool {
	if len(l.nesting) == 0 {
		return false
	}
	top := l.nesting[len(l.nesting)-1]
	return top == '(' || top == '['
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
			l.space = true
		case c == '\\' && l.peek(1) == '\n':
			l.pos += 2
			l.line++
			l.space = true
		case c == '\n':
			if !l.insideParens() && len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].kind != tokNewline {
				l.emit(token{kind: tokNewline, text: "\n"})
			}
			l.pos++
			l.line += 1 + l.skipped
			l.skipped = 0
			l.space = true
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case isDigit(c):
			l.lexNumber()
		case c == '-' && isDigit(l.peek(1)):
			l.pos++
			l.lexNumber()
			last := &l.tokens[len(l.tokens)-1]
			last.num, last.text = -last.num, "-"+last.text
		case c == '<' && l.peek(1) == '<' && l.isHeredoc():
			if err := l.lexHeredoc(); err != nil {
				return err
			}
		case isIdentStart(c):
			l.lexIdent()
		case c == '\'':
			if err := l.lexSingleQuoted(); err != nil {
				return err
			}
		case c == '"':
			if err := l.lexDoubleQuoted(); err != nil {
				return err
			}
		case c == '/':
			if err := l.lexRegex(); err != nil {
				return err
			}
		case c == ':' && isIdentStart(l.peek(1)):
			l.pos++
			name := l.readIdent()
			l.emit(token{kind: tokSymbol, text: name})
		default:
			if err := l.lexOperator(); err != nil {
				return err
			}
		}
	}

	l.emit(token{kind: tokNewline, text: "\n"})
	l.emit(token{kind: tokEOF})
	return nil
}

func (l *lexer) lexNumber() {
	start := l.pos
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
	text := strings.ReplaceAll(l.src[start:l.pos], "_", "")
	n, _ := strconv.ParseInt(text, 10, 64)
	l.emit(token{kind: tokInt, text: text, num: n})
}

func (l *lexer) readIdent() string {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.pos++
	}
	// A trailing ! or ? belongs to the name unless it starts != or ?=.
	if c := l.peek(0); (c == '!' || c == '?') && l.peek(1) != '=' {
		l.pos++
	}
	return l.src[start:l.pos]
}

func (l *lexer) lexIdent() {
	name := l.readIdent()

	switch {
	case keywords[name]:
		l.emit(token{kind: tokKeyword, text: name})
	case l.peek(0) == ':' && l.peek(1) != ':':
		l.pos++
		l.emit(token{kind: tokLabel, text: name})
	default:
		l.emit(token{kind: tokIdent, text: name})
	}
}

func (l *lexer) lexSingleQuoted() error {
	line := l.line
	l.pos++

	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return syntaxError(line, "unterminated string")
		}
		c := l.src[l.pos]
		switch {
		case c == '\'':
			l.pos++
			l.emit(token{kind: tokString, parts: []strPart{{text: sb.String()}}})
			return nil
		case c == '\\' && (l.peek(1) == '\'' || l.peek(1) == '\\'):
			sb.WriteByte(l.peek(1))
			l.pos += 2
		default:
			if c == '\n' {
				l.line++
			}
			sb.WriteByte(c)
			l.pos++
		}
	}
}

var escapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', 'e': 0x1b, '0': 0,
	's': ' ', '"': '"', '\\': '\\', '#': '#',
}

func (l *lexer) lexDoubleQuoted() error {
	line := l.line
	l.pos++

	parts, err := l.readParts(line, '"')
	if err != nil {
		return err
	}
	l.emit(token{kind: tokString, parts: parts})
	return nil
}

// readParts reads literal text and #{} sequences up to the closing quote,
// or up to the end of the source when quote is 0.
func (l *lexer) readParts(line int, quote byte) ([]strPart, error) {
	var parts []strPart
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			parts = append(parts, strPart{text: sb.String()})
			sb.Reset()
		}
	}
	done := func() []strPart {
		flush()
		if len(parts) == 0 {
			parts = []strPart{{}}
		}
		return parts
	}

	for {
		if l.pos >= len(l.src) {
			if quote == 0 {
				return done(), nil
			}
			return nil, syntaxError(line, "unterminated string")
		}
		c := l.src[l.pos]
		switch {
		case quote != 0 && c == quote:
			l.pos++
			return done(), nil
		case c == '\\':
			next := l.peek(1)
			if esc, ok := escapes[next]; ok {
				sb.WriteByte(esc)
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(next)
			}
			l.pos += 2
		case c == '#' && l.peek(1) == '{':
			flush()
			code, err := l.readInterpolation(line)
			if err != nil {
				return nil, err
			}
			parts = append(parts, strPart{code: code, isCode: true})
		default:
			if c == '\n' {
				l.line++
			}
			sb.WriteByte(c)
			l.pos++
		}
	}
}

// isHeredoc reports whether the source at pos starts <<~ID, <<-ID or <<ID.
func (l *lexer) isHeredoc() bool {
	offset := 2
	if c := l.peek(offset); c == '~' || c == '-' {
		offset++
	}
	return isIdentStart(l.peek(offset))
}

// lexHeredoc reads a heredoc whose body starts on the next line and ends at a
// line holding only the identifier. The body is cut from the source so the
// rest of the current line is lexed as usual. <<~ strips the common
// indentation; <<- and <<~ allow an indented terminator.
func (l *lexer) lexHeredoc() error {
	line := l.line
	l.pos += 2
	mode := l.peek(0)
	if mode == '~' || mode == '-' {
		l.pos++
	}
	name := l.readIdent()

	eol := strings.IndexByte(l.src[l.pos:], '\n')
	if eol < 0 {
		return syntaxError(line, "unterminated heredoc %s", name)
	}
	eol += l.pos

	var body []string
	start, end := eol+1, -1
	for cursor := start; cursor < len(l.src); {
		next := strings.IndexByte(l.src[cursor:], '\n')
		lineEnd := len(l.src)
		if next >= 0 {
			lineEnd = cursor + next
		}
		text := l.src[cursor:lineEnd]

		terminator := text
		if mode == '~' || mode == '-' {
			terminator = strings.TrimLeft(text, " \t")
		}
		if strings.TrimRight(terminator, " \t\r") == name {
			end = lineEnd
			break
		}

		body = append(body, text)
		cursor = lineEnd + 1
	}
	if end < 0 {
		return syntaxError(line, "unterminated heredoc %s", name)
	}

	if mode == '~' {
		body = dedent(body)
	}
	content := ""
	if len(body) > 0 {
		content = strings.Join(body, "\n") + "\n"
	}

	sub := &lexer{src: content, line: line + 1}
	parts, err := sub.readParts(line, 0)
	if err != nil {
		return err
	}
	l.emit(token{kind: tokString, parts: parts})

	l.skipped += len(body) + 1
	l.src = l.src[:eol] + l.src[end:]
	return nil
}

// dedent removes the indentation shared by the non-blank lines.
func dedent(lines []string) []string {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}

// readInterpolation reads the code of a #{...} sequence.
func (l *lexer) readInterpolation(line int) (string, error) {
	l.pos += 2
	start, depth := l.pos, 1
	var quote byte

	for ; l.pos < len(l.src); l.pos++ {
		c := l.src[l.pos]
		switch {
		case quote != 0:
			if c == '\\' {
				l.pos++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				code := l.src[start:l.pos]
				l.pos++
				return code, nil
			}
		}
	}
	return "", syntaxError(line, "unterminated interpolation")
}

func (l *lexer) lexRegex() error {
	line := l.line
	l.pos++

	var sb strings.Builder
	for {
		if l.pos >= len(l.src) || l.src[l.pos] == '\n' {
			return syntaxError(line, "unterminated regular expression")
		}
		c := l.src[l.pos]
		if c == '/' {
			l.pos++
			break
		}
		if c == '\\' && l.peek(1) == '/' {
			sb.WriteByte('/')
			l.pos += 2
			continue
		}
		if c == '\\' {
			sb.WriteByte(c)
			sb.WriteByte(l.peek(1))
			l.pos += 2
			continue
		}
		sb.WriteByte(c)
		l.pos++
	}

	flags := ""
	for l.pos < len(l.src) && strings.IndexByte("imx", l.src[l.pos]) >= 0 {
		flags += string(l.src[l.pos])
		l.pos++
	}

	l.emit(token{kind: tokRegex, text: sb.String(), flags: flags})
	return nil
}

func (l *lexer) lexOperator() error {
	for _, op := range operators {
		if !strings.HasPrefix(l.src[l.pos:], op) {
			continue
		}

		switch op {
		case "(", "[", "{":
			l.nesting = append(l.nesting, op[0])
		case ")", "]", "}":
			if len(l.nesting) > 0 {
				l.nesting = l.nesting[:len(l.nesting)-1]
			}
		}

		l.pos += len(op)
		l.emit(token{kind: tokOp, text: op})
		return nil
	}
	return syntaxError(l.line, "unexpected character %q", l.src[l.pos])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
