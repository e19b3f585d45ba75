//go:build unit

package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_Heredoc(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []strPart
	}{
		{
			name:     "squiggly strips indentation",
			source:   "<<~TEXT\n    a\n\n      b\n  TEXT\n",
			expected: []strPart{{text: "a\n\n  b\n"}},
		},
		{
			name:     "dash keeps indentation",
			source:   "<<-TEXT\n  a\n    TEXT\n",
			expected: []strPart{{text: "  a\n"}},
		},
		{
			name:     "plain",
			source:   "<<TEXT\n  a\nTEXT",
			expected: []strPart{{text: "  a\n"}},
		},
		{
			name:     "interpolation",
			source:   "<<~TEXT\n  v#{version}.\n  TEXT\n",
			expected: []strPart{{text: "v"}, {code: "version", isCode: true}, {text: ".\n"}},
		},
		{
			name:     "empty",
			source:   "<<~TEXT\nTEXT\n",
			expected: []strPart{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lex(tt.source)
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tokString, tokens[0].kind)
			assert.Equal(t, tt.expected, tokens[0].parts)
		})
	}
}

func TestLex_HeredocLines(t *testing.T) {
	tokens, err := lex("x = <<~A.strip\n  a\n  b\nA\ny")
	require.NoError(t, err)

	var kinds []tokenKind
	lines := map[string]int{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.kind)
		if tok.kind == tokIdent {
			lines[tok.text] = tok.line
		}
	}

	assert.Equal(t, []tokenKind{
		tokIdent, tokOp, tokString, tokOp, tokIdent, tokNewline, tokIdent, tokNewline, tokEOF,
	}, kinds)
	assert.Equal(t, map[string]int{"x": 1, "strip": 1, "y": 5}, lines)
}

func TestLex_HeredocErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "missing terminator", source: "<<~TEXT\n  a\n"},
		{name: "no body", source: "puts <<~TEXT"},
		{name: "indented plain terminator", source: "<<TEXT\n  a\n  TEXT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lex(tt.source)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.ErrorContains(t, err, "unterminated heredoc TEXT")
		})
	}
}

func TestLex_NegativeIntegers(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []int64
	}{
		{name: "literal", source: "-1", expected: []int64{-1}},
		{name: "index", source: "[1][-5]", expected: []int64{1, -5}},
		{name: "assignment", source: "x = -10_000", expected: []int64{-10000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lex(tt.source)
			require.NoError(t, err)

			var numbers []int64
			for _, tok := range tokens {
				if tok.kind == tokInt {
					numbers = append(numbers, tok.num)
				}
			}
			assert.Equal(t, tt.expected, numbers)
		})
	}
}
