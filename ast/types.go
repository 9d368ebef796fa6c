package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKind defines the kinds of AST nodes.
type NodeKind int

const (
	KindAtom NodeKind = iota
	KindSymbol
	KindQuantifier
	KindSkip
)

// Node is the interface every AST node implements.
type Node interface {
	Kind() NodeKind // returns the node kind
	String() string // debugging or printing purpose
}

// Expression is the subset of nodes legal as a quantifier operand.
// Only atoms and symbols carry the marker method, so an illegal operand
// cannot be represented once narrowing succeeded.
type Expression interface {
	Node
	expression()
}

var (
	_ Node = (*AtomNode)(nil)
	_ Node = (*SymbolNode)(nil)
	_ Node = (*QuantifierNode)(nil)
	_ Node = (*SkipNode)(nil)

	_ Expression = (*AtomNode)(nil)
	_ Expression = (*SymbolNode)(nil)
)

// AtomNode is a literal or raw text fragment. Literal atoms arrive with
// pattern metacharacters already escaped; raw atoms are carried verbatim.
type AtomNode struct {
	Text string
}

func (a *AtomNode) Kind() NodeKind { return KindAtom }
func (a *AtomNode) String() string {
	escaped := strconv.Quote(a.Text)
	return fmt.Sprintf("Atom(%s)", escaped[1:len(escaped)-1])
}
func (a *AtomNode) expression() {}

// SymbolKind is the closed set of named character classes.
type SymbolKind int

const (
	SymbolSpace SymbolKind = iota
	SymbolNewline
	SymbolVertical
	SymbolReturn
	SymbolTab
	SymbolNull
	SymbolWhitespace
	SymbolAlphabetic
	SymbolAlphanumeric
	SymbolChar
	SymbolDigit
	SymbolWord
	SymbolFeed
	SymbolBackspace
	SymbolBoundary
)

// symbolKinds maps every recognized symbol name to its kind.
var symbolKinds = map[string]SymbolKind{
	"space":        SymbolSpace,
	"newline":      SymbolNewline,
	"vertical":     SymbolVertical,
	"return":       SymbolReturn,
	"tab":          SymbolTab,
	"null":         SymbolNull,
	"whitespace":   SymbolWhitespace,
	"alphabetic":   SymbolAlphabetic,
	"alphanumeric": SymbolAlphanumeric,
	"char":         SymbolChar,
	"digit":        SymbolDigit,
	"word":         SymbolWord,
	"feed":         SymbolFeed,
	"backspace":    SymbolBackspace,
	"boundary":     SymbolBoundary,
}

var symbolNames = map[SymbolKind]string{}

func init() {
	for name, kind := range symbolKinds {
		symbolNames[kind] = name
	}
}

func (k SymbolKind) String() string {
	if name, ok := symbolNames[k]; ok {
		return name
	}
	return "unknown"
}

// SymbolNode is a named character class, optionally negated.
type SymbolNode struct {
	SymbolKind SymbolKind
	Negated    bool
}

func (s *SymbolNode) Kind() NodeKind { return KindSymbol }
func (s *SymbolNode) String() string {
	if s.Negated {
		return fmt.Sprintf("Symbol(not %s)", s.SymbolKind)
	}
	return fmt.Sprintf("Symbol(%s)", s.SymbolKind)
}
func (s *SymbolNode) expression() {}

// QuantifierKind is the closed set of repetition kinds.
type QuantifierKind int

const (
	QuantRange  QuantifierKind = iota // inclusive bounds, start <= end
	QuantSome                         // one or more
	QuantAny                          // zero or more
	QuantOver                         // more than n
	QuantOption                       // zero or one
	QuantAmount                       // exactly n
)

func (k QuantifierKind) String() string {
	switch k {
	case QuantRange:
		return "range"
	case QuantSome:
		return "some"
	case QuantAny:
		return "any"
	case QuantOver:
		return "over"
	case QuantOption:
		return "option"
	case QuantAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// QuantifierNode repeats exactly one narrowed expression.
type QuantifierNode struct {
	QuantKind QuantifierKind
	Start     uint32 // inclusive lower bound when QuantKind is QuantRange
	End       uint32 // inclusive upper bound when QuantKind is QuantRange
	Count     uint32 // repetition operand for QuantOver and QuantAmount
	Lazy      bool
	Expr      Expression
}

func (q *QuantifierNode) Kind() NodeKind { return KindQuantifier }
func (q *QuantifierNode) String() string {
	var b strings.Builder
	b.WriteString("Quantifier(")
	switch q.QuantKind {
	case QuantRange:
		fmt.Fprintf(&b, "%d to %d", q.Start, q.End)
	case QuantOver, QuantAmount:
		fmt.Fprintf(&b, "%s %d", q.QuantKind, q.Count)
	default:
		b.WriteString(q.QuantKind.String())
	}
	if q.Lazy {
		b.WriteString(", lazy")
	}
	fmt.Fprintf(&b, ", %s)", q.Expr)
	return b.String()
}

// SkipNode marks a token that contributes no semantic content, currently
// only the end-of-input marker.
type SkipNode struct{}

func (s *SkipNode) Kind() NodeKind { return KindSkip }
func (s *SkipNode) String() string { return "Skip" }

/// AST is the root of one compilation: either the empty program, or an
// ordered sequence of nodes in source order.
type AST struct {
	Nodes []Node
	empty bool
}

// Root wraps an ordered node sequence into a program.
func Root(nodes []Node) *AST {
	return &AST{Nodes: nodes}
}

// Empty is the program produced by empty source text. It is distinct
// from a root with zero nodes.
func Empty() *AST {
	return &AST{empty: true}
}

// IsEmpty reports whether the program came from empty source text.
func (a *AST) IsEmpty() bool { return a.empty }

func (a *AST) String() string {
	if a.empty {
		return "Empty"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Root(%d nodes):\n", len(a.Nodes))
	for i, node := range a.Nodes {
		fmt.Fprintf(&b, "  %d: %s\n", i, node)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Environment maps variable names to their pattern definitions. It is
// threaded by reference through the whole recursive build and scoped to a
// single ToAST call. Nothing populates or reads it yet; it exists so
// variable declaration and invocation nodes have a home when they land.
type Environment map[string]*AST
