package ast

import (
	"fmt"

	"github.com/alani-lang/alani/grammar"
)

// Markers used by the surface syntax.
const (
	lazyMarker = "lazy"
	notMarker  = "not"
)

// ToAST converts Alani source text into its AST. Empty input yields the
// Empty program without invoking the token source. Any failure aborts the
// conversion; no partial tree is returned.
func ToAST(source string) (*AST, error) {
	if source == "" {
		return Empty(), nil
	}

	root, err := grammar.Parse(source)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrMissingRootNode
	}

	// The environment carries variable definitions across the whole
	// traversal; every recursive call sees this one instance.
	env := make(Environment)

	return buildNodes(root.Children(), env)
}

// buildNodes converts an ordered pair sequence into the program root,
// preserving source order.
func buildNodes(pairs []*grammar.Pair, env Environment) (*AST, error) {
	nodes := make([]Node, 0, len(pairs))

	for _, pair := range pairs {
		node, err := buildNode(pair, env)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return Root(nodes), nil
}

// buildNode converts a single pair into its AST node, dispatching on the
// rule tag. The default arm fails loudly so a grammar rule without a
// dispatch arm can never be dropped silently.
func buildNode(pair *grammar.Pair, env Environment) (Node, error) {
	switch pair.Rule() {
	case grammar.RuleRaw:
		return &AtomNode{Text: unquoteEscapeRaw(pair.Text())}, nil
	case grammar.RuleLiteral:
		return &AtomNode{Text: unquoteEscapeLiteral(pair.Text())}, nil
	case grammar.RuleSymbol:
		return buildSymbol(pair)
	case grammar.RuleQuantifier:
		return buildQuantifier(pair, env)
	case grammar.RuleEOI:
		return &SkipNode{}, nil
	default:
		// range, group, assertion, negative_char_class, variable_invocation,
		// and variable_declaration land here until they are implemented.
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedSyntax, pair.Rule())
	}
}

// firstInner returns the first sub-token of a pair.
func firstInner(pair *grammar.Pair) (*grammar.Pair, error) {
	children := pair.Children()
	if len(children) == 0 {
		return nil, ErrMissingNode
	}
	return children[0], nil
}

// lastInner returns the last sub-token of a pair.
func lastInner(pair *grammar.Pair) (*grammar.Pair, error) {
	children := pair.Children()
	if len(children) == 0 {
		return nil, ErrMissingNode
	}
	return children[len(children)-1], nil
}

// firstLastInnerText returns the texts of the first and last sub-tokens.
// For a pair with a single child both strings are the same.
func firstLastInnerText(pair *grammar.Pair) (string, string, error) {
	children := pair.Children()
	if len(children) == 0 {
		return "", "", ErrMissingNode
	}
	return children[0].Text(), children[len(children)-1].Text(), nil
}
