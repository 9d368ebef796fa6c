package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alani-lang/alani/grammar"
)

// buildQuantifier converts a quantifier pair into a quantifier node. The
// pair holds, in order, a quantity sub-token (whose first child is the
// kind, and whose raw text carries the lazy marker) and the quantified
// expression as its last sub-token.
func buildQuantifier(pair *grammar.Pair, env Environment) (Node, error) {
	quantity, err := firstInner(pair)
	if err != nil {
		return nil, err
	}
	kind, err := firstInner(quantity)
	if err != nil {
		return nil, err
	}

	last, err := lastInner(pair)
	if err != nil {
		return nil, err
	}
	node, err := buildNode(last, env)
	if err != nil {
		return nil, err
	}
	expr, err := narrowExpression(node)
	if err != nil {
		return nil, err
	}

	lazy := strings.HasPrefix(quantity.Text(), lazyMarker)

	quantifier := &QuantifierNode{Lazy: lazy, Expr: expr}
	switch kind.Rule() {
	case grammar.RuleQuantityRange:
		lo, hi, err := firstLastInnerText(kind)
		if err != nil {
			return nil, err
		}
		quantifier.QuantKind = QuantRange
		if quantifier.Start, err = parseBound(lo); err != nil {
			return nil, err
		}
		if quantifier.End, err = parseBound(hi); err != nil {
			return nil, err
		}
	case grammar.RuleQuantityOver:
		num, err := firstInner(kind)
		if err != nil {
			return nil, err
		}
		quantifier.QuantKind = QuantOver
		if quantifier.Count, err = parseBound(num.Text()); err != nil {
			return nil, err
		}
	case grammar.RuleQuantityAmount:
		quantifier.QuantKind = QuantAmount
		if quantifier.Count, err = parseBound(kind.Text()); err != nil {
			return nil, err
		}
	case grammar.RuleQuantitySome:
		quantifier.QuantKind = QuantSome
	case grammar.RuleQuantityAny:
		quantifier.QuantKind = QuantAny
	case grammar.RuleQuantityOption:
		quantifier.QuantKind = QuantOption
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedSyntax, kind.Rule())
	}

	return quantifier, nil
}

// narrowExpression restricts a built node to the kinds legal inside a
// quantifier. Quantifiers repeat leaf-like content only; every other kind
// is a distinct, named rejection.
func narrowExpression(node Node) (Expression, error) {
	switch n := node.(type) {
	case *AtomNode:
		return n, nil
	case *SymbolNode:
		return n, nil
	case *QuantifierNode:
		return nil, ErrQuantifierInQuantifier
	case *SkipNode:
		return nil, ErrSkippedNodeInQuantifier
	default:
		return nil, fmt.Errorf("%w: unexpected node inside quantifier", ErrUnrecognizedSyntax)
	}
}

func parseBound(text string) (uint32, error) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid quantity %q", ErrMissingNode, text)
	}
	return uint32(n), nil
}
