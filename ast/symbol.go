package ast

import (
	"fmt"

	"github.com/alani-lang/alani/grammar"
)

// buildSymbol converts a symbol pair into a symbol node. The pair's first
// sub-token is the negation marker when present; the last is the name.
func buildSymbol(pair *grammar.Pair) (Node, error) {
	marker, name, err := firstLastInnerText(pair)
	if err != nil {
		return nil, err
	}

	negated := marker == notMarker

	// "start" and "end" are anchors: singular positions that cannot be
	// negated. They have no node representation yet, so when not negated
	// they fall through to the table lookup and miss.
	if negated {
		switch name {
		case "start":
			return nil, ErrNegativeStartNotAllowed
		case "end":
			return nil, ErrNegativeEndNotAllowed
		}
	}

	kind, ok := symbolKinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedSymbol, name)
	}

	return &SymbolNode{SymbolKind: kind, Negated: negated}, nil
}
