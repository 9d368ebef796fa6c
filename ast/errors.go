package ast

import "errors"

// Every way the build can fail is one of these named kinds. They propagate
// unchanged to the ToAST caller; no partial AST accompanies an error.
var (
	// ErrMissingRootNode means the token source produced no top-level
	// container.
	ErrMissingRootNode = errors.New("missing root node")

	// ErrMissingNode means a rule's expected sub-token was absent.
	ErrMissingNode = errors.New("missing node")

	// ErrUnrecognizedSyntax means a token's rule tag has no dispatch arm:
	// either an unknown construct or one that is not implemented yet.
	ErrUnrecognizedSyntax = errors.New("unrecognized syntax")

	// ErrUnrecognizedSymbol means a symbol name is not in the table of
	// recognized character classes.
	ErrUnrecognizedSymbol = errors.New("unrecognized symbol")

	// ErrNegativeStartNotAllowed and ErrNegativeEndNotAllowed reject
	// negation of the anchor names; anchors are singular positions.
	ErrNegativeStartNotAllowed = errors.New("negative start not allowed")
	ErrNegativeEndNotAllowed   = errors.New("negative end not allowed")

	// Narrowing rejections: quantifiers repeat leaf-like content only.
	ErrQuantifierInQuantifier  = errors.New("unexpected quantifier inside quantifier")
	ErrSkippedNodeInQuantifier = errors.New("unexpected skipped node inside quantifier")
)
