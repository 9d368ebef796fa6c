package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantifierOf(t *testing.T, source string) *QuantifierNode {
	t.Helper()
	tree, err := ToAST(source)
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	quantifier, ok := tree.Nodes[0].(*QuantifierNode)
	require.True(t, ok)
	return quantifier
}

func TestToAST_QuantifierKinds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  QuantifierKind
		wantStart uint32
		wantEnd   uint32
		wantCount uint32
	}{
		{"amount", `16 of "na";`, QuantAmount, 0, 0, 16},
		{"range", `1 to 5 of "na";`, QuantRange, 1, 5, 0},
		{"over", `over 4 of "na";`, QuantOver, 0, 0, 4},
		{"some", `some of "na";`, QuantSome, 0, 0, 0},
		{"any", `any of "na";`, QuantAny, 0, 0, 0},
		{"option", `option of "na";`, QuantOption, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantifier := quantifierOf(t, tt.input)
			assert.Equal(t, tt.wantKind, quantifier.QuantKind)
			assert.Equal(t, tt.wantStart, quantifier.Start)
			assert.Equal(t, tt.wantEnd, quantifier.End)
			assert.Equal(t, tt.wantCount, quantifier.Count)
			assert.False(t, quantifier.Lazy)

			atom, ok := quantifier.Expr.(*AtomNode)
			require.True(t, ok)
			assert.Equal(t, "na", atom.Text)
		})
	}
}

func TestToAST_LazyQuantifiers(t *testing.T) {
	// the lazy marker sets the flag independent of kind
	tests := []struct {
		input    string
		wantKind QuantifierKind
	}{
		{`lazy some of "a";`, QuantSome},
		{`lazy any of "a";`, QuantAny},
		{`lazy option of "a";`, QuantOption},
		{`lazy 3 of "a";`, QuantAmount},
		{`lazy 1 to 5 of "a";`, QuantRange},
		{`lazy over 2 of "a";`, QuantOver},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			quantifier := quantifierOf(t, tt.input)
			assert.Equal(t, tt.wantKind, quantifier.QuantKind)
			assert.True(t, quantifier.Lazy)
		})
	}
}

func TestToAST_QuantifierOverSymbol(t *testing.T) {
	quantifier := quantifierOf(t, "some of <word>;")
	symbol, ok := quantifier.Expr.(*SymbolNode)
	require.True(t, ok)
	assert.Equal(t, SymbolWord, symbol.SymbolKind)
	assert.False(t, symbol.Negated)
}

func TestToAST_QuantifierOverNegatedSymbol(t *testing.T) {
	quantifier := quantifierOf(t, "any of not <digit>;")
	symbol, ok := quantifier.Expr.(*SymbolNode)
	require.True(t, ok)
	assert.Equal(t, SymbolDigit, symbol.SymbolKind)
	assert.True(t, symbol.Negated)
}

func TestToAST_QuantifierInQuantifier(t *testing.T) {
	_, err := ToAST(`some of 5 of "a";`)
	require.ErrorIs(t, err, ErrQuantifierInQuantifier)
}

func TestNarrowExpression(t *testing.T) {
	atom := &AtomNode{Text: "a"}
	expr, err := narrowExpression(atom)
	require.NoError(t, err)
	assert.Same(t, atom, expr)

	symbol := &SymbolNode{SymbolKind: SymbolWord}
	expr, err = narrowExpression(symbol)
	require.NoError(t, err)
	assert.Same(t, symbol, expr)

	_, err = narrowExpression(&QuantifierNode{})
	require.ErrorIs(t, err, ErrQuantifierInQuantifier)

	_, err = narrowExpression(&SkipNode{})
	require.ErrorIs(t, err, ErrSkippedNodeInQuantifier)
}

func TestQuantifierNode_String(t *testing.T) {
	quantifier := quantifierOf(t, `lazy 1 to 5 of "a";`)
	assert.Equal(t, `Quantifier(1 to 5, lazy, Atom(a))`, quantifier.String())

	quantifier = quantifierOf(t, `over 4 of <digit>;`)
	assert.Equal(t, "Quantifier(over 4, Symbol(digit))", quantifier.String())
}
