package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAST_EmptySource(t *testing.T) {
	tree, err := ToAST("")
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Empty(t, tree.Nodes)
}

func TestToAST_SingleAtom(t *testing.T) {
	tree, err := ToAST(`"hello";`)
	require.NoError(t, err)
	require.False(t, tree.IsEmpty())

	// the end-of-input marker contributes a trailing Skip node
	require.Len(t, tree.Nodes, 2)
	atom, ok := tree.Nodes[0].(*AtomNode)
	require.True(t, ok)
	assert.Equal(t, "hello", atom.Text)
	assert.Equal(t, KindSkip, tree.Nodes[1].Kind())
}

func TestToAST_PreservesSourceOrder(t *testing.T) {
	tree, err := ToAST(`"a"; <word>; 5 of "b"; ` + "`c`;")
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 5)

	assert.Equal(t, KindAtom, tree.Nodes[0].Kind())
	assert.Equal(t, KindSymbol, tree.Nodes[1].Kind())
	assert.Equal(t, KindQuantifier, tree.Nodes[2].Kind())
	assert.Equal(t, KindAtom, tree.Nodes[3].Kind())
	assert.Equal(t, KindSkip, tree.Nodes[4].Kind())
}

func TestToAST_WhitespaceOnlySource(t *testing.T) {
	tree, err := ToAST("  \n")
	require.NoError(t, err)
	require.False(t, tree.IsEmpty())
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, KindSkip, tree.Nodes[0].Kind())
}

func TestToAST_UnrecognizedSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"number range", "1 to 5;"},
		{"char range", "a to z;"},
		{"capture group", `capture { "a"; };`},
		{"match group", `match { "a"; };`},
		{"ahead assertion", `ahead { "a"; };`},
		{"behind assertion", `behind { "a"; };`},
		{"negative char class", `not "abc";`},
		{"variable invocation", ".greeting;"},
		{"variable declaration", `let .greeting = { "hi"; };`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToAST(tt.input)
			require.ErrorIs(t, err, ErrUnrecognizedSyntax)
		})
	}
}

func TestToAST_FailFast(t *testing.T) {
	// the first error in traversal order surfaces; nothing partial comes back
	tree, err := ToAST(`"ok"; .bad; <unknown>;`)
	require.ErrorIs(t, err, ErrUnrecognizedSyntax)
	assert.Nil(t, tree)
}

func TestToAST_SyntaxErrorPropagates(t *testing.T) {
	tree, err := ToAST(`"unterminated`)
	require.Error(t, err)
	assert.Nil(t, tree)
}

func TestAST_String(t *testing.T) {
	tree, err := ToAST(`"a"; not <word>;`)
	require.NoError(t, err)
	out := tree.String()
	assert.Contains(t, out, "Root(3 nodes):")
	assert.Contains(t, out, "Atom(a)")
	assert.Contains(t, out, "Symbol(not word)")
	assert.Contains(t, out, "Skip")
}

func TestEmptyIsNotRoot(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Root(nil).IsEmpty())
	assert.Equal(t, "Empty", Empty().String())
}
