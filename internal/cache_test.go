package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alani-lang/alani/ast"
)

func TestCache_PutGet(t *testing.T) {
	cache := NewCache()
	content := []byte(`"hi";`)
	tree := ast.Root(nil)

	_, ok := cache.Get("a.alani", content)
	assert.False(t, ok)

	cache.Put("a.alani", content, tree, nil)
	entry, ok := cache.Get("a.alani", content)
	require.True(t, ok)
	assert.Same(t, tree, entry.AST)
	assert.NoError(t, entry.Err)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_ContentChangeInvalidates(t *testing.T) {
	cache := NewCache()
	cache.Put("a.alani", []byte("old"), ast.Root(nil), nil)

	_, ok := cache.Get("a.alani", []byte("new"))
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_StoresErrors(t *testing.T) {
	cache := NewCache()
	content := []byte("not <start>;")
	cache.Put("bad.alani", content, nil, ast.ErrNegativeStartNotAllowed)

	entry, ok := cache.Get("bad.alani", content)
	require.True(t, ok)
	assert.Nil(t, entry.AST)
	assert.ErrorIs(t, entry.Err, ast.ErrNegativeStartNotAllowed)
}
