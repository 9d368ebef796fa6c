package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alani-lang/alani/ast"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger, err := zap.NewProduction()
	require.NoError(t, err)
	return NewEngine(logger, nil)
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngine_RunSource(t *testing.T) {
	engine := newTestEngine(t)

	tree, err := engine.RunSource(`some of "na";`)
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, ast.KindQuantifier, tree.Nodes[0].Kind())
}

func TestEngine_RunFile(t *testing.T) {
	engine := newTestEngine(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "greeting.alani", `"hello"; <word>;`)

	tree, err := engine.RunFile(path)
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 3)
}

func TestEngine_RunFileCachesResults(t *testing.T) {
	engine := newTestEngine(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "cached.alani", `"hi";`)

	first, err := engine.RunFile(path)
	require.NoError(t, err)
	second, err := engine.RunFile(path)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, engine.cache.Len())

	// changing the content invalidates the entry
	writeSource(t, dir, "cached.alani", `"bye";`)
	third, err := engine.RunFile(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestEngine_ProcessPaths(t *testing.T) {
	engine := newTestEngine(t)
	dir := t.TempDir()
	writeSource(t, dir, "ok.alani", `5 of "na";`)
	writeSource(t, dir, "bad.alani", `not <start>;`)
	writeSource(t, dir, "ignored.txt", "not alani source")

	results, err := engine.ProcessPaths(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := make(map[string]Result)
	for _, result := range results {
		byName[filepath.Base(result.Filename)] = result
	}

	require.NoError(t, byName["ok.alani"].Err)
	assert.NotNil(t, byName["ok.alani"].AST)
	require.Error(t, byName["bad.alani"].Err)
	assert.ErrorIs(t, byName["bad.alani"].Err, ast.ErrNegativeStartNotAllowed)
}

func TestEngine_ProcessPathsMissingPath(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ProcessPaths(context.Background(), []string{"does-not-exist"})
	require.Error(t, err)
}

func TestEngine_ProcessPathsCancelled(t *testing.T) {
	engine := newTestEngine(t)
	dir := t.TempDir()
	writeSource(t, dir, "a.alani", `"a";`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ProcessPaths(ctx, []string{dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_HasDesiredExtension(t *testing.T) {
	engine := newTestEngine(t)
	assert.True(t, engine.hasDesiredExtension("pattern.alani"))
	assert.False(t, engine.hasDesiredExtension("pattern.txt"))

	custom := NewEngine(zap.NewNop(), []string{".mdy"})
	assert.True(t, custom.hasDesiredExtension("pattern.mdy"))
	assert.False(t, custom.hasDesiredExtension("pattern.alani"))
}
