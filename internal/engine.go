package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/alani-lang/alani/ast"
)

// Show a progress bar only when compiling more files than this.
const maxQuietFiles = 25

// Result is the outcome of compiling one file: the produced AST, or the
// error that aborted the conversion.
type Result struct {
	Filename string
	AST      *ast.AST
	Err      error
}

// Engine compiles Alani source files and directories.
type Engine struct {
	logger     *zap.Logger
	extensions []string
	cache      *Cache

	watchDirs  []string
	watcher    *fsnotify.Watcher
	isWatching bool
	onResult   func(Result)
}

// NewEngine returns an engine that recognizes files with the given
// extensions (defaults to .alani).
func NewEngine(logger *zap.Logger, extensions []string) *Engine {
	if len(extensions) == 0 {
		extensions = []string{".alani"}
	}
	return &Engine{
		logger:     logger,
		extensions: extensions,
		cache:      NewCache(),
	}
}

// RunSource compiles source text.
func (e *Engine) RunSource(source string) (*ast.AST, error) {
	return ast.ToAST(source)
}

// RunFile reads and compiles a single file. Results are cached by content
// hash, so an unchanged file is not compiled twice.
func (e *Engine) RunFile(path string) (*ast.AST, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if entry, ok := e.cache.Get(path, content); ok {
		return entry.AST, entry.Err
	}

	tree, compileErr := ast.ToAST(string(content))
	e.cache.Put(path, content, tree, compileErr)
	return tree, compileErr
}

// ProcessPaths compiles every recognized file under the given paths.
// Compile failures land in the per-file results; only I/O problems and
// cancellation abort the whole run.
func (e *Engine) ProcessPaths(ctx context.Context, paths []string) ([]Result, error) {
	files, err := e.collectFiles(paths)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if len(files) > maxQuietFiles {
		bar = progressbar.Default(int64(len(files)), "compiling")
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tree, err := e.RunFile(file)
		results = append(results, Result{Filename: file, AST: tree, Err: err})
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return results, nil
}

// collectFiles expands paths into the ordered list of files to compile.
func (e *Engine) collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}

		if info.IsDir() {
			err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !fileInfo.IsDir() && e.hasDesiredExtension(filePath) {
					files = append(files, filePath)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("error walking directory %s: %w", path, err)
			}
		} else {
			files = append(files, path)
		}
	}
	return files, nil
}

func (e *Engine) hasDesiredExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range e.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
