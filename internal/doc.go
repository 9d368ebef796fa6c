// Package internal provides the compilation driver for the Alani tool.
//
// It glues the language front end (grammar and ast packages) to the
// command line: walking paths for source files, compiling them, caching
// results by content hash, formatting outcomes for the terminal, and
// recompiling on file changes in watch mode.
//
// Key components:
//
// Engine: coordinates compilation. It expands paths into source files,
// runs each through ast.ToAST, and collects per-file Results.
//
// Cache: an in-memory compile-result cache keyed by content hash, so an
// unchanged file is never compiled twice.
//
// Result: the outcome of compiling one file, either an AST or the error
// that aborted the conversion.
//
// SourceCode: a simple structure holding a source file as lines, used to
// render caret diagnostics for syntax errors.
//
// Usage:
//
//	engine := internal.NewEngine(logger, nil)
//	results, err := engine.ProcessPaths(ctx, []string{"patterns/"})
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(internal.FormatResults(results, false))
//
// This package is intended for internal use within the Alani tool and
// should not be imported by external packages.
package internal
