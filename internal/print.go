package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/alani-lang/alani/ast"
	"github.com/alani-lang/alani/grammar"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	fileStyle  = color.New(color.FgCyan, color.Bold)
	okStyle    = color.New(color.FgGreen, color.Bold)
	nodeStyle  = color.New(color.FgYellow)
)

// FormatResults renders per-file compile outcomes for the terminal.
// When withTrees is set, successful files also print their AST.
func FormatResults(results []Result, withTrees bool) string {
	var builder strings.Builder
	for _, result := range results {
		if result.Err != nil {
			builder.WriteString(errorStyle.Sprint("error: "))
			builder.WriteString(fileStyle.Sprint(result.Filename))
			builder.WriteString(": " + result.Err.Error() + "\n")
			builder.WriteString(formatSyntaxDetail(result.Filename, result.Err))
			continue
		}

		builder.WriteString(okStyle.Sprint("ok: "))
		builder.WriteString(fileStyle.Sprint(result.Filename))
		if result.AST.IsEmpty() {
			builder.WriteString(" (empty)\n")
		} else {
			fmt.Fprintf(&builder, " (%d nodes)\n", len(result.AST.Nodes))
		}
		if withTrees {
			builder.WriteString(FormatAST(result.AST) + "\n")
		}
	}
	return builder.String()
}

// formatSyntaxDetail renders the offending line with a caret under the
// error column when the error carries source coordinates.
func formatSyntaxDetail(filename string, err error) string {
	var syntaxErr *grammar.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return ""
	}
	sourceCode, readErr := ReadSourceCode(filename)
	if readErr != nil || syntaxErr.Line < 1 || syntaxErr.Line > len(sourceCode.Lines) {
		return ""
	}
	line := sourceCode.Lines[syntaxErr.Line-1]
	col := syntaxErr.Col
	if col < 1 || col > len(line)+1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return "  " + line + "\n  " + errorStyle.Sprint(caret) + "\n"
}

// FormatAST renders the tree with one styled line per node.
func FormatAST(tree *ast.AST) string {
	if tree.IsEmpty() {
		return nodeStyle.Sprint("Empty")
	}
	var builder strings.Builder
	fmt.Fprintf(&builder, "Root(%d nodes):\n", len(tree.Nodes))
	for i, node := range tree.Nodes {
		fmt.Fprintf(&builder, "  %d: %s\n", i, nodeStyle.Sprint(node.String()))
	}
	return strings.TrimRight(builder.String(), "\n")
}

// MarshalAST renders the tree as indented JSON for tooling consumers.
func MarshalAST(tree *ast.AST) ([]byte, error) {
	return json.MarshalIndent(astToValue(tree), "", "  ")
}

func astToValue(tree *ast.AST) any {
	if tree.IsEmpty() {
		return map[string]any{"kind": "empty"}
	}
	nodes := make([]any, 0, len(tree.Nodes))
	for _, node := range tree.Nodes {
		nodes = append(nodes, nodeToValue(node))
	}
	return map[string]any{"kind": "root", "nodes": nodes}
}

func nodeToValue(node ast.Node) any {
	switch n := node.(type) {
	case *ast.AtomNode:
		return map[string]any{"kind": "atom", "text": n.Text}
	case *ast.SymbolNode:
		return map[string]any{
			"kind":    "symbol",
			"symbol":  n.SymbolKind.String(),
			"negated": n.Negated,
		}
	case *ast.QuantifierNode:
		value := map[string]any{
			"kind":       "quantifier",
			"quantifier": n.QuantKind.String(),
			"lazy":       n.Lazy,
			"expression": nodeToValue(n.Expr),
		}
		switch n.QuantKind {
		case ast.QuantRange:
			value["start"] = n.Start
			value["end"] = n.End
		case ast.QuantOver, ast.QuantAmount:
			value["count"] = n.Count
		}
		return value
	case *ast.SkipNode:
		return map[string]any{"kind": "skip"}
	default:
		return map[string]any{"kind": "unknown"}
	}
}
