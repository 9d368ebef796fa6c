package grammar

import "fmt"

// SyntaxError reports a lexical or structural error with its 1-based
// source coordinates.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// syntaxErrorAt converts a byte offset into line/column coordinates.
func syntaxErrorAt(input string, pos int, msg string) *SyntaxError {
	line, col := 1, 1
	for i := 0; i < pos && i < len(input); i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{Line: line, Col: col, Msg: msg}
}
