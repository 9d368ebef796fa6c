package grammar

import (
	"reflect"
	"testing"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Token
		wantErr bool
	}{
		{
			name:  "amount quantifier",
			input: `5 of "na";`,
			want: []Token{
				{Type: TokenNumber, Value: "5", Position: 0, End: 1},
				{Type: TokenIdent, Value: "of", Position: 2, End: 4},
				{Type: TokenQuoteString, Value: `"na"`, Position: 5, End: 9},
				{Type: TokenSemicolon, Value: ";", Position: 9, End: 10},
				{Type: TokenEOF, Value: "", Position: 10, End: 10},
			},
		},
		{
			name:  "symbol",
			input: "<word>",
			want: []Token{
				{Type: TokenSymbol, Value: "word", Position: 0, End: 6},
				{Type: TokenEOF, Value: "", Position: 6, End: 6},
			},
		},
		{
			name:  "raw string keeps escapes",
			input: "`a\\`b`",
			want: []Token{
				{Type: TokenRawString, Value: "`a\\`b`", Position: 0, End: 6},
				{Type: TokenEOF, Value: "", Position: 6, End: 6},
			},
		},
		{
			name:  "single quoted string",
			input: `'a\'b'`,
			want: []Token{
				{Type: TokenQuoteString, Value: `'a\'b'`, Position: 0, End: 6},
				{Type: TokenEOF, Value: "", Position: 6, End: 6},
			},
		},
		{
			name:  "variable reference",
			input: ".greeting",
			want: []Token{
				{Type: TokenVariable, Value: "greeting", Position: 0, End: 9},
				{Type: TokenEOF, Value: "", Position: 9, End: 9},
			},
		},
		{
			name:  "punctuation",
			input: "{ } =",
			want: []Token{
				{Type: TokenLBrace, Value: "{", Position: 0, End: 1},
				{Type: TokenRBrace, Value: "}", Position: 2, End: 3},
				{Type: TokenEquals, Value: "=", Position: 4, End: 5},
				{Type: TokenEOF, Value: "", Position: 5, End: 5},
			},
		},
		{
			name:  "line comment is skipped",
			input: "// nothing to see\n5",
			want: []Token{
				{Type: TokenNumber, Value: "5", Position: 18, End: 19},
				{Type: TokenEOF, Value: "", Position: 19, End: 19},
			},
		},
		{
			name:    "unterminated string",
			input:   `"abc`,
			wantErr: true,
		},
		{
			name:    "unterminated raw string",
			input:   "`abc",
			wantErr: true,
		},
		{
			name:    "unterminated symbol",
			input:   "<word",
			wantErr: true,
		},
		{
			name:    "unexpected character",
			input:   "@",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLexer(tt.input).Tokenize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Tokenize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexer_ErrorPosition(t *testing.T) {
	_, err := NewLexer("<word>;\n@").Tokenize()
	if err == nil {
		t.Fatal("expected error")
	}
	syntaxErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if syntaxErr.Line != 2 || syntaxErr.Col != 1 {
		t.Errorf("error at %d:%d, want 2:1", syntaxErr.Line, syntaxErr.Col)
	}
}
