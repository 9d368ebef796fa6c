package grammar

// Lexer scans Alani source text and produces a flat token stream.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '/' && l.peekByte(1) == '/':
			l.skipLineComment()

		case isWhitespace(c):
			l.position++

		case c == ';':
			l.addToken(TokenSemicolon, ";", currentPos)
			l.position++

		case c == '{':
			l.addToken(TokenLBrace, "{", currentPos)
			l.position++

		case c == '}':
			l.addToken(TokenRBrace, "}", currentPos)
			l.position++

		case c == '=':
			l.addToken(TokenEquals, "=", currentPos)
			l.position++

		case c == '`':
			if err := l.lexRawString(currentPos); err != nil {
				return nil, err
			}

		case c == '"' || c == '\'':
			if err := l.lexQuotedString(currentPos, c); err != nil {
				return nil, err
			}

		case c == '<':
			if err := l.lexSymbol(currentPos); err != nil {
				return nil, err
			}

		case c == '.':
			if err := l.lexVariable(currentPos); err != nil {
				return nil, err
			}

		case isDigit(c):
			l.lexNumber(currentPos)

		case isIdentStart(c):
			l.lexIdent(currentPos)

		default:
			return nil, syntaxErrorAt(l.input, currentPos, "unexpected character "+quoteByte(c))
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexRawString scans a backtick-delimited raw string. The token value keeps
// the delimiters; escaped backticks stay escaped for the unescaper downstream.
func (l *Lexer) lexRawString(startPos int) error {
	l.position++ // opening backtick
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '\\' && l.position+1 < len(l.input) {
			l.position += 2
			continue
		}
		if c == '`' {
			l.position++
			l.addToken(TokenRawString, l.input[startPos:l.position], startPos)
			return nil
		}
		l.position++
	}
	return syntaxErrorAt(l.input, startPos, "unterminated raw string")
}

// lexQuotedString scans a single- or double-quoted literal. The token value
// keeps the delimiters.
func (l *Lexer) lexQuotedString(startPos int, quote byte) error {
	l.position++ // opening quote
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '\\' && l.position+1 < len(l.input) {
			l.position += 2
			continue
		}
		if c == quote {
			l.position++
			l.addToken(TokenQuoteString, l.input[startPos:l.position], startPos)
			return nil
		}
		l.position++
	}
	return syntaxErrorAt(l.input, startPos, "unterminated string literal")
}

// lexSymbol scans <name>. The token value is the bare name.
func (l *Lexer) lexSymbol(startPos int) error {
	l.position++ // '<'
	nameStart := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	if l.position == nameStart {
		return syntaxErrorAt(l.input, startPos, "expected symbol name after '<'")
	}
	if l.position >= len(l.input) || l.input[l.position] != '>' {
		return syntaxErrorAt(l.input, startPos, "unterminated symbol, expected '>'")
	}
	name := l.input[nameStart:l.position]
	l.position++ // '>'
	l.tokens = append(l.tokens, Token{
		Type:     TokenSymbol,
		Value:    name,
		Position: startPos,
		End:      l.position,
	})
	return nil
}

// lexVariable scans .name. The token value is the bare name.
func (l *Lexer) lexVariable(startPos int) error {
	l.position++ // '.'
	nameStart := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	if l.position == nameStart {
		return syntaxErrorAt(l.input, startPos, "expected variable name after '.'")
	}
	l.tokens = append(l.tokens, Token{
		Type:     TokenVariable,
		Value:    l.input[nameStart:l.position],
		Position: startPos,
		End:      l.position,
	})
	return nil
}

func (l *Lexer) lexNumber(startPos int) {
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenNumber, l.input[startPos:l.position], startPos)
}

func (l *Lexer) lexIdent(startPos int) {
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenIdent, l.input[startPos:l.position], startPos)
}

func (l *Lexer) skipLineComment() {
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
}

func (l *Lexer) peekByte(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
		End:      pos + len(value),
	})
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func quoteByte(c byte) string {
	return "'" + string(c) + "'"
}
