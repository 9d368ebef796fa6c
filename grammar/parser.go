package grammar

import (
	"fmt"
	"strconv"
)

// Keywords of the surface syntax.
const (
	kwNot     = "not"
	kwLazy    = "lazy"
	kwOf      = "of"
	kwTo      = "to"
	kwOver    = "over"
	kwSome    = "some"
	kwAny     = "any"
	kwOption  = "option"
	kwCapture = "capture"
	kwMatch   = "match"
	kwAhead   = "ahead"
	kwBehind  = "behind"
	kwLet     = "let"
)

// Parser consumes tokens produced by the lexer and builds the token tree.
type Parser struct {
	source  string
	tokens  []Token
	current int
}

// Parse tokenizes and parses source, returning the root pair of the
// token tree. The root's children are the top-level statements followed
// by an EOI pair.
func Parse(source string) (*Pair, error) {
	tokens, err := NewLexer(source).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{source: source, tokens: tokens}
	return p.parseRoot()
}

func (p *Parser) parseRoot() (*Pair, error) {
	root := &Pair{rule: RuleRoot, text: p.source, pos: 0}

	for p.peek().Type != TokenEOF {
		stmt, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
			return nil, err
		}
		root.children = append(root.children, stmt)
	}

	root.children = append(root.children, &Pair{rule: RuleEOI, pos: len(p.source)})
	return root, nil
}

// parseTerm parses a single construct. It is used for top-level statements,
// block members, and the operand following "of" alike; the AST builder is
// the one deciding which constructs are legal in which position.
func (p *Parser) parseTerm() (*Pair, error) {
	tok := p.peek()

	switch tok.Type {
	case TokenRawString:
		p.advance()
		return p.leaf(RuleRaw, tok), nil

	case TokenQuoteString:
		p.advance()
		return p.leaf(RuleLiteral, tok), nil

	case TokenSymbol:
		p.advance()
		name := &Pair{rule: RuleSymbolName, text: tok.Value, pos: tok.Position + 1}
		return &Pair{
			rule:     RuleSymbol,
			text:     p.span(tok.Position, tok.End),
			pos:      tok.Position,
			children: []*Pair{name},
		}, nil

	case TokenNumber:
		return p.parseNumberLed()

	case TokenVariable:
		p.advance()
		return &Pair{
			rule: RuleVariableInvocation,
			text: p.span(tok.Position, tok.End),
			pos:  tok.Position,
		}, nil

	case TokenIdent:
		switch tok.Value {
		case kwNot:
			return p.parseNegated()
		case kwLazy, kwOver, kwSome, kwAny, kwOption:
			return p.parseQuantifier()
		case kwCapture, kwMatch:
			return p.parseGroup()
		case kwAhead, kwBehind:
			return p.parseAssertion()
		case kwLet:
			return p.parseVariableDeclaration()
		default:
			if len(tok.Value) == 1 && p.peekAt(1).Type == TokenIdent && p.peekAt(1).Value == kwTo {
				return p.parseCharRange()
			}
			return nil, syntaxErrorAt(p.source, tok.Position, fmt.Sprintf("unexpected %q", tok.Value))
		}

	default:
		return nil, syntaxErrorAt(p.source, tok.Position, fmt.Sprintf("unexpected %q", tok.Value))
	}
}

// parseNegated handles "not <symbol>" and "not <literal>" (a negated
// character class).
func (p *Parser) parseNegated() (*Pair, error) {
	notTok := p.advance()

	next := p.peek()
	switch next.Type {
	case TokenSymbol:
		p.advance()
		marker := &Pair{rule: RuleNot, text: notTok.Value, pos: notTok.Position}
		name := &Pair{rule: RuleSymbolName, text: next.Value, pos: next.Position + 1}
		return &Pair{
			rule:     RuleSymbol,
			text:     p.span(notTok.Position, next.End),
			pos:      notTok.Position,
			children: []*Pair{marker, name},
		}, nil

	case TokenQuoteString:
		p.advance()
		return &Pair{
			rule:     RuleNegativeCharClass,
			text:     p.span(notTok.Position, next.End),
			pos:      notTok.Position,
			children: []*Pair{p.leaf(RuleLiteral, next)},
		}, nil

	default:
		return nil, syntaxErrorAt(p.source, notTok.Position, "expected symbol or literal after \"not\"")
	}
}

// parseQuantifier handles quantifiers led by a keyword: lazy, over, some,
// any, option. Number-led quantifiers come in through parseNumberLed.
func (p *Parser) parseQuantifier() (*Pair, error) {
	start := p.peek().Position
	if p.peek().Type == TokenIdent && p.peek().Value == kwLazy {
		p.advance()
	}
	kind, err := p.parseQuantityKind()
	if err != nil {
		return nil, err
	}
	return p.finishQuantifier(start, kind)
}

// parseNumberLed disambiguates "N to M of ..." and "N of ..." (quantifiers)
// from a bare "N to M" range statement.
func (p *Parser) parseNumberLed() (*Pair, error) {
	start := p.peek().Position
	kind, err := p.parseQuantityKind()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokenIdent && p.peek().Value == kwOf {
		return p.finishQuantifier(start, kind)
	}
	if kind.rule == RuleQuantityRange {
		return &Pair{rule: RuleRange, text: kind.text, pos: kind.pos, children: kind.children}, nil
	}
	return nil, syntaxErrorAt(p.source, start, "expected \"of\" after quantity")
}

// finishQuantifier wraps a parsed kind into a quantity pair, consumes "of",
// and parses the quantified operand. The quantity span starts at the lazy
// marker when one is present.
func (p *Parser) finishQuantifier(start int, kind *Pair) (*Pair, error) {
	quantity := &Pair{
		rule:     RuleQuantity,
		text:     p.span(start, pairEnd(kind)),
		pos:      start,
		children: []*Pair{kind},
	}
	if err := p.expectKeyword(kwOf); err != nil {
		return nil, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &Pair{
		rule:     RuleQuantifier,
		text:     p.span(start, pairEnd(term)),
		pos:      start,
		children: []*Pair{quantity, term},
	}, nil
}

// parseQuantityKind parses the kind sub-rule of a quantity: a bounded
// range "N to M", "over N", a bare amount "N", or one of the keywords
// some, any, option.
func (p *Parser) parseQuantityKind() (*Pair, error) {
	tok := p.peek()

	switch {
	case tok.Type == TokenNumber:
		p.advance()
		first := p.leaf(RuleNumber, tok)
		if p.peek().Type == TokenIdent && p.peek().Value == kwTo {
			p.advance()
			second, err := p.expect(TokenNumber, "number")
			if err != nil {
				return nil, err
			}
			if err := checkRangeOrder(p.source, tok, second); err != nil {
				return nil, err
			}
			return &Pair{
				rule:     RuleQuantityRange,
				text:     p.span(tok.Position, second.End),
				pos:      tok.Position,
				children: []*Pair{first, p.leaf(RuleNumber, second)},
			}, nil
		}
		if err := checkQuantity(p.source, tok); err != nil {
			return nil, err
		}
		return &Pair{rule: RuleQuantityAmount, text: tok.Value, pos: tok.Position}, nil

	case tok.Type == TokenIdent && tok.Value == kwOver:
		p.advance()
		num, err := p.expect(TokenNumber, "number")
		if err != nil {
			return nil, err
		}
		if err := checkQuantity(p.source, num); err != nil {
			return nil, err
		}
		return &Pair{
			rule:     RuleQuantityOver,
			text:     p.span(tok.Position, num.End),
			pos:      tok.Position,
			children: []*Pair{p.leaf(RuleNumber, num)},
		}, nil

	case tok.Type == TokenIdent && tok.Value == kwSome:
		p.advance()
		return &Pair{rule: RuleQuantitySome, text: tok.Value, pos: tok.Position}, nil

	case tok.Type == TokenIdent && tok.Value == kwAny:
		p.advance()
		return &Pair{rule: RuleQuantityAny, text: tok.Value, pos: tok.Position}, nil

	case tok.Type == TokenIdent && tok.Value == kwOption:
		p.advance()
		return &Pair{rule: RuleQuantityOption, text: tok.Value, pos: tok.Position}, nil

	default:
		return nil, syntaxErrorAt(p.source, tok.Position, "expected quantity")
	}
}

// parseCharRange handles character ranges like "a to z".
func (p *Parser) parseCharRange() (*Pair, error) {
	first := p.advance()
	p.advance() // "to"
	second, err := p.expect(TokenIdent, "character")
	if err != nil {
		return nil, err
	}
	if len(second.Value) != 1 {
		return nil, syntaxErrorAt(p.source, second.Position, "expected a single character")
	}
	return &Pair{
		rule: RuleRange,
		text: p.span(first.Position, second.End),
		pos:  first.Position,
		children: []*Pair{
			{rule: RuleChar, text: first.Value, pos: first.Position},
			{rule: RuleChar, text: second.Value, pos: second.Position},
		},
	}, nil
}

// parseGroup handles "capture { ... }", "capture name { ... }", and
// "match { ... }".
func (p *Parser) parseGroup() (*Pair, error) {
	kwTok := p.advance()
	if p.peek().Type == TokenIdent {
		p.advance() // optional capture name, kept only in the span
	}
	children, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Pair{
		rule:     RuleGroup,
		text:     p.span(kwTok.Position, end),
		pos:      kwTok.Position,
		children: children,
	}, nil
}

// parseAssertion handles "ahead { ... }" and "behind { ... }".
func (p *Parser) parseAssertion() (*Pair, error) {
	kwTok := p.advance()
	children, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Pair{
		rule:     RuleAssertion,
		text:     p.span(kwTok.Position, end),
		pos:      kwTok.Position,
		children: children,
	}, nil
}

// parseVariableDeclaration handles "let .name = { ... }".
func (p *Parser) parseVariableDeclaration() (*Pair, error) {
	letTok := p.advance()
	if _, err := p.expect(TokenVariable, "variable name"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEquals, "'='"); err != nil {
		return nil, err
	}
	children, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Pair{
		rule:     RuleVariableDeclaration,
		text:     p.span(letTok.Position, end),
		pos:      letTok.Position,
		children: children,
	}, nil
}

// parseBlock parses a brace-delimited sequence of semicolon-terminated
// statements and returns them along with the offset just past '}'.
func (p *Parser) parseBlock() ([]*Pair, int, error) {
	open, err := p.expect(TokenLBrace, "'{'")
	if err != nil {
		return nil, 0, err
	}

	children := make([]*Pair, 0)
	for {
		switch p.peek().Type {
		case TokenRBrace:
			closing := p.advance()
			return children, closing.End, nil
		case TokenEOF:
			return nil, 0, syntaxErrorAt(p.source, open.Position, "unterminated block, expected '}'")
		}

		stmt, err := p.parseTerm()
		if err != nil {
			return nil, 0, err
		}
		if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
			return nil, 0, err
		}
		children = append(children, stmt)
	}
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) Token {
	if p.current+offset < len(p.tokens) {
		return p.tokens[p.current+offset]
	}
	return Token{Type: TokenEOF, Position: len(p.source), End: len(p.source)}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) expect(tokenType TokenType, want string) (Token, error) {
	tok := p.peek()
	if tok.Type != tokenType {
		return Token{}, syntaxErrorAt(p.source, tok.Position, fmt.Sprintf("expected %s, found %q", want, tok.Value))
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(word string) error {
	tok := p.peek()
	if tok.Type != TokenIdent || tok.Value != word {
		return syntaxErrorAt(p.source, tok.Position, fmt.Sprintf("expected %q, found %q", word, tok.Value))
	}
	p.advance()
	return nil
}

func (p *Parser) span(start, end int) string {
	return p.source[start:end]
}

// leaf builds a childless pair whose text is the token value. For string
// tokens the value keeps the delimiters, so the span stays faithful.
func (p *Parser) leaf(rule Rule, tok Token) *Pair {
	return &Pair{rule: rule, text: tok.Value, pos: tok.Position}
}

func pairEnd(p *Pair) int {
	return p.pos + len(p.text)
}

// checkQuantity rejects quantity numbers that do not fit 32 bits, so the
// AST builder only ever sees representable bounds.
func checkQuantity(source string, tok Token) error {
	if _, err := strconv.ParseUint(tok.Value, 10, 32); err != nil {
		return syntaxErrorAt(source, tok.Position, "quantity out of range")
	}
	return nil
}

// checkRangeOrder rejects ranges whose lower bound exceeds the upper one,
// keeping the start <= end invariant true by construction downstream.
func checkRangeOrder(source string, first, second Token) error {
	if err := checkQuantity(source, first); err != nil {
		return err
	}
	if err := checkQuantity(source, second); err != nil {
		return err
	}
	lo, _ := strconv.ParseUint(first.Value, 10, 32)
	hi, _ := strconv.ParseUint(second.Value, 10, 32)
	if lo > hi {
		return syntaxErrorAt(source, first.Position, "range bounds out of order")
	}
	return nil
}
