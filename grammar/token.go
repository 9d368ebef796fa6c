package grammar

// TokenType defines the kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenIdent       TokenType = iota // bare words and keywords (of, to, not, lazy, ...)
	TokenNumber                       // decimal digits
	TokenRawString                    // `...`, value keeps the backticks
	TokenQuoteString                  // "..." or '...', value keeps the quotes
	TokenSymbol                       // <name>, value is the bare name
	TokenVariable                     // .name, value is the bare name
	TokenSemicolon                    // ';'
	TokenLBrace                       // '{'
	TokenRBrace                       // '}'
	TokenEquals                       // '='
	TokenEOF                          // end of input
)

// Token is a single lexical token with its source span.
type Token struct {
	Type     TokenType
	Value    string // the denoted text; delimiters are kept for string tokens
	Position int    // starting byte offset in the input
	End      int    // byte offset just past the token
}

// Rule tags a Pair with the grammar production that matched it.
// The set is closed: the AST builder dispatches on it exhaustively.
type Rule int

const (
	RuleRoot Rule = iota
	RuleRaw
	RuleLiteral
	RuleSymbol
	RuleSymbolName
	RuleNot
	RuleQuantifier
	RuleQuantity
	RuleQuantityRange
	RuleQuantityOver
	RuleQuantityAmount
	RuleQuantitySome
	RuleQuantityAny
	RuleQuantityOption
	RuleNumber
	RuleChar
	RuleRange
	RuleGroup
	RuleAssertion
	RuleNegativeCharClass
	RuleVariableInvocation
	RuleVariableDeclaration
	RuleEOI
)

var ruleNames = map[Rule]string{
	RuleRoot:                "root",
	RuleRaw:                 "raw",
	RuleLiteral:             "literal",
	RuleSymbol:              "symbol",
	RuleSymbolName:          "symbol_name",
	RuleNot:                 "not",
	RuleQuantifier:          "quantifier",
	RuleQuantity:            "quantity",
	RuleQuantityRange:       "quantity_range",
	RuleQuantityOver:        "quantity_over",
	RuleQuantityAmount:      "quantity_amount",
	RuleQuantitySome:        "quantity_some",
	RuleQuantityAny:         "quantity_any",
	RuleQuantityOption:      "quantity_option",
	RuleNumber:              "number",
	RuleChar:                "char",
	RuleRange:               "range",
	RuleGroup:               "group",
	RuleAssertion:           "assertion",
	RuleNegativeCharClass:   "negative_char_class",
	RuleVariableInvocation:  "variable_invocation",
	RuleVariableDeclaration: "variable_declaration",
	RuleEOI:                 "EOI",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Pair is one node of the token tree handed to the AST builder: a rule
// tag, the raw text span the rule matched, and the ordered sub-tokens.
type Pair struct {
	rule     Rule
	text     string
	pos      int
	children []*Pair
}

// NewPair builds a Pair directly, without going through the parser.
// Useful for embedders and tests that need a token tree of a given shape.
func NewPair(rule Rule, text string, children ...*Pair) *Pair {
	return &Pair{rule: rule, text: text, children: children}
}

// Rule returns the grammar production that matched this pair.
func (p *Pair) Rule() Rule { return p.rule }

// Text returns the raw matched span, delimiters included.
func (p *Pair) Text() string { return p.text }

// Position returns the starting byte offset of the span.
func (p *Pair) Position() int { return p.pos }

// Children returns the ordered sub-tokens of a composite pair.
func (p *Pair) Children() []*Pair { return p.children }
