package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a string literal.
	StringLit

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwType represents the 'type' keyword.
	KwType // type
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null

	// Assign represents '='.
	Assign // =
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Bang represents '!'.
	Bang // !
	// EqEq represents '=='.
	EqEq // ==
	// EqEqEq represents '==='.
	EqEqEq // ===
	// BangEq represents '!='.
	BangEq // !=
	// BangEqEq represents '!=='.
	BangEqEq // !==
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// Pipe represents '|'.
	Pipe // |
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Question represents '?'.
	Question // ?
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	KwVar:       "var",
	KwLet:       "let",
	KwConst:     "const",
	KwFunction:  "function",
	KwIf:        "if",
	KwElse:      "else",
	KwWhile:     "while",
	KwFor:       "for",
	KwReturn:    "return",
	KwDebugger:  "debugger",
	KwImport:    "import",
	KwExport:    "export",
	KwFrom:      "from",
	KwType:      "type",
	KwInterface: "interface",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	Assign:      "=",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Bang:        "!",
	EqEq:        "==",
	EqEqEq:      "===",
	BangEq:      "!=",
	BangEqEq:    "!==",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	AndAnd:      "&&",
	OrOr:        "||",
	Pipe:        "|",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Semicolon:   ";",
	Colon:       ":",
	Comma:       ",",
	Dot:         ".",
	Question:    "?",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
