package token

var keywords = map[string]Kind{
	"var":       KwVar,
	"let":       KwLet,
	"const":     KwConst,
	"function":  KwFunction,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"return":    KwReturn,
	"debugger":  KwDebugger,
	"import":    KwImport,
	"export":    KwExport,
	"from":      KwFrom,
	"type":      KwType,
	"interface": KwInterface,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
