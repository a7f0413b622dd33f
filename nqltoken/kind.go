package nqltoken

// Kind is the lexical category of a token, implied by which sub-scanner
// produced it.
type Kind int

const (
	// Numeric literal i.e: 1.5E10
	Number Kind = iota
	// Quoted string literal i.e: 'string' or "string"
	QuotedString
	// Bracket-quoted identifier i.e: [nt:base]
	BracketedIdent
	// Bare identifier or keyword i.e: SELECT
	Ident
	// One or two character operator i.e: <= or |
	Operator
	// Single character punctuation i.e: , or (
	Punct
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case QuotedString:
		return "QuotedString"
	case BracketedIdent:
		return "BracketedIdent"
	case Ident:
		return "Ident"
	case Operator:
		return "Operator"
	case Punct:
		return "Punct"
	default:
		return "Unknown"
	}
}
