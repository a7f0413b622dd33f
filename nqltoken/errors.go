package nqltoken

import "fmt"

// UnterminatedLiteralError is returned when the end of the statement is
// reached inside a quoted string, or inside a bracketed identifier when the
// tokenizer is strict about brackets. Partial holds the text scanned up to
// the end of input, Statement the full original statement.
type UnterminatedLiteralError struct {
	Partial   string
	Statement string
	From      Pos
}

func (e *UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("unterminated literal %s at %s in statement %q", e.Partial, e.From, e.Statement)
}
