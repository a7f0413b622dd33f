package nqlparser

import "fmt"

// UnexpectedTokenError is returned by Expect and ExpectSequence when the
// consumed token does not match the expected one. Found is "" when the token
// list was already exhausted.
type UnexpectedTokenError struct {
	Expected  string
	Found     string
	Statement string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected token %q but found %q in statement %q", e.Expected, e.Found, e.Statement)
}
