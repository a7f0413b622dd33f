package nqlparser

import (
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/nqlparser/nqlparser/nqltoken"
)

// Scanner is one scanning session over a single statement: the token and
// delimiter lists produced eagerly at construction, plus the read position
// moved forward by Consume. A session is owned by a single caller; nothing
// here is safe for concurrent use.
type Scanner struct {
	statement  string
	tokens     []*nqltoken.Token
	delimiters []string
	pos        int
}

// NewScanner tokenizes the whole statement up front and returns a cursor
// positioned on the first token. It fails if the statement contains an
// unterminated literal.
func NewScanner(statement string, options ...nqltoken.TokenizerOption) (*Scanner, error) {
	tokens, delimiters, err := nqltoken.NewTokenizer(statement, options...).Tokenize()
	if err != nil {
		return nil, errors.Errorf("tokenize failed: %w", err)
	}

	return &Scanner{
		statement:  statement,
		tokens:     tokens,
		delimiters: delimiters,
	}, nil
}

// Lookahead returns the trimmed token text at the read position plus offset
// without moving the position, or "" when that index is past the end of the
// token list.
func (s *Scanner) Lookahead(offset int) string {
	i := s.pos + offset
	if i < 0 || i >= len(s.tokens) {
		return ""
	}
	return strings.TrimSpace(s.tokens[i].Value)
}

// Peek is Lookahead(0).
func (s *Scanner) Peek() string {
	return s.Lookahead(0)
}

// Consume returns the current token text and advances the read position.
// Past the end of the token list it keeps returning "" without moving.
func (s *Scanner) Consume() string {
	tok := s.Lookahead(0)
	if tok != "" {
		s.pos += 1
	}
	return tok
}

// PreviousDelimiter returns the whitespace run recorded at index
// position-1 of the delimiter list, or a single space when there is no such
// entry. Delimiter entries exist only for boundaries that actually carried
// whitespace, so this positional lookup drifts once two tokens touch; that
// matches the behavior downstream consumers rely on.
func (s *Scanner) PreviousDelimiter() string {
	i := s.pos - 1
	if i < 0 || i >= len(s.delimiters) {
		return " "
	}
	return s.delimiters[i]
}

// Expect consumes the next token and fails with an UnexpectedTokenError
// unless it equals expected.
func (s *Scanner) Expect(expected string, caseInsensitive bool) error {
	found := s.Consume()
	if !TokensEqual(expected, found, caseInsensitive) {
		return &UnexpectedTokenError{
			Expected:  expected,
			Found:     found,
			Statement: s.statement,
		}
	}
	return nil
}

// ExpectSequence applies Expect to each element in order, stopping at the
// first mismatch.
func (s *Scanner) ExpectSequence(expected []string, caseInsensitive bool) error {
	for _, tok := range expected {
		if err := s.Expect(tok, caseInsensitive); err != nil {
			return err
		}
	}
	return nil
}

// Tokens returns the full token list produced at construction. The slice is
// shared, not copied; callers must treat it as read-only.
func (s *Scanner) Tokens() []*nqltoken.Token {
	return s.tokens
}

// Delimiters returns the whitespace runs recorded between tokens.
func (s *Scanner) Delimiters() []string {
	return s.delimiters
}

func (s *Scanner) Statement() string {
	return s.statement
}

// TokensEqual compares two token texts, case-insensitively when requested.
func TokensEqual(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
