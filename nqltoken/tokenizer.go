package nqltoken

import "strings"

const (
	// Characters that always form a one character token.
	punctChars = "/-(){}*,.;+%?"
	// Characters that may start a two character operator.
	comparatorChars = "!<>|=:"
	// Characters allowed as the second half of a two character operator.
	comparatorTails = "=|>"
)

type class int

const (
	classDigit class = iota
	classQuote
	classPunct
	classComparator
	classBracketOpen
	classOther
)

// classify maps a character to the sub-scanner (or direct emission) the
// driver dispatches to. Whitespace never reaches classify; the driver skips
// it beforehand.
func classify(c byte) class {
	switch {
	case isDigit(c):
		return classDigit
	case c == '"' || c == '\'':
		return classQuote
	case strings.IndexByte(punctChars, c) >= 0:
		return classPunct
	case strings.IndexByte(comparatorChars, c) >= 0:
		return classComparator
	case c == '[':
		return classBracketOpen
	default:
		return classOther
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isIdentTerminator reports whether c ends a bare identifier. Quote
// characters are deliberately absent: they only matter at dispatch time, so
// a quote inside a running identifier is kept as part of the name.
func isIdentTerminator(c byte) bool {
	return isWhitespace(c) || c == '[' || c == ']' ||
		strings.IndexByte(punctChars, c) >= 0 ||
		strings.IndexByte(comparatorChars, c) >= 0
}

// scanNumber consumes a maximal digit run, an optional fraction when the
// period is not the last character of the input, and an optional unsigned
// E/e exponent. A signed exponent is not consumed here; the sign becomes a
// separate operator token.
func scanNumber(src string, start int) int {
	i := start
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' && i+1 < len(src) {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'E' || src[i] == 'e') {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	return i
}

// scanQuotedString consumes a string opened by the quote character at start
// and closed by an unescaped occurrence of the same character. A backslash
// followed by the opening quote escapes it: the quote is kept, the backslash
// dropped. Any other backslash is kept verbatim. Returns the token text
// (both quotes included), the offset past the closing quote, and whether the
// closing quote was found; on ok == false the text holds the partial scan
// and end is the end of input.
func scanQuotedString(src string, start int) (text string, end int, ok bool) {
	quote := src[start]

	var builder strings.Builder
	builder.WriteByte(quote)

	i := start + 1
	for i < len(src) {
		c := src[i]
		if c == '\\' && i+1 < len(src) && src[i+1] == quote {
			builder.WriteByte(quote)
			i += 2
			continue
		}
		builder.WriteByte(c)
		i++
		if c == quote {
			return builder.String(), i, true
		}
	}

	return builder.String(), i, false
}

// scanBracketed consumes a bracket-quoted identifier, keeping a nesting
// level so the name itself may contain bracket pairs. Returns the offset
// past the closing bracket and whether the outer bracket was closed before
// the end of input.
func scanBracketed(src string, start int) (end int, ok bool) {
	level := 1

	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '[':
			level++
		case ']':
			level--
			if level == 0 {
				return i + 1, true
			}
		}
		i++
	}

	return i, false
}

// scanIdent consumes a maximal run of non-terminator characters. The first
// character is taken unconditionally so a stray terminator (a lone `]`)
// still produces a one character token instead of stalling the driver.
func scanIdent(src string, start int) int {
	i := start + 1
	if isIdentTerminator(src[start]) {
		return i
	}
	for i < len(src) && !isIdentTerminator(src[i]) {
		i++
	}
	return i
}

type Tokenizer struct {
	src                string
	off                int
	line               int
	col                int
	permissiveBrackets bool
}

type TokenizerOption func(*Tokenizer)

// PermissiveBrackets makes a bracketed identifier that is still open at the
// end of input be emitted as a token covering the rest of the statement,
// instead of failing with an UnterminatedLiteralError.
func PermissiveBrackets() TokenizerOption {
	return func(tokenizer *Tokenizer) {
		tokenizer.permissiveBrackets = true
	}
}

func NewTokenizer(src string, options ...TokenizerOption) *Tokenizer {
	tokenizer := &Tokenizer{
		src:  src,
		line: 1,
		col:  1,
	}
	for _, o := range options {
		o(tokenizer)
	}
	return tokenizer
}

// Tokenize scans the whole statement eagerly and returns the token list
// together with the delimiter list. A delimiter entry is appended only when
// a nonempty whitespace run was actually skipped, so the two lists do not
// align one to one across boundaries without whitespace.
func (t *Tokenizer) Tokenize() ([]*Token, []string, error) {
	var tokens []*Token
	var delimiters []string

	for t.off < len(t.src) {
		if ws := t.skipWhitespace(); ws != "" {
			delimiters = append(delimiters, ws)
		}
		if t.off >= len(t.src) {
			break
		}

		tok, err := t.next()
		if err != nil {
			return nil, nil, err
		}
		tokens = append(tokens, tok)
	}

	return tokens, delimiters, nil
}

func (t *Tokenizer) next() (*Token, error) {
	from := t.pos()
	c := t.src[t.off]

	switch classify(c) {
	case classDigit:
		end := scanNumber(t.src, t.off)
		return t.emit(Number, t.src[t.off:end], from, end), nil

	case classQuote:
		text, end, ok := scanQuotedString(t.src, t.off)
		if !ok {
			return nil, &UnterminatedLiteralError{
				Partial:   text,
				Statement: t.src,
				From:      from,
			}
		}
		return t.emit(QuotedString, text, from, end), nil

	case classPunct:
		return t.emit(Punct, t.src[t.off:t.off+1], from, t.off+1), nil

	case classComparator:
		if t.off+1 < len(t.src) && strings.IndexByte(comparatorTails, t.src[t.off+1]) >= 0 {
			return t.emit(Operator, t.src[t.off:t.off+2], from, t.off+2), nil
		}
		return t.emit(Operator, t.src[t.off:t.off+1], from, t.off+1), nil

	case classBracketOpen:
		end, ok := scanBracketed(t.src, t.off)
		if !ok && !t.permissiveBrackets {
			return nil, &UnterminatedLiteralError{
				Partial:   t.src[t.off:end],
				Statement: t.src,
				From:      from,
			}
		}
		return t.emit(BracketedIdent, t.src[t.off:end], from, end), nil

	default:
		end := scanIdent(t.src, t.off)
		return t.emit(Ident, t.src[t.off:end], from, end), nil
	}
}

func (t *Tokenizer) emit(kind Kind, value string, from Pos, end int) *Token {
	t.advance(end)
	return &Token{
		Kind:  kind,
		Value: value,
		From:  from,
		To:    t.pos(),
	}
}

func (t *Tokenizer) skipWhitespace() string {
	start := t.off
	end := t.off
	for end < len(t.src) && isWhitespace(t.src[end]) {
		end++
	}
	t.advance(end)
	return t.src[start:end]
}

// advance moves the read offset to end, updating line and column over the
// consumed span. A tab advances the column by 4 and \r\n counts as a single
// line break.
func (t *Tokenizer) advance(end int) {
	for t.off < end {
		switch t.src[t.off] {
		case '\n':
			t.line += 1
			t.col = 1
		case '\r':
			if t.off+1 < end && t.src[t.off+1] == '\n' {
				t.off += 1
			}
			t.line += 1
			t.col = 1
		case '\t':
			t.col += 4
		default:
			t.col += 1
		}
		t.off += 1
	}
}

func (t *Tokenizer) pos() Pos {
	return Pos{
		Line: t.line,
		Col:  t.col,
	}
}
