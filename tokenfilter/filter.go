package tokenfilter

import (
	"strings"

	"github.com/nqlparser/nqlparser/nqltoken"
)

// Step is one link of a filter chain. It returns the (possibly rewritten)
// token and whether to keep it; a step must not mutate its input.
type Step func(*nqltoken.Token) (*nqltoken.Token, bool)

// Chain applies its steps in order. The first step that drops a token
// short-circuits the rest of the chain.
type Chain []Step

func (c Chain) Apply(tok *nqltoken.Token) (*nqltoken.Token, bool) {
	for _, step := range c {
		out, keep := step(tok)
		if !keep {
			return nil, false
		}
		tok = out
	}
	return tok, true
}

// Run applies the chain to every token and returns the survivors in order.
func (c Chain) Run(tokens []*nqltoken.Token) []*nqltoken.Token {
	var out []*nqltoken.Token
	for _, tok := range tokens {
		if t, keep := c.Apply(tok); keep {
			out = append(out, t)
		}
	}
	return out
}

// KeepKinds drops every token whose kind is not listed.
func KeepKinds(kinds ...nqltoken.Kind) Step {
	return func(tok *nqltoken.Token) (*nqltoken.Token, bool) {
		for _, k := range kinds {
			if tok.Kind == k {
				return tok, true
			}
		}
		return nil, false
	}
}

// DropKinds drops every token whose kind is listed.
func DropKinds(kinds ...nqltoken.Kind) Step {
	return func(tok *nqltoken.Token) (*nqltoken.Token, bool) {
		for _, k := range kinds {
			if tok.Kind == k {
				return nil, false
			}
		}
		return tok, true
	}
}

// MapValue rewrites the token text through fn, leaving the original token
// untouched.
func MapValue(fn func(string) string) Step {
	return func(tok *nqltoken.Token) (*nqltoken.Token, bool) {
		out := *tok
		out.Value = fn(tok.Value)
		return &out, true
	}
}

// UppercaseIdents rewrites bare identifiers to upper case and passes every
// other kind through unchanged.
func UppercaseIdents() Step {
	return func(tok *nqltoken.Token) (*nqltoken.Token, bool) {
		if tok.Kind != nqltoken.Ident {
			return tok, true
		}
		out := *tok
		out.Value = strings.ToUpper(tok.Value)
		return &out, true
	}
}
