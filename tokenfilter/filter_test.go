package tokenfilter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nqlparser/nqlparser/nqltoken"
)

func scan(t *testing.T, in string) []*nqltoken.Token {
	t.Helper()
	tokens, _, err := nqltoken.NewTokenizer(in).Tokenize()
	if err != nil {
		t.Fatalf("should be no error %v", err)
	}
	return tokens
}

func values(tokens []*nqltoken.Token) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, tok.Value)
	}
	return out
}

func TestChain_Run(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		chain Chain
		out   []string
	}{
		{
			name:  "empty chain keeps everything",
			in:    "SELECT * FROM [nt:base]",
			chain: Chain{},
			out:   []string{"SELECT", "*", "FROM", "[nt:base]"},
		},
		{
			name: "drop punctuation",
			in:   "a , b , c",
			chain: Chain{
				DropKinds(nqltoken.Punct),
			},
			out: []string{"a", "b", "c"},
		},
		{
			name: "keep only literals",
			in:   "size <= 1.5 AND name = 'x'",
			chain: Chain{
				KeepKinds(nqltoken.Number, nqltoken.QuotedString),
			},
			out: []string{"1.5", "'x'"},
		},
		{
			name: "uppercase identifiers leaves literals alone",
			in:   "select 'select'",
			chain: Chain{
				UppercaseIdents(),
			},
			out: []string{"SELECT", "'select'"},
		},
		{
			name: "steps compose in order",
			in:   "select name from [app:item]",
			chain: Chain{
				DropKinds(nqltoken.BracketedIdent),
				MapValue(strings.ToUpper),
			},
			out: []string{"SELECT", "NAME", "FROM"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := values(c.chain.Run(scan(t, c.in)))
			if d := cmp.Diff(c.out, got); d != "" {
				t.Errorf("diff: %s", d)
			}
		})
	}
}

func TestChain_ShortCircuit(t *testing.T) {
	var called int
	counting := func(tok *nqltoken.Token) (*nqltoken.Token, bool) {
		called++
		return tok, true
	}

	chain := Chain{
		DropKinds(nqltoken.Punct),
		counting,
	}

	chain.Run(scan(t, "a , b"))

	// the counting step must not see the dropped comma
	if called != 2 {
		t.Errorf("expected 2 calls but got %d", called)
	}
}

func TestMapValue_DoesNotMutateInput(t *testing.T) {
	tokens := scan(t, "abc")

	out := Chain{MapValue(strings.ToUpper)}.Run(tokens)

	if tokens[0].Value != "abc" {
		t.Errorf("input token mutated: %q", tokens[0].Value)
	}
	if out[0].Value != "ABC" {
		t.Errorf("expected rewritten token but got %q", out[0].Value)
	}
}
