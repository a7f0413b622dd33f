package nqltoken

import "fmt"

// Token is a single lexical unit extracted from a statement. Value holds the
// scanned text verbatim, including surrounding quotes or brackets; the only
// rewriting the scanner performs is dropping the backslash of a quote escape
// inside a quoted string.
type Token struct {
	Kind  Kind
	Value string
	From  Pos
	To    Pos
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

type Pos struct {
	Line int
	Col  int
}

func NewPos(line, col int) Pos {
	return Pos{
		Line: line,
		Col:  col,
	}
}

func (p Pos) String() string {
	return fmt.Sprintf("{Line: %d Col: %d}", p.Line, p.Col)
}

func ComparePos(x, y Pos) int {
	if x.Line == y.Line && x.Col == y.Col {
		return 0
	}

	if x.Line > y.Line {
		return 1
	} else if x.Line < y.Line {
		return -1
	}

	if x.Col > y.Col {
		return 1
	}

	return -1
}
