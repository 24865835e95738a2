// SPDX-License-Identifier: MIT

package script

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Program is a parsed script: one statement per line.
type Program struct {
	Stmts []*Stmt `( @@? EOL )*`
}

// Stmt is a single alteration statement.
type Stmt struct {
	Pos lexer.Position

	Vert    *Vert    `  "vert" @@`
	Edge    *Pair    `| "edge" @@`
	Move    *Move    `| "move" @@`
	Append  *Append  `| "append" @@`
	Split   *Split   `| "split" @@`
	SetV    *SetV    `| "setv" @@`
	SetE    *SetE    `| "sete" @@`
	DelEdge *Pair    `| "deledge" @@`
	DelVert *Operand `| "delvert" @@`
}

// Vert adds a vertex: vert (x, y) [with "k" = v, ...] [as name]
type Vert struct {
	Pos   *Vector `@@`
	Attrs []*Attr `( "with" @@ ( "," @@ )* )?`
	As    string  `( "as" @Ident )?`
}

// Pair names two vertices: edge a b, deledge a b
type Pair struct {
	A *Operand `@@`
	B *Operand `@@`
}

// Move displaces a vertex, or places it with abs: move a (dx, dy) [abs]
type Move struct {
	V   *Operand `@@`
	By  *Vector  `@@`
	Abs bool     `@"abs"?`
}

// Append grows a new vertex joined to an existing one: append a (dx, dy) [abs] [as name]
type Append struct {
	From *Operand `@@`
	Pos  *Vector  `@@`
	Abs  bool     `@"abs"?`
	As   string   `( "as" @Ident )?`
}

// Split inserts a vertex into an edge: split a b at t [as name]
type Split struct {
	A  *Operand `@@`
	B  *Operand `@@`
	T  float64  `"at" @Number`
	As string   `( "as" @Ident )?`
}

// SetV sets a vertex attribute: setv a "key" = value
type SetV struct {
	V    *Operand `@@`
	Attr *Attr    `@@`
}

// SetE sets an edge attribute: sete a b "key" = value
type SetE struct {
	A    *Operand `@@`
	B    *Operand `@@`
	Attr *Attr    `@@`
}

// Attr is a "key" = value assignment.
type Attr struct {
	Key string   `@String "="`
	Val *Literal `@@`
}

// Operand names a vertex: a script name or a committed id.
type Operand struct {
	Pos  lexer.Position
	Name *string `  @Ident`
	ID   *int    `| @Number`
}

// Vector is a parenthesised component list: (x, y) or (x, y, z).
type Vector struct {
	Pos lexer.Position
	C   []float64 `"(" @Number ( "," @Number )* ")"`
}

// Literal is an attribute value. none removes the attribute.
type Literal struct {
	Number *float64 `  @Number`
	Str    *string  `| @String`
	Bool   *string  `| @( "true" | "false" )`
	Vec    *Vector  `| @@`
	None   bool     `| @"none"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),=]`},
	{Name: "EOL", Pattern: `[\n;]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse parses src. Statements are separated by newlines or semicolons; # and //
// start a comment running to the end of the line.
func Parse(src string) (*Program, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	prog, err := parser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	return prog, nil
}
