package token

import "fmt"

type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident  // Identifier
	Number // Numeric literal
	String // String literal

	// Keywords
	Return
	Local
	If
	Then
	Elseif
	Else
	End
	For
	Do
	Function
	True
	False
	Nil

	// Operators
	Assign // =

	Plus  // +
	Minus // -
	Star  // *
	Slash // /

	Eq   // ==
	Lt   // <
	LtEq // <=
	Gt   // >
	GtEq // >=

	// Symbols
	Comma // ,
	Dot   // .

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

type Position struct {
	Line   int
	Column int
}

type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (k Kind) String() string {
	switch k {
	case Illegal:
		return "Illegal"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Return:
		return "Return"
	case Local:
		return "Local"
	case If:
		return "If"
	case Then:
		return "Then"
	case Elseif:
		return "Elseif"
	case Else:
		return "Else"
	case End:
		return "End"
	case For:
		return "For"
	case Do:
		return "Do"
	case Function:
		return "Function"
	case True:
		return "True"
	case False:
		return "False"
	case Nil:
		return "Nil"
	case Assign:
		return "Assign"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Eq:
		return "Eq"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var keywords = map[string]Kind{
	"return":   Return,
	"local":    Local,
	"if":       If,
	"then":     Then,
	"elseif":   Elseif,
	"else":     Else,
	"end":      End,
	"for":      For,
	"do":       Do,
	"function": Function,
	"true":     True,
	"false":    False,
	"nil":      Nil,
}

func LookupIdent(lit string) Kind {
	if kind, ok := keywords[lit]; ok {
		return kind
	}
	return Ident
}
