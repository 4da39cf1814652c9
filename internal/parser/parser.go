package parser

import (
	"fmt"
	"strconv"

	"luna/internal/ast"
	"luna/internal/lexer"
	"luna/internal/token"
)

// Parser turns a token stream into an AST. Parsing is fail-fast: the first
// lexical or syntax error aborts the whole parse and no partial tree is
// returned.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// init cur/peek
	p.next()
	p.next()
	return p
}

// Parse is the convenience entry point: lex and parse a full source text.
func Parse(src string) (*ast.Program, error) {
	return New(lexer.New(src)).ParseProgram()
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// errExpected builds the error for the current token failing to satisfy a
// production. A lexer error takes precedence, since an Illegal token only
// exists because lexing failed at that position.
func (p *Parser) errExpected(want string) error {
	if p.cur.Kind == token.Illegal {
		if err := p.l.Err(); err != nil {
			return err
		}
	}
	if p.cur.Kind == token.EOF {
		return &Error{Pos: p.cur.Pos, Msg: "unexpected end of input: expected " + want, AtEOF: true}
	}
	return &Error{
		Pos: p.cur.Pos,
		Msg: fmt.Sprintf("expected %s, got %s (%q)", want, p.cur.Kind, p.cur.Lexeme),
	}
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errExpected(kind.String())
	}
	tok := p.cur
	p.next()
	return tok, nil
}

// ---------- Top-level ----------

// ParseProgram parses statements until the input is exhausted.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog, nil
}

// ---------- Blocks & statements ----------

// parseBlock parses statements until one of the terminator keywords is the
// current token. The terminator is left for the caller to consume.
func (p *Parser) parseBlock(terminators ...token.Kind) ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for {
		for _, t := range terminators {
			if p.cur.Kind == t {
				return stmts, nil
			}
		}
		if p.cur.Kind == token.EOF {
			return nil, p.errExpected(terminatorList(terminators))
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func terminatorList(terminators []token.Kind) string {
	switch len(terminators) {
	case 1:
		return terminators[0].String()
	case 2:
		return terminators[0].String() + " or " + terminators[1].String()
	default:
		s := ""
		for _, t := range terminators[:len(terminators)-1] {
			s += t.String() + ", "
		}
		return s + "or " + terminators[len(terminators)-1].String()
	}
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Kind {
	case token.Return:
		return p.parseReturnStmt()
	case token.Local:
		return p.parseLocalStmt()
	case token.If:
		return p.parseIfStmt()
	case token.For:
		return p.parseForStmt()
	case token.Function:
		if p.peek.Kind == token.Ident {
			return p.parseFunctionDecl()
		}
		// Anonymous function in statement position falls through to the
		// expression path (e.g. immediately called literals).
		fallthrough
	default:
		// assignment or expression statement
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind == token.Assign {
			assignTok := p.cur
			p.next()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.AssignStmt{
				Target:    expr,
				AssignPos: assignTok.Pos,
				Value:     value,
			}, nil
		}
		return &ast.ExprStmt{Expression: expr}, nil
	}
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	retTok := p.cur
	p.next()

	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		ReturnPos: retTok.Pos,
		Result:    result,
	}, nil
}

func (p *Parser) parseLocalStmt() (ast.Stmt, error) {
	localTok := p.cur
	p.next()

	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.LocalStmt{
		LocalPos: localTok.Pos,
		Name:     nameTok.Lexeme,
		NamePos:  nameTok.Pos,
		Value:    value,
	}, nil
}

func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	ifTok := p.cur
	p.next()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Then); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock(token.Elseif, token.Else, token.End)
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{
		IfPos: ifTok.Pos,
		Cond:  cond,
		Then:  thenBlock,
	}

	for p.cur.Kind == token.Elseif {
		elseifTok := p.cur
		p.next()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Then); err != nil {
			return nil, err
		}
		body, err := p.parseBlock(token.Elseif, token.Else, token.End)
		if err != nil {
			return nil, err
		}
		stmt.Elseifs = append(stmt.Elseifs, &ast.ElseifClause{
			ElseifPos: elseifTok.Pos,
			Cond:      cond,
			Body:      body,
		})
	}

	if p.cur.Kind == token.Else {
		elseTok := p.cur
		p.next()
		body, err := p.parseBlock(token.End)
		if err != nil {
			return nil, err
		}
		stmt.Else = &ast.ElseClause{
			ElsePos: elseTok.Pos,
			Body:    body,
		}
	}

	if _, err := p.expect(token.End); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseForStmt() (ast.Stmt, error) {
	forTok := p.cur
	p.next()

	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	stop, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step ast.Expr
	if p.cur.Kind == token.Comma {
		p.next()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Do); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(token.End)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.End); err != nil {
		return nil, err
	}

	return &ast.NumericForStmt{
		ForPos:  forTok.Pos,
		Name:    nameTok.Lexeme,
		NamePos: nameTok.Pos,
		Start:   start,
		Stop:    stop,
		Step:    step,
		Body:    body,
	}, nil
}

func (p *Parser) parseFunctionDecl() (ast.Stmt, error) {
	funcTok := p.cur
	p.next()

	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(token.End)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.End); err != nil {
		return nil, err
	}

	return &ast.FunctionDeclStmt{
		FuncPos: funcTok.Pos,
		Name:    nameTok.Lexeme,
		NamePos: nameTok.Pos,
		Params:  params,
		Body:    body,
	}, nil
}

// parseParams parses "( NAME (, NAME)* )" with an empty list permitted. A
// comma must be followed by another name.
func (p *Parser) parseParams() ([]string, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var params []string
	if p.cur.Kind != token.RParen {
		for {
			nameTok, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			params = append(params, nameTok.Lexeme)
			if p.cur.Kind == token.Comma {
				p.next()
				continue
			}
			break
		}
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// ---------- Expressions (with priorities) ----------

// parseExpr parses one complete expression, consuming the minimal token
// prefix that forms one. Binary tiers from loosest to tightest: relational,
// additive, multiplicative; all left-associative. Postfix operations bind
// tighter than any binary operator.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseRelational()
}

// parseRelational folds the five relational operators in one tier, so
// chains like `a == b == c` group left. This mirrors the grammar as
// defined; downstream stages decide what such chains mean.
func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Eq || p.cur.Kind == token.Lt || p.cur.Kind == token.LtEq ||
		p.cur.Kind == token.Gt || p.cur.Kind == token.GtEq {
		opTok := p.cur
		p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			OpPos: opTok.Pos,
			Op:    binOp(opTok.Kind),
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Plus || p.cur.Kind == token.Minus {
		opTok := p.cur
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			OpPos: opTok.Pos,
			Op:    binOp(opTok.Kind),
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Star || p.cur.Kind == token.Slash {
		opTok := p.cur
		p.next()
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			OpPos: opTok.Pos,
			Op:    binOp(opTok.Kind),
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func binOp(kind token.Kind) ast.Op {
	switch kind {
	case token.Plus:
		return ast.Add
	case token.Minus:
		return ast.Subtract
	case token.Star:
		return ast.Multiply
	case token.Slash:
		return ast.Divide
	case token.Eq:
		return ast.Equals
	case token.Gt:
		return ast.GreaterThan
	case token.Lt:
		return ast.LessThan
	case token.GtEq:
		return ast.GreaterThanEquals
	case token.LtEq:
		return ast.LessThanEquals
	}
	panic("not a binary operator: " + kind.String())
}

// parsePostfix extends a primary with any run of member access, indexing,
// and call operations, chaining left to right.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Kind {
		case token.Dot:
			p.next()
			nameTok, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			expr = &ast.DotExpr{
				X:       expr,
				Name:    nameTok.Lexeme,
				NamePos: nameTok.Pos,
			}
		case token.LBracket:
			lbr := p.cur
			p.next()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rbr, err := p.expect(token.RBracket)
			if err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{
				X:        expr,
				LBracket: lbr.Pos,
				Index:    index,
				RBracket: rbr.Pos,
			}
		case token.LParen:
			lparen := p.cur
			p.next()
			var args []ast.Expr
			if p.cur.Kind != token.RParen {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.cur.Kind == token.Comma {
						p.next()
						continue
					}
					break
				}
			}
			rparen, err := p.expect(token.RParen)
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				Callee: expr,
				LParen: lparen.Pos,
				Args:   args,
				RParen: rparen.Pos,
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.Number:
		tok := p.cur
		p.next()
		val, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("invalid number literal %q", tok.Lexeme)}
		}
		return &ast.NumberLit{
			Value:  val,
			LitPos: tok.Pos,
			Raw:    tok.Lexeme,
		}, nil
	case token.String:
		tok := p.cur
		p.next()
		return &ast.StringLit{
			Value:  tok.Lexeme,
			LitPos: tok.Pos,
		}, nil
	case token.True, token.False:
		tok := p.cur
		p.next()
		return &ast.BoolLit{
			Value:  tok.Kind == token.True,
			LitPos: tok.Pos,
		}, nil
	case token.Nil:
		tok := p.cur
		p.next()
		return &ast.NilLit{LitPos: tok.Pos}, nil
	case token.Ident:
		tok := p.cur
		p.next()
		return &ast.Ident{
			Name:    tok.Lexeme,
			NamePos: tok.Pos,
		}, nil
	case token.Function:
		return p.parseFuncLit()
	case token.LBrace:
		return p.parseTableLit()
	default:
		return nil, p.errExpected("an expression")
	}
}

func (p *Parser) parseFuncLit() (ast.Expr, error) {
	funcTok := p.cur
	p.next()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(token.End)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.End); err != nil {
		return nil, err
	}

	return &ast.FuncLit{
		FuncPos: funcTok.Pos,
		Params:  params,
		Body:    body,
	}, nil
}

// parseTableLit parses "{ item (, item)* ,? }". A trailing comma before the
// closing brace is permitted and item order is preserved.
func (p *Parser) parseTableLit() (ast.Expr, error) {
	lbrace := p.cur
	p.next()

	table := &ast.TableLit{LBrace: lbrace.Pos}

	for p.cur.Kind != token.RBrace {
		item, err := p.parseTableItem()
		if err != nil {
			return nil, err
		}
		table.Items = append(table.Items, item)

		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}

	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	table.RBrace = rbrace.Pos
	return table, nil
}

func (p *Parser) parseTableItem() (*ast.TableItem, error) {
	// Computed key: [expr] = value
	if p.cur.Kind == token.LBracket {
		p.next()
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Assign); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.TableItem{Key: key, Value: value}, nil
	}

	// Record key: name = value
	if p.cur.Kind == token.Ident && p.peek.Kind == token.Assign {
		nameTok := p.cur
		p.next() // name
		p.next() // '='
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.TableItem{
			Name:    nameTok.Lexeme,
			NamePos: nameTok.Pos,
			Value:   value,
		}, nil
	}

	// Positional entry
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.TableItem{Value: value}, nil
}
